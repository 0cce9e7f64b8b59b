package loader

import (
	"bufio"
	"os"
)

// ReadLines reads path and returns its lines without terminators. A final
// line terminator does not start an extra empty line.
func ReadLines(path string) (lines []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			lines, err = nil, cerr
		}
	}()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
