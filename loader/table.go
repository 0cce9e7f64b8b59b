package loader

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/robinvdvleuten/salesagg/ledger"
)

// LoadTable reads the definition file of dim from dir.
func LoadTable(dir string, dim ledger.Dimension) (table *ledger.Table, err error) {
	path := filepath.Join(dir, dim.LookupFile())

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ledger.MissingFileError{Dimension: dim, Path: path}
		}
		return nil, ledger.NewUnexpectedError("open "+path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			table, err = nil, ledger.NewUnexpectedError("close "+path, cerr)
		}
	}()

	table, err = ParseTable(f, dim)
	if err != nil {
		var fe *ledger.LookupFormatError
		if errors.As(err, &fe) {
			fe.Path = path
		}
		return nil, err
	}

	return table, nil
}

// ParseTable parses "code,name" lines into a table for dim. Every line must
// have exactly two fields, a code of the dimension's shape and a non-empty
// name.
func ParseTable(r io.Reader, dim ledger.Dimension) (*ledger.Table, error) {
	table := ledger.NewTable(dim)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		fields := strings.Split(line, ",")
		if len(fields) != 2 || fields[1] == "" || !dim.ValidCode(fields[0]) {
			return nil, &ledger.LookupFormatError{Dimension: dim, Line: lineNo, Content: line}
		}

		table.Add(fields[0], fields[1])
	}

	if err := scanner.Err(); err != nil {
		return nil, ledger.NewUnexpectedError("read "+dim.LookupFile(), err)
	}

	return table, nil
}
