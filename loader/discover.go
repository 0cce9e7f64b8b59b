package loader

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/salesagg/ledger"
	"github.com/robinvdvleuten/salesagg/telemetry"
)

// RecordExt is the extension of daily record files.
const RecordExt = ".rcd"

var recordNamePattern = regexp.MustCompile(`^[0-9]{8}\.rcd$`)

// IsRecordName reports whether name is a valid record file name: eight
// digits followed by ".rcd" and nothing else.
func IsRecordName(name string) bool {
	return recordNamePattern.MatchString(name)
}

// Discover returns the record files in dir sorted by name. Only regular files
// with a valid record name are considered. The whole list is checked for
// gaps before it is returned: every sequence number must be one more than the
// previous one.
func Discover(ctx context.Context, dir string) ([]ledger.RecordFile, error) {
	timer := telemetry.StartTimer(ctx, "loader.discover")
	defer timer.End()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ledger.NewUnexpectedError("list "+dir, err)
	}

	var files []ledger.RecordFile
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !IsRecordName(name) {
			continue
		}

		path := filepath.Join(dir, name)

		// Stat follows symlinks, so a link to a regular file counts.
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		seq, err := strconv.Atoi(name[:8])
		if err != nil {
			return nil, ledger.NewUnexpectedError("parse "+name, err)
		}

		files = append(files, ledger.RecordFile{Name: name, Path: path, Seq: seq})
	}

	slices.SortFunc(files, func(a, b ledger.RecordFile) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})

	if err := CheckSequence(files); err != nil {
		return nil, err
	}
	timer.Count("files", len(files))

	return files, nil
}

// CheckSequence verifies that sorted files form a contiguous run.
func CheckSequence(files []ledger.RecordFile) error {
	for i := 1; i < len(files); i++ {
		if files[i].Seq-files[i-1].Seq != 1 {
			return &ledger.SequenceGapError{Prev: files[i-1].Name, Next: files[i].Name}
		}
	}
	return nil
}
