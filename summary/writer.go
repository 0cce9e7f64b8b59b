// Package summary writes aggregated totals back out: the flat
// "code,name,total" files a run produces, an aligned console report and
// structured exports.
package summary

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/robinvdvleuten/salesagg/ledger"
	"github.com/robinvdvleuten/salesagg/telemetry"
)

// Writer serializes tables as "code,name,total" lines in insertion order.
type Writer struct {
	// LineEnding terminates every line. Defaults to the platform convention.
	LineEnding string
}

// Option configures a Writer.
type Option func(*Writer)

// WithLineEnding overrides the platform line terminator.
func WithLineEnding(eol string) Option {
	return func(w *Writer) {
		w.LineEnding = eol
	}
}

// New creates a Writer with the given options.
func New(opts ...Option) *Writer {
	w := &Writer{LineEnding: platformLineEnding()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func platformLineEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Write writes one line per table entry to out.
func (w *Writer) Write(out io.Writer, table *ledger.Table) error {
	for _, e := range table.Entries() {
		if _, err := fmt.Fprintf(out, "%s,%s,%s%s", e.Code, e.Name, e.Total.String(), w.LineEnding); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile creates or truncates path and writes the table to it. The file
// is always closed; the first write, flush or close error is returned.
func (w *Writer) WriteFile(path string, table *ledger.Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return ledger.NewUnexpectedError("create "+path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ledger.NewUnexpectedError("close "+path, cerr)
		}
	}()

	buf := bufio.NewWriter(f)
	if err := w.Write(buf, table); err != nil {
		return ledger.NewUnexpectedError("write "+path, err)
	}
	if err := buf.Flush(); err != nil {
		return ledger.NewUnexpectedError("write "+path, err)
	}

	return nil
}

// WriteAll writes every table to its dimension's output file in dir.
func (w *Writer) WriteAll(ctx context.Context, dir string, tables []*ledger.Table) error {
	timer := telemetry.StartTimer(ctx, "summary.write")
	defer timer.End()

	for _, t := range tables {
		if err := w.WriteFile(filepath.Join(dir, t.Dimension.OutputFile()), t); err != nil {
			return err
		}
		timer.Count("lines", t.Len())
	}
	return nil
}
