// Package loader reads the inputs of a sales run from a working directory:
// one definition file per dimension and the daily record files.
//
// Definition files are comma separated "code,name" lines without a header.
// Record files are named with an eight digit sequence number and a ".rcd"
// extension and must form a contiguous run.
//
// Example usage:
//
//	// Load branch and commodity definitions and discover record files
//	ldr := loader.New()
//	result, err := ldr.Load(ctx, "./sales")
//
//	// Branch totals only
//	ldr := loader.New(loader.WithSchema(ledger.BranchOnly))
//	result, err := ldr.Load(ctx, "./sales")
package loader

import (
	"context"

	"github.com/robinvdvleuten/salesagg/ledger"
	"github.com/robinvdvleuten/salesagg/telemetry"
)

// Loader reads definition tables and discovers record files.
//
// Configure the loader using functional options passed to New:
//
//	loader := New(WithSchema(ledger.BranchOnly))
type Loader struct {
	// Schema selects which definition files are loaded. Defaults to
	// ledger.BranchCommodity.
	Schema ledger.Schema
}

// Option configures how a directory is loaded.
type Option func(*Loader)

// WithSchema selects the dimensions whose definition files are loaded.
func WithSchema(schema ledger.Schema) Option {
	return func(l *Loader) {
		l.Schema = schema
	}
}

// New creates a new Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{
		Schema: ledger.BranchCommodity,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Result is everything read from a working directory before aggregation.
type Result struct {
	Dir    string
	Ledger *ledger.Ledger
	Files  []ledger.RecordFile
}

// Load reads every definition file of the schema, in schema order, and then
// discovers the record files. The first failure is returned.
func (l *Loader) Load(ctx context.Context, dir string) (*Result, error) {
	timer := telemetry.StartTimer(ctx, "loader.tables")
	tables := make([]*ledger.Table, 0, len(l.Schema))
	for _, dim := range l.Schema {
		t, err := LoadTable(dir, dim)
		if err != nil {
			timer.End()
			return nil, err
		}
		timer.Count("codes", t.Len())
		tables = append(tables, t)
	}
	timer.End()

	led, err := ledger.New(l.Schema, tables...)
	if err != nil {
		return nil, err
	}

	files, err := Discover(ctx, dir)
	if err != nil {
		return nil, err
	}

	return &Result{Dir: dir, Ledger: led, Files: files}, nil
}
