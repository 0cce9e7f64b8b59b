// Package runner wires the loader, ledger and summary packages into the
// single batch job: load definitions, discover record files, aggregate them
// in order and write one summary file per dimension.
//
// Summaries are written only after every record has been aggregated, so a
// failed run leaves no output behind.
package runner

import (
	"context"

	"github.com/robinvdvleuten/salesagg/ledger"
	"github.com/robinvdvleuten/salesagg/loader"
	"github.com/robinvdvleuten/salesagg/summary"
)

// Runner executes sales runs over a working directory.
type Runner struct {
	Loader *loader.Loader
	Writer *summary.Writer

	// ReadLines reads a record file. Defaults to loader.ReadLines.
	ReadLines ledger.ReadLinesFunc
}

// Option configures a Runner.
type Option func(*Runner)

// WithSchema selects the dimensions that are aggregated.
func WithSchema(schema ledger.Schema) Option {
	return func(r *Runner) {
		r.Loader = loader.New(loader.WithSchema(schema))
	}
}

// WithWriter replaces the summary writer.
func WithWriter(w *summary.Writer) Option {
	return func(r *Runner) {
		r.Writer = w
	}
}

// New creates a Runner for the branch and commodity schema unless
// configured otherwise.
func New(opts ...Option) *Runner {
	r := &Runner{
		Loader:    loader.New(),
		Writer:    summary.New(),
		ReadLines: loader.ReadLines,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Aggregate loads dir and processes all of its record files without writing
// anything.
func (r *Runner) Aggregate(ctx context.Context, dir string) (*ledger.Ledger, error) {
	result, err := r.Loader.Load(ctx, dir)
	if err != nil {
		return nil, err
	}

	if err := result.Ledger.Process(ctx, result.Files, r.ReadLines); err != nil {
		return nil, err
	}

	return result.Ledger, nil
}

// Run aggregates dir and writes the summary files into it.
func (r *Runner) Run(ctx context.Context, dir string) (*ledger.Ledger, error) {
	l, err := r.Aggregate(ctx, dir)
	if err != nil {
		return nil, err
	}

	if err := r.Writer.WriteAll(ctx, dir, l.Tables()); err != nil {
		return nil, err
	}

	return l, nil
}
