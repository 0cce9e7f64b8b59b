// Package ledger aggregates daily sales records into running totals per
// branch and, optionally, per commodity.
//
// A ledger is built from one reference table per dimension of its schema.
// Record files are then processed in ascending sequence order; each record is
// validated against every table and its amount is added to the matching
// totals. Processing stops at the first invalid record. Totals contributed
// by earlier records stay committed, nothing of the failing record is.
//
// The ledger validates that:
//   - Each record file has exactly one line per dimension plus the amount
//   - Every code in a record is defined in its dimension's table
//   - The amount consists of decimal digits only
//   - No running total reaches ten billion
//
// Example usage:
//
//	l, err := ledger.New(ledger.BranchCommodity, branches, commodities)
//	if err != nil {
//	    return err
//	}
//	if err := l.Process(ctx, files, loader.ReadLines); err != nil {
//	    return err
//	}
package ledger

import (
	"context"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/salesagg/telemetry"
)

// MaxTotal is the exclusive ceiling for any running total (10 digits).
var MaxTotal = decimal.New(1, 10)

var amountPattern = regexp.MustCompile(`^[0-9]+$`)

// RecordFile is a daily sales file discovered in the working directory.
type RecordFile struct {
	Name string // base name, e.g. 00000001.rcd
	Path string
	Seq  int // numeric prefix of Name
}

// ReadLinesFunc reads a record file into its lines.
type ReadLinesFunc func(path string) ([]string, error)

// Record is the raw content of a record file that has the right arity.
type Record struct {
	File   string
	Codes  []string // one per schema dimension, in schema order
	Amount string
}

// RecordDelta holds the totals a valid record will commit.
type RecordDelta struct {
	Record *Record
	Amount decimal.Decimal
	Totals []decimal.Decimal // new totals, aligned with Record.Codes
}

// Ledger holds the reference tables and running totals of a single run.
type Ledger struct {
	schema Schema
	tables []*Table // aligned with schema
}

// New creates a ledger over schema. One table must be given per dimension,
// in any order.
func New(schema Schema, tables ...*Table) (*Ledger, error) {
	if len(schema) == 0 {
		return nil, fmt.Errorf("empty schema")
	}

	l := &Ledger{
		schema: schema,
		tables: make([]*Table, len(schema)),
	}

	for _, t := range tables {
		placed := false
		for i, dim := range schema {
			if t.Dimension == dim {
				l.tables[i] = t
				placed = true
			}
		}
		if !placed {
			return nil, fmt.Errorf("table for %s is not part of the schema", t.Dimension)
		}
	}

	for i, t := range l.tables {
		if t == nil {
			return nil, fmt.Errorf("missing table for %s", schema[i])
		}
	}

	return l, nil
}

// Schema returns the dimensions the ledger aggregates over.
func (l *Ledger) Schema() Schema {
	return l.schema
}

// Table returns the table of a dimension.
func (l *Ledger) Table(dim Dimension) (*Table, bool) {
	for i, d := range l.schema {
		if d == dim {
			return l.tables[i], true
		}
	}
	return nil, false
}

// Tables returns all tables in schema order.
func (l *Ledger) Tables() []*Table {
	return l.tables
}

// Process reads and applies every file in order. It stops at the first error.
func (l *Ledger) Process(ctx context.Context, files []RecordFile, readLines ReadLinesFunc) error {
	timer := telemetry.StartTimer(ctx, "ledger.aggregate")
	defer timer.End()

	for _, file := range files {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		lines, err := readLines(file.Path)
		if err != nil {
			return NewUnexpectedError("read "+file.Name, err)
		}

		rec, err := l.ParseRecord(file.Name, lines)
		if err != nil {
			return err
		}

		if err := l.Apply(rec); err != nil {
			return err
		}
		timer.Count("files", 1)
	}

	return nil
}

// ParseRecord splits the lines of a record file into codes and amount.
func (l *Ledger) ParseRecord(file string, lines []string) (*Record, error) {
	if len(lines) != l.schema.Arity() {
		return nil, &RecordFormatError{File: file, Lines: len(lines), Want: l.schema.Arity()}
	}

	n := len(l.schema)
	return &Record{
		File:   file,
		Codes:  lines[:n],
		Amount: lines[n],
	}, nil
}

// Apply validates rec and commits its amount to every dimension's total.
func (l *Ledger) Apply(rec *Record) error {
	delta, err := l.validateRecord(rec)
	if err != nil {
		return err
	}

	l.ApplyRecordDelta(delta)
	return nil
}

// validateRecord checks rec against the current state without mutating it.
func (l *Ledger) validateRecord(rec *Record) (*RecordDelta, error) {
	for i, code := range rec.Codes {
		if !l.tables[i].Has(code) {
			return nil, &UnknownCodeError{File: rec.File, Dimension: l.schema[i], Code: code}
		}
	}

	if !amountPattern.MatchString(rec.Amount) {
		return nil, NewUnexpectedError(fmt.Sprintf("parse amount %q in %s", rec.Amount, rec.File), nil)
	}

	amount, err := decimal.NewFromString(rec.Amount)
	if err != nil {
		return nil, NewUnexpectedError("parse amount in "+rec.File, err)
	}

	delta := &RecordDelta{
		Record: rec,
		Amount: amount,
		Totals: make([]decimal.Decimal, len(rec.Codes)),
	}

	for i, code := range rec.Codes {
		total := l.tables[i].Total(code).Add(amount)
		if total.GreaterThanOrEqual(MaxTotal) {
			return nil, &OverflowError{File: rec.File, Dimension: l.schema[i], Code: code, Total: total}
		}
		delta.Totals[i] = total
	}

	return delta, nil
}

// ApplyRecordDelta mutates ledger state by committing the totals computed
// during validation.
func (l *Ledger) ApplyRecordDelta(delta *RecordDelta) {
	for i, code := range delta.Record.Codes {
		l.tables[i].set(code, delta.Totals[i])
	}
}
