package ledger

import (
	"github.com/shopspring/decimal"
)

// Entry is a single row of a reference table together with its running total.
type Entry struct {
	Code  string
	Name  string
	Total decimal.Decimal
}

// Table maps the codes of one dimension to their names and running totals.
// Entries keep the order in which their codes were first added.
type Table struct {
	Dimension Dimension

	entries []*Entry
	index   map[string]*Entry
}

// NewTable creates an empty table for the dimension.
func NewTable(dim Dimension) *Table {
	return &Table{
		Dimension: dim,
		index:     make(map[string]*Entry),
	}
}

// Add registers code with name and a zero total. Adding a code that is
// already present overwrites its name and resets its total, keeping its
// original position.
func (t *Table) Add(code, name string) {
	if e, ok := t.index[code]; ok {
		e.Name = name
		e.Total = decimal.Zero
		return
	}

	e := &Entry{Code: code, Name: name, Total: decimal.Zero}
	t.entries = append(t.entries, e)
	t.index[code] = e
}

// Has reports whether code is known to the table.
func (t *Table) Has(code string) bool {
	_, ok := t.index[code]
	return ok
}

// Name returns the name registered for code.
func (t *Table) Name(code string) (string, bool) {
	e, ok := t.index[code]
	if !ok {
		return "", false
	}
	return e.Name, true
}

// Total returns the running total for code, zero for unknown codes.
func (t *Table) Total(code string) decimal.Decimal {
	if e, ok := t.index[code]; ok {
		return e.Total
	}
	return decimal.Zero
}

// Entries returns the table rows in insertion order.
func (t *Table) Entries() []*Entry {
	return t.entries
}

// Len returns the number of codes in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

func (t *Table) set(code string, total decimal.Decimal) {
	t.index[code].Total = total
}
