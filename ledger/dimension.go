package ledger

import (
	"regexp"

	"golang.org/x/exp/slices"
)

// Dimension identifies one axis that sales are totalled against.
type Dimension int

const (
	DimensionUnknown Dimension = iota
	DimensionBranch
	DimensionCommodity
)

var (
	branchCodePattern    = regexp.MustCompile(`^[0-9]{3}$`)
	commodityCodePattern = regexp.MustCompile(`^[A-Za-z0-9]{8}$`)
)

// String returns the string representation of the dimension
func (d Dimension) String() string {
	switch d {
	case DimensionBranch:
		return "branch"
	case DimensionCommodity:
		return "commodity"
	default:
		return "unknown"
	}
}

// LookupFile returns the name of the definition file for the dimension.
func (d Dimension) LookupFile() string {
	return d.String() + ".lst"
}

// OutputFile returns the name of the summary file for the dimension.
func (d Dimension) OutputFile() string {
	return d.String() + ".out"
}

// ValidCode reports whether code has the shape required by the dimension.
// Branch codes are exactly three digits, commodity codes exactly eight
// alphanumeric characters.
func (d Dimension) ValidCode(code string) bool {
	switch d {
	case DimensionBranch:
		return branchCodePattern.MatchString(code)
	case DimensionCommodity:
		return commodityCodePattern.MatchString(code)
	default:
		return false
	}
}

// Schema is the ordered set of dimensions a run aggregates over. A record
// file carries one code per dimension, in schema order, followed by the
// amount.
type Schema []Dimension

var (
	// BranchOnly totals sales per branch. Records are [branch, amount].
	BranchOnly = Schema{DimensionBranch}

	// BranchCommodity totals sales per branch and per commodity. Records are
	// [branch, commodity, amount].
	BranchCommodity = Schema{DimensionBranch, DimensionCommodity}
)

// Arity returns the number of lines a record file must have.
func (s Schema) Arity() int {
	return len(s) + 1
}

// Has reports whether the schema includes the dimension.
func (s Schema) Has(d Dimension) bool {
	return slices.Contains(s, d)
}
