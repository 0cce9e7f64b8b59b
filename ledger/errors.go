package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrUnexpected is the classification for failures that are not reported
// with their own message: I/O errors, malformed amounts and bad invocations.
var ErrUnexpected = errors.New("an unexpected error occurred")

// UnexpectedError wraps a cause under the ErrUnexpected classification.
// Its message never includes the cause; use Cause to inspect it.
type UnexpectedError struct {
	Op  string
	Err error
}

// NewUnexpectedError wraps err, recording the operation that failed.
func NewUnexpectedError(op string, err error) *UnexpectedError {
	return &UnexpectedError{Op: op, Err: err}
}

func (e *UnexpectedError) Error() string {
	return ErrUnexpected.Error()
}

// Cause returns a description of the underlying failure.
func (e *UnexpectedError) Cause() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns ErrUnexpected and the wrapped cause.
func (e *UnexpectedError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUnexpected}
	}
	return []error{ErrUnexpected, e.Err}
}

// MissingFileError is returned when a definition file does not exist
type MissingFileError struct {
	Dimension Dimension
	Path      string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("%s definition file does not exist", e.Dimension)
}

func (e *MissingFileError) GetDimension() Dimension {
	return e.Dimension
}

// LookupFormatError is returned when a definition file line does not have
// exactly two fields or its code has the wrong shape
type LookupFormatError struct {
	Dimension Dimension
	Path      string
	Line      int // 1-based
	Content   string
}

func (e *LookupFormatError) Error() string {
	return fmt.Sprintf("%s definition file has an invalid format", e.Dimension)
}

func (e *LookupFormatError) GetDimension() Dimension {
	return e.Dimension
}

func (e *LookupFormatError) GetLine() int {
	return e.Line
}

// SequenceGapError is returned when the discovered record files do not form
// a contiguous run of sequence numbers
type SequenceGapError struct {
	Prev string
	Next string
}

func (e *SequenceGapError) Error() string {
	return "sales file names are not consecutive"
}

// RecordFormatError is returned when a record file has the wrong number of lines
type RecordFormatError struct {
	File  string
	Lines int
	Want  int
}

func (e *RecordFormatError) Error() string {
	return fmt.Sprintf("<%s> has an invalid format", e.File)
}

func (e *RecordFormatError) GetFile() string {
	return e.File
}

// UnknownCodeError is returned when a record references a code missing from
// the dimension's definition file
type UnknownCodeError struct {
	File      string
	Dimension Dimension
	Code      string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("<%s> has an invalid %s code", e.File, e.Dimension)
}

func (e *UnknownCodeError) GetFile() string {
	return e.File
}

func (e *UnknownCodeError) GetDimension() Dimension {
	return e.Dimension
}

// OverflowError is returned when adding a record would bring a running total
// to ten billion or more
type OverflowError struct {
	File      string
	Dimension Dimension
	Code      string
	Total     decimal.Decimal // the rejected total
}

func (e *OverflowError) Error() string {
	return "total amount exceeded 10 digits"
}

func (e *OverflowError) GetFile() string {
	return e.File
}

func (e *OverflowError) GetDimension() Dimension {
	return e.Dimension
}
