package cli

import (
	"errors"
	"fmt"

	"github.com/robinvdvleuten/salesagg/ledger"
)

// CommandError signals a command failure with a specific exit code.
// Commands return this after handling all output; main turns it into the
// process exit status.
type CommandError struct {
	exitCode int
}

// NewCommandError creates a new CommandError with the given exit code.
func NewCommandError(exitCode int) *CommandError {
	return &CommandError{exitCode: exitCode}
}

func (e *CommandError) Error() string {
	return "command failed"
}

// ExitCode returns the exit code associated with this error.
func (e *CommandError) ExitCode() int {
	return e.exitCode
}

// Diagnostic returns the single line shown to the user for err. Failures
// without a dedicated message, including wrapped I/O errors, all read as
// ledger.ErrUnexpected.
func Diagnostic(err error) string {
	var (
		missing  *ledger.MissingFileError
		lookup   *ledger.LookupFormatError
		gap      *ledger.SequenceGapError
		record   *ledger.RecordFormatError
		unknown  *ledger.UnknownCodeError
		overflow *ledger.OverflowError
	)

	switch {
	case errors.As(err, &missing):
		return missing.Error()
	case errors.As(err, &lookup):
		return lookup.Error()
	case errors.As(err, &gap):
		return gap.Error()
	case errors.As(err, &record):
		return record.Error()
	case errors.As(err, &unknown):
		return unknown.Error()
	case errors.As(err, &overflow):
		return overflow.Error()
	default:
		return ledger.ErrUnexpected.Error()
	}
}

// Detail describes where and why err happened, for --verbose output.
func Detail(err error) string {
	var (
		unexpected *ledger.UnexpectedError
		missing    *ledger.MissingFileError
		lookup     *ledger.LookupFormatError
		gap        *ledger.SequenceGapError
		record     *ledger.RecordFormatError
		unknown    *ledger.UnknownCodeError
		overflow   *ledger.OverflowError
	)

	switch {
	case errors.As(err, &unexpected):
		return unexpected.Cause()
	case errors.As(err, &missing):
		return fmt.Sprintf("%s: no such file", missing.Path)
	case errors.As(err, &lookup):
		return fmt.Sprintf("%s:%d: %q", lookup.Path, lookup.Line, lookup.Content)
	case errors.As(err, &gap):
		return fmt.Sprintf("%s is followed by %s", gap.Prev, gap.Next)
	case errors.As(err, &record):
		return fmt.Sprintf("%s: %d lines, want %d", record.File, record.Lines, record.Want)
	case errors.As(err, &unknown):
		return fmt.Sprintf("%s: %s code %q is not defined", unknown.File, unknown.Dimension, unknown.Code)
	case errors.As(err, &overflow):
		return fmt.Sprintf("%s: %s %s would reach %s", overflow.File, overflow.Dimension, overflow.Code, overflow.Total)
	default:
		return err.Error()
	}
}
