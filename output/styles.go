// Package output provides styling helpers for terminal output.
package output

import (
	"io"

	"github.com/muesli/termenv"
)

// Styles renders text for a specific writer. Color is only emitted when the
// writer is a terminal that supports it.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a new Styles instance for the given writer.
func NewStyles(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w),
	}
}

// Code renders a branch or commodity code in yellow.
func (s *Styles) Code(text string) string {
	return s.output.String(text).Foreground(s.output.Color("3")).String()
}

// Amount renders a sales total in magenta.
func (s *Styles) Amount(text string) string {
	return s.output.String(text).Foreground(s.output.Color("5")).String()
}

// Keyword renders text bold.
func (s *Styles) Keyword(text string) string {
	return s.output.String(text).Bold().String()
}

// Dim renders secondary information faint.
func (s *Styles) Dim(text string) string {
	return s.output.String(text).Faint().String()
}

// Timing renders a duration, red when the stage was slow and dimmed otherwise.
func (s *Styles) Timing(text string, slow bool) string {
	if slow {
		return s.output.String(text).Foreground(s.output.Color("1")).String()
	}
	return s.Dim(text)
}
