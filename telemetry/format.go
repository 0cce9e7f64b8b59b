package telemetry

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/robinvdvleuten/salesagg/output"
)

// slowStage marks stages that are highlighted in styled reports.
const slowStage = 100 * time.Millisecond

// writeTree writes the stage and its descendants, e.g.
//
//	run ./sales: 12ms
//	├─ loader.tables: 1ms (14 codes)
//	├─ loader.discover: 0ms (3 files)
//	├─ ledger.aggregate: 9ms (3 files, 333/s)
//	└─ summary.write: 2ms (14 lines)
func writeTree(w io.Writer, root *stage, now time.Time, styles *output.Styles) {
	name := root.name
	if styles != nil {
		name = styles.Keyword(name)
	}
	_, _ = fmt.Fprintf(w, "%s: %s%s\n", name, formatDuration(root.elapsed(now)), root.summary(now))

	for i, child := range root.children {
		writeStage(w, child, now, "", i == len(root.children)-1, styles)
	}
}

func writeStage(w io.Writer, s *stage, now time.Time, prefix string, last bool, styles *output.Styles) {
	branch, indent := "├─ ", "│  "
	if last {
		branch, indent = "└─ ", "   "
	}

	d := s.elapsed(now)
	tree, timing := prefix+branch, formatDuration(d)
	if styles != nil {
		tree = styles.Dim(tree)
		timing = styles.Timing(timing, d >= slowStage)
	}
	_, _ = fmt.Fprintf(w, "%s%s: %s%s\n", tree, s.name, timing, s.summary(now))

	for i, child := range s.children {
		writeStage(w, child, now, prefix+indent, i == len(s.children)-1, styles)
	}
}

// summary lists the counted units. The first unit also gets a per second
// rate once the stage took at least a millisecond.
func (s *stage) summary(now time.Time) string {
	if len(s.units) == 0 {
		return ""
	}

	parts := make([]string, 0, len(s.units)+1)
	for _, unit := range s.units {
		parts = append(parts, fmt.Sprintf("%d %s", s.counts[unit], unit))
	}
	if d := s.elapsed(now); d >= time.Millisecond {
		parts = append(parts, formatRate(float64(s.counts[s.units[0]])/d.Seconds()))
	}

	return " (" + strings.Join(parts, ", ") + ")"
}

// formatDuration shows milliseconds below one second, seconds otherwise.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

func formatRate(perSecond float64) string {
	if perSecond >= 1000 {
		return fmt.Sprintf("%.1fk/s", perSecond/1000)
	}
	return fmt.Sprintf("%.0f/s", perSecond)
}
