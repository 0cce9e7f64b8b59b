// Package telemetry records how long each stage of a run takes and how many
// units (codes, record files, summary lines) it handled.
//
// Collectors travel through context so the pipeline can be instrumented
// without changing function signatures. When no collector is present every
// call is a no-op.
//
//	rec := telemetry.NewRecorder()
//	ctx := telemetry.WithCollector(context.Background(), rec)
//
//	root := rec.Start("run ./sales")
//	ctx = telemetry.WithRootTimer(ctx, root)
//
//	timer := telemetry.StartTimer(ctx, "loader.discover")
//	timer.Count("files", len(files))
//	timer.End()
//
//	root.End()
//	rec.Report(os.Stderr)
package telemetry

import (
	"context"
	"io"
)

type contextKey int

const (
	collectorKey contextKey = iota
	rootTimerKey
)

// Collector gathers timers and reports them.
type Collector interface {
	// Start begins a stage. The returned timer must be ended with End.
	Start(name string) Timer

	// Report writes the recorded stages to w.
	Report(w io.Writer)
}

// Timer tracks a single stage.
type Timer interface {
	End()

	// Child starts a stage nested under this one.
	Child(name string) Timer

	// Count adds n units of the given kind to the stage, e.g. Count("files", 1).
	Count(unit string, n int)
}

// WithCollector adds a collector to a context.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext extracts the collector from context, or a no-op collector.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}

// WithRootTimer stores the timer that StartTimer nests new stages under.
func WithRootTimer(ctx context.Context, timer Timer) context.Context {
	return context.WithValue(ctx, rootTimerKey, timer)
}

// StartTimer starts a stage under the context's root timer if there is one,
// otherwise directly on the context's collector.
func StartTimer(ctx context.Context, name string) Timer {
	if root, ok := ctx.Value(rootTimerKey).(Timer); ok {
		return root.Child(name)
	}
	return FromContext(ctx).Start(name)
}
