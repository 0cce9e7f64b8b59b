package telemetry

import (
	"io"
	"sync"
	"time"

	"github.com/robinvdvleuten/salesagg/output"
)

// Recorder keeps every stage of a run in start order. Stages started with
// Start nest under the innermost stage that is still running; stages started
// with Timer.Child nest under that timer.
type Recorder struct {
	mu      sync.Mutex
	stages  []*stage // top level
	running []*stage // open stages created by Start, innermost last
	styles  *output.Styles
	now     func() time.Time
}

type stage struct {
	name     string
	start    time.Time
	end      time.Time
	units    []string // first-counted order
	counts   map[string]int
	children []*stage
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithStyles renders reports with terminal styling.
func WithStyles(styles *output.Styles) RecorderOption {
	return func(r *Recorder) {
		r.styles = styles
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) RecorderOption {
	return func(r *Recorder) {
		r.now = now
	}
}

// NewRecorder creates an empty recorder.
func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start begins a stage.
func (r *Recorder) Start(name string) Timer {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := &stage{name: name, start: r.now()}
	if n := len(r.running); n > 0 {
		parent := r.running[n-1]
		parent.children = append(parent.children, s)
	} else {
		r.stages = append(r.stages, s)
	}
	r.running = append(r.running, s)

	return &stageTimer{recorder: r, stage: s}
}

// Report writes one tree per top level stage to w.
func (r *Recorder) Report(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for _, s := range r.stages {
		writeTree(w, s, now, r.styles)
	}
}

type stageTimer struct {
	recorder *Recorder
	stage    *stage
}

// End stops the stage. Ending a stage twice keeps the first end time.
func (t *stageTimer) End() {
	r := t.recorder
	r.mu.Lock()
	defer r.mu.Unlock()

	if !t.stage.end.IsZero() {
		return
	}
	t.stage.end = r.now()

	for i := len(r.running) - 1; i >= 0; i-- {
		if r.running[i] == t.stage {
			r.running = append(r.running[:i], r.running[i+1:]...)
			break
		}
	}
}

func (t *stageTimer) Child(name string) Timer {
	r := t.recorder
	r.mu.Lock()
	defer r.mu.Unlock()

	s := &stage{name: name, start: r.now()}
	t.stage.children = append(t.stage.children, s)

	return &stageTimer{recorder: r, stage: s}
}

func (t *stageTimer) Count(unit string, n int) {
	r := t.recorder
	r.mu.Lock()
	defer r.mu.Unlock()

	s := t.stage
	if s.counts == nil {
		s.counts = make(map[string]int)
	}
	if _, ok := s.counts[unit]; !ok {
		s.units = append(s.units, unit)
	}
	s.counts[unit] += n
}

// elapsed is the stage duration; running stages count up to now.
func (s *stage) elapsed(now time.Time) time.Duration {
	end := s.end
	if end.IsZero() {
		end = now
	}
	return end.Sub(s.start)
}
