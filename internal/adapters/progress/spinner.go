package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/lobintsev/evmcrispr/internal/usecase"
)

// SpinnerProgressReporter implements progress reporting with a spinner
type SpinnerProgressReporter struct {
	spinner      *spinner.Spinner
	out          io.Writer
	stages       []stageInfo
	currentStage usecase.ExecutionStage
}

type stageInfo struct {
	Stage     usecase.ExecutionStage
	StartTime time.Time
	EndTime   time.Time
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter
// writing to stderr
func NewSpinnerProgressReporter() *SpinnerProgressReporter {
	return newSpinnerProgressReporter(os.Stderr)
}

func newSpinnerProgressReporter(out io.Writer) *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		spinner: s,
		out:     out,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage != r.currentStage {
		r.completeCurrentStage()
		r.currentStage = event.Stage
		r.stages = append(r.stages, stageInfo{Stage: event.Stage, StartTime: time.Now()})
	}

	if event.Stage == usecase.StageCompleted {
		r.completeCurrentStage()
		if r.spinner.Active() {
			r.spinner.Stop()
		}
		return
	}

	if event.Spinner {
		r.spinner.Suffix = " " + event.Message
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.pause(func() { color.New(color.FgCyan).Fprintln(r.out, message) })
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.pause(func() { color.New(color.FgRed).Fprintln(r.out, message) })
}

// Durations returns how long each finished stage took, in order
func (r *SpinnerProgressReporter) Durations() map[usecase.ExecutionStage]time.Duration {
	out := make(map[usecase.ExecutionStage]time.Duration, len(r.stages))
	for _, s := range r.stages {
		if !s.EndTime.IsZero() {
			out[s.Stage] = s.EndTime.Sub(s.StartTime)
		}
	}
	return out
}

func (r *SpinnerProgressReporter) pause(print func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	print()
	if wasActive {
		r.spinner.Start()
	}
}

// completeCurrentStage marks the current stage as completed
func (r *SpinnerProgressReporter) completeCurrentStage() {
	if len(r.stages) == 0 {
		return
	}
	idx := len(r.stages) - 1
	if r.stages[idx].EndTime.IsZero() {
		r.stages[idx].EndTime = time.Now()
	}
}

// String summarizes finished stages, e.g. "validating 2ms → interpreting 1.2s"
func (r *SpinnerProgressReporter) String() string {
	var display string
	for i, s := range r.stages {
		if s.EndTime.IsZero() || s.Stage == usecase.StageCompleted {
			continue
		}
		if i > 0 && display != "" {
			display += " → "
		}
		display += fmt.Sprintf("%s %s", s.Stage, s.EndTime.Sub(s.StartTime).Round(time.Millisecond))
	}
	return display
}

var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
