package progress

import (
	"github.com/lobintsev/evmcrispr/internal/domain/config"
	"github.com/lobintsev/evmcrispr/internal/usecase"
)

// NewProgressSink picks the spinner for interactive runs and the no-op sink
// when output is JSON or the run is non-interactive.
func NewProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.JSON || cfg.NonInteractive {
		return usecase.NopProgress{}
	}
	return NewSpinnerProgressReporter()
}
