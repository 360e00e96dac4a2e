package app

import (
	"log/slog"

	"github.com/lobintsev/evmcrispr/internal/domain/config"
	"github.com/lobintsev/evmcrispr/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	RunScript      *usecase.RunScript
	CheckScript    *usecase.CheckScript
	PredictAddress *usecase.PredictAddress
	ListNetworks   *usecase.ListNetworks
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	runScript *usecase.RunScript,
	checkScript *usecase.CheckScript,
	predictAddress *usecase.PredictAddress,
	listNetworks *usecase.ListNetworks,
) (*App, error) {
	return &App{
		Config:         cfg,
		Log:            log,
		RunScript:      runScript,
		CheckScript:    checkScript,
		PredictAddress: predictAddress,
		ListNetworks:   listNetworks,
	}, nil
}
