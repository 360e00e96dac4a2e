//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/lobintsev/evmcrispr/internal/adapters"
	"github.com/lobintsev/evmcrispr/internal/config"
	"github.com/lobintsev/evmcrispr/internal/logging"
	"github.com/lobintsev/evmcrispr/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewRunScript,
		usecase.NewCheckScript,
		usecase.NewPredictAddress,
		usecase.NewListNetworks,

		// App
		NewApp,
	)
	return nil, nil
}
