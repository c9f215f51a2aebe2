//go:build wireinject
// +build wireinject

package di

import (
	"AstroServe/pkg/config"
	"AstroServe/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideCache,
		ProvideEphemeris,
		ProvideAssembler,
		ProvideComparator,
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
