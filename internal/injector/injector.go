//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"
	"github.com/zeusync/nbody/internal/core/observability/log"
	"github.com/zeusync/nbody/internal/scenario"
)

func InitializeApp(level log.Level, cfg scenario.RunnerConfig) *App {
	wire.Build(ProviderSet)
	return nil
}
