package injector

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/zeusync/nbody/internal/core/observability/log"
	"github.com/zeusync/nbody/internal/metrics"
	"github.com/zeusync/nbody/internal/scenario"
)

// App holds the long-lived pieces a command needs.
type App struct {
	Logger   *log.Logger
	Registry *prometheus.Registry
	Runner   *scenario.Runner
}

func ProvideLogger(level log.Level) *log.Logger {
	return log.New(level)
}

func ProvideRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideRegistry,
	metrics.New,
	scenario.NewRunnerFromConfig,
	wire.Bind(new(log.Log), new(*log.Logger)),
	wire.Bind(new(prometheus.Registerer), new(*prometheus.Registry)),
	wire.Struct(new(App), "*"),
)
