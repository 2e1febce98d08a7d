package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records scenario runs. Each instance owns its collectors so tests
// can register against a private registry.
type Metrics struct {
	scenariosTotal   *prometheus.CounterVec
	particlesRotated prometheus.Counter
	rotateDuration   *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		scenariosTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nbody_scenarios_total",
				Help: "Total number of scenarios run, by outcome.",
			},
			[]string{"outcome"},
		),
		particlesRotated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "nbody_particles_rotated_total",
				Help: "Total number of particles rotated.",
			},
		),
		rotateDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nbody_rotate_duration_seconds",
				Help:    "Time spent rotating a particle set.",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
			},
			[]string{"mode"},
		),
	}
	reg.MustRegister(m.scenariosTotal, m.particlesRotated, m.rotateDuration)
	return m
}

// ObserveRotate records one rotation pass over n particles.
func (m *Metrics) ObserveRotate(n int, parallel bool, took time.Duration) {
	mode := "sequential"
	if parallel {
		mode = "parallel"
	}
	m.particlesRotated.Add(float64(n))
	m.rotateDuration.WithLabelValues(mode).Observe(took.Seconds())
}

// ScenarioDone counts a finished scenario; err decides the outcome label.
func (m *Metrics) ScenarioDone(err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.scenariosTotal.WithLabelValues(outcome).Inc()
}
