package scenario

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/zeusync/nbody/internal/core/observability/log"
	"github.com/zeusync/nbody/internal/core/particles"
	"github.com/zeusync/nbody/internal/metrics"
	"github.com/zeusync/nbody/pkg/rotation"
	"gopkg.in/yaml.v3"
)

// RunnerConfig tunes how a Runner applies rotations.
type RunnerConfig struct {
	// Sets with at least this many particles are rotated in parallel.
	ParallelThreshold int
	Workers           int
}

type RunnerOption func(*RunnerConfig)

func WithParallelThreshold(n int) RunnerOption {
	return func(c *RunnerConfig) { c.ParallelThreshold = n }
}

func WithWorkers(n int) RunnerOption {
	return func(c *RunnerConfig) { c.Workers = n }
}

func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		ParallelThreshold: 4096,
		Workers:           runtime.GOMAXPROCS(0),
	}
}

// Runner validates scenarios and applies their rotation to the particle set.
type Runner struct {
	log     log.Log
	metrics *metrics.Metrics
	config  RunnerConfig
}

func NewRunner(logger log.Log, m *metrics.Metrics, opts ...RunnerOption) *Runner {
	cfg := DefaultRunnerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Runner{
		log:     logger.With(log.String("component", "scenario")),
		metrics: m,
		config:  cfg,
	}
}

// OrbitalDegrees is the orientation of the composed rotation in degrees.
type OrbitalDegrees struct {
	Node float64 `json:"Omega" yaml:"Omega"`
	Inc  float64 `json:"inc" yaml:"inc"`
	Peri float64 `json:"omega" yaml:"omega"`
}

type Report struct {
	Name     string         `json:"name" yaml:"name"`
	Count    int            `json:"count" yaml:"count"`
	Parallel bool           `json:"parallel" yaml:"parallel"`
	Checksum uint64         `json:"checksum" yaml:"checksum"`
	Orbital  OrbitalDegrees `json:"orbital" yaml:"orbital"`
	Duration time.Duration  `json:"duration" yaml:"duration"`
}

// Result is a finished run: the rotated set and its report.
type Result struct {
	Report    Report
	Rotation  rotation.Rotation
	Particles *particles.Set
}

// Run validates cfg, builds its particles and rotates them.
func (r *Runner) Run(ctx context.Context, cfg *Config) (res *Result, err error) {
	defer func() { r.metrics.ScenarioDone(err) }()

	if err = cfg.Validate(); err != nil {
		r.log.Error("invalid scenario", log.String("name", cfg.Name), log.Error(err))
		return nil, fmt.Errorf("scenario %q: %w", cfg.Name, err)
	}

	q := cfg.Rotation()
	set := cfg.ParticleSet()
	parallel := set.Len() >= r.config.ParallelThreshold

	start := time.Now()
	if parallel {
		if err = set.RotateParallel(ctx, q, r.config.Workers); err != nil {
			r.log.Error("rotate failed", log.String("name", cfg.Name), log.Error(err))
			return nil, fmt.Errorf("scenario %q: %w", cfg.Name, err)
		}
	} else {
		set.Rotate(q)
	}
	took := time.Since(start)
	r.metrics.ObserveRotate(set.Len(), parallel, took)

	angles := q.Orbital()
	report := Report{
		Name:     cfg.Name,
		Count:    set.Len(),
		Parallel: parallel,
		Checksum: set.Checksum(),
		Orbital: OrbitalDegrees{
			Node: degrees(angles.Node),
			Inc:  degrees(angles.Inc),
			Peri: degrees(angles.Peri),
		},
		Duration: took,
	}

	r.log.Info("scenario rotated",
		log.String("name", report.Name),
		log.Int("frames", len(cfg.Frames)),
		log.Int("count", report.Count),
		log.Bool("parallel", parallel),
		log.Uint64("checksum", report.Checksum),
		log.Float64("inc_deg", report.Orbital.Inc),
		log.Duration("took", took),
	)

	return &Result{Report: report, Rotation: q, Particles: set}, nil
}

// WriteYAML writes the report followed by the rotated particles.
func (res *Result) WriteYAML(w io.Writer) error {
	doc := struct {
		Report    Report               `yaml:"report"`
		Particles []particles.Particle `yaml:"particles"`
	}{
		Report:    res.Report,
		Particles: res.Particles.Particles(),
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// NewRunnerFromConfig is NewRunner with an explicit config, for injection.
func NewRunnerFromConfig(logger log.Log, m *metrics.Metrics, cfg RunnerConfig) *Runner {
	return NewRunner(logger, m, WithParallelThreshold(cfg.ParallelThreshold), WithWorkers(cfg.Workers))
}
