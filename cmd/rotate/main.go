package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/zeusync/nbody/internal/core/observability/log"
	"github.com/zeusync/nbody/internal/injector"
	"github.com/zeusync/nbody/internal/scenario"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRotateCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

type rotateOpts struct {
	configPath string
	outPath    string
	metricsOut string
	workers    int
	threshold  int
	logLevel   string
}

func newRotateCommand() *cobra.Command {
	defaults := scenario.DefaultRunnerConfig()
	opts := rotateOpts{
		workers:   defaults.Workers,
		threshold: defaults.ParallelThreshold,
		logLevel:  "info",
	}

	cmd := &cobra.Command{
		Use:   "rotate --config scenario.yaml",
		Short: "Rotate a particle set through a chain of frame changes",
		Long: `Load a scenario (YAML, or JSON by .json extension), compose its frames into a
single rotation, apply it to every particle's position and velocity and write
the rotated particles with a short report as YAML.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRotate(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", opts.configPath, "scenario file")
	flags.StringVarP(&opts.outPath, "out", "o", opts.outPath, "write output here instead of stdout")
	flags.StringVar(&opts.metricsOut, "metrics-out", opts.metricsOut, "write run metrics in Prometheus text format to this file")
	flags.IntVar(&opts.workers, "workers", opts.workers, "goroutines used for large particle sets")
	flags.IntVar(&opts.threshold, "parallel-threshold", opts.threshold, "rotate in parallel at or above this many particles")
	flags.StringVar(&opts.logLevel, "log", opts.logLevel, "log level: debug, info, warn, error")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runRotate(ctx context.Context, opts rotateOpts, stdout io.Writer) error {
	level, err := log.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}

	app := injector.InitializeApp(level, scenario.RunnerConfig{
		ParallelThreshold: opts.threshold,
		Workers:           opts.workers,
	})
	defer func() { _ = app.Logger.Sync() }()

	cfg, err := load(opts.configPath)
	if err != nil {
		app.Logger.Error("load scenario", log.String("path", opts.configPath), log.Error(err))
		return err
	}

	res, err := app.Runner.Run(ctx, cfg)
	if opts.metricsOut != "" {
		if werr := prometheus.WriteToTextfile(opts.metricsOut, app.Registry); werr != nil {
			app.Logger.Error("write metrics", log.String("path", opts.metricsOut), log.Error(werr))
			if err == nil {
				err = fmt.Errorf("write metrics: %w", werr)
			}
		}
	}
	if err != nil {
		return err
	}

	out := stdout
	if opts.outPath != "" {
		f, err := os.Create(opts.outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := res.WriteYAML(out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func load(path string) (*scenario.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return scenario.LoadJSON(f)
	}
	return scenario.LoadYAML(f)
}
