package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRotateCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRotateWritesReport(t *testing.T) {
	out, err := execute(t, "--config", "testdata/disk.yaml", "--log", "error")
	require.NoError(t, err)

	var doc struct {
		Report struct {
			Name    string `yaml:"name"`
			Count   int    `yaml:"count"`
			Orbital struct {
				Node float64 `yaml:"Omega"`
				Inc  float64 `yaml:"inc"`
				Peri float64 `yaml:"omega"`
			} `yaml:"orbital"`
		} `yaml:"report"`
		Particles []struct {
			X  float64 `yaml:"x"`
			Y  float64 `yaml:"y"`
			Z  float64 `yaml:"z"`
			VX float64 `yaml:"vx"`
			VY float64 `yaml:"vy"`
			VZ float64 `yaml:"vz"`
		} `yaml:"particles"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "tilt-disk", doc.Report.Name)
	assert.Equal(t, 2, doc.Report.Count)
	assert.InDelta(t, 45, doc.Report.Orbital.Inc, 1e-9)
	assert.InDelta(t, 30, doc.Report.Orbital.Node, 1e-9)
	assert.InDelta(t, 10, doc.Report.Orbital.Peri, 1e-9)

	require.Len(t, doc.Particles, 2)
	p := doc.Particles[1]
	assert.InDelta(t, 5.2*5.2, p.X*p.X+p.Y*p.Y+p.Z*p.Z, 1e-9)
	assert.InDelta(t, 0.44*0.44, p.VX*p.VX+p.VY*p.VY+p.VZ*p.VZ, 1e-12)
}

func TestRotateWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	out, err := execute(t, "-c", "testdata/disk.yaml", "-o", path, "--log", "error")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tilt-disk")
}

func TestRotateWritesMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rotate.prom")
	_, err := execute(t, "-c", "testdata/disk.yaml", "--metrics-out", path, "--log", "error")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "nbody_particles_rotated_total 2")
	assert.Contains(t, text, `nbody_scenarios_total{outcome="ok"} 1`)
	assert.Contains(t, text, `nbody_rotate_duration_seconds_count{mode="sequential"} 1`)
}

func TestRotateWritesMetricsOnFailure(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(input, []byte("name: bad\nframes:\n  - type: matrix\n"), 0o600))
	path := filepath.Join(dir, "rotate.prom")

	_, err := execute(t, "-c", input, "--metrics-out", path, "--log", "error")
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `nbody_scenarios_total{outcome="error"} 1`)
}

func TestRotateErrors(t *testing.T) {
	_, err := execute(t)
	assert.Error(t, err, "missing --config")

	_, err = execute(t, "--config", "testdata/missing.yaml", "--log", "error")
	assert.Error(t, err)

	_, err = execute(t, "--config", "testdata/disk.yaml", "--log", "loud")
	assert.Error(t, err)

	_, err = execute(t, "--config", "testdata/disk.yaml", "extra")
	assert.Error(t, err)
}
