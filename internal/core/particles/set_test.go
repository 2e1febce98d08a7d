package particles

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/nbody/pkg/rotation"
	"github.com/zeusync/nbody/pkg/vector"
)

func randomSet(n int, seed uint64) *Set {
	r := rand.New(rand.NewPCG(seed, seed+1))
	s := NewSet()
	for i := 0; i < n; i++ {
		pos := vector.New(r.NormFloat64(), r.NormFloat64(), r.NormFloat64())
		vel := vector.New(r.NormFloat64(), r.NormFloat64(), r.NormFloat64())
		s.Add(New(r.Float64()+0.1, pos, vel))
	}
	return s
}

func TestParticleAccessors(t *testing.T) {
	p := New(2, vector.New(1, 2, 3), vector.New(4, 5, 6))
	assert.NotEqual(t, [16]byte{}, [16]byte(p.ID))
	assert.Equal(t, vector.New(1, 2, 3), p.Position())
	assert.Equal(t, vector.New(4, 5, 6), p.Velocity())

	p.SetPosition(vector.New(-1, -2, -3))
	assert.Equal(t, -1.0, p.X)
	assert.Equal(t, -3.0, p.Z)
	assert.Equal(t, 4.0, p.VX, "velocity untouched")
}

func TestRotateParticle(t *testing.T) {
	p := New(1, vector.New(1, 0, 0), vector.New(0, 1, 0))
	rotation.IRotateParticle(&p, rotation.AngleAxis(math.Pi/2, vector.UnitZ))

	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 1, p.Y, 1e-12)
	assert.InDelta(t, -1, p.VX, 1e-12)
	assert.InDelta(t, 0, p.VY, 1e-12)
	assert.Equal(t, 1.0, p.Mass)
}

func TestSetRotateInIndexOrder(t *testing.T) {
	s := randomSet(20, 1)
	before := s.Particles()
	q := rotation.Orbital(0.3, 0.7, 1.9)
	s.Rotate(q)

	require.Equal(t, len(before), s.Len())
	for i, p := range s.All() {
		assert.Equal(t, before[i].ID, p.ID)
		assert.Equal(t, rotation.Rotate(before[i].Position(), q), p.Position())
		assert.Equal(t, rotation.Rotate(before[i].Velocity(), q), p.Velocity())
	}
}

func TestSetRotateParallelMatchesSequential(t *testing.T) {
	q := rotation.FromTo(vector.New(1, 2, 3), vector.New(-3, 0.5, 1))
	for _, workers := range []int{0, 1, 3, 8, 64} {
		seq := randomSet(257, 7)
		par := randomSet(257, 7)
		require.Equal(t, seq.Checksum(), par.Checksum())

		seq.Rotate(q)
		require.NoError(t, par.RotateParallel(context.Background(), q, workers))
		assert.Equal(t, seq.Checksum(), par.Checksum(), "workers=%d", workers)
	}
}

func TestSetRotateParallelCanceled(t *testing.T) {
	s := randomSet(10, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.RotateParallel(ctx, rotation.Identity(), 2), context.Canceled)
}

func TestAngularMomentumMagnitudeInvariant(t *testing.T) {
	s := randomSet(50, 11)
	before := s.AngularMomentum()
	q := rotation.Orbital(2.1, 0.4, 5.5)
	s.Rotate(q)
	after := s.AngularMomentum()

	assert.InDelta(t, before.Length(), after.Length(), 1e-9)
	rotated := rotation.Rotate(before, q)
	assert.InDelta(t, rotated.X, after.X, 1e-9)
	assert.InDelta(t, rotated.Y, after.Y, 1e-9)
	assert.InDelta(t, rotated.Z, after.Z, 1e-9)
}

func TestChecksumTracksState(t *testing.T) {
	a := randomSet(5, 2)
	b := randomSet(5, 2)
	assert.Equal(t, a.Checksum(), b.Checksum())

	b.Get(3).VZ += 1e-12
	assert.NotEqual(t, a.Checksum(), b.Checksum())

	assert.Equal(t, NewSet().Checksum(), NewSet().Checksum())
}

func TestAllStopsEarly(t *testing.T) {
	s := randomSet(10, 4)
	n := 0
	for i := range s.All() {
		if i == 2 {
			break
		}
		n++
	}
	assert.Equal(t, 2, n)
}
