package particles

import (
	"context"
	"encoding/binary"
	"iter"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/zeusync/nbody/pkg/concurrent"
	"github.com/zeusync/nbody/pkg/rotation"
	"github.com/zeusync/nbody/pkg/vector"
)

var _ rotation.Collection = (*Set)(nil)

// Set is an ordered collection of particles. It is not safe for concurrent
// mutation; RotateParallel is safe because its workers touch disjoint indices.
type Set struct {
	particles []Particle
}

func NewSet(ps ...Particle) *Set {
	s := &Set{particles: make([]Particle, 0, len(ps))}
	s.Add(ps...)
	return s
}

func (s *Set) Add(ps ...Particle) {
	s.particles = append(s.particles, ps...)
}

func (s *Set) Len() int { return len(s.particles) }

// At returns a pointer into the set; writes through it change the set.
func (s *Set) At(i int) rotation.Particle { return &s.particles[i] }

// Get returns the particle at i by pointer.
func (s *Set) Get(i int) *Particle { return &s.particles[i] }

// All iterates over index and particle pointer in order.
func (s *Set) All() iter.Seq2[int, *Particle] {
	return func(yield func(int, *Particle) bool) {
		for i := range s.particles {
			if !yield(i, &s.particles[i]) {
				return
			}
		}
	}
}

// Particles returns a copy of the current state.
func (s *Set) Particles() []Particle {
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Rotate rotates every particle by q in index order.
func (s *Set) Rotate(q rotation.Rotation) {
	rotation.IRotateCollection(s, q)
}

// RotateParallel rotates the set by q using up to workers goroutines, each
// owning a contiguous block of indices. The result is bit-identical to Rotate.
func (s *Set) RotateParallel(ctx context.Context, q rotation.Rotation, workers int) error {
	return concurrent.Chunks(ctx, len(s.particles), workers, func(ctx context.Context, span concurrent.Span) error {
		for i := span.Lo; i < span.Hi; i++ {
			rotation.IRotateParticle(&s.particles[i], q)
		}
		return ctx.Err()
	})
}

// AngularMomentum returns the total angular momentum about the origin.
func (s *Set) AngularMomentum() vector.Vector3 {
	var l vector.Vector3
	for _, p := range s.All() {
		l = l.Add(p.AngularMomentum())
	}
	return l
}

// Checksum hashes the mass, position and velocity bits of every particle in
// order. Equal sets hash equal; IDs are not included.
func (s *Set) Checksum() uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, p := range s.All() {
		for _, f := range [...]float64{p.Mass, p.X, p.Y, p.Z, p.VX, p.VY, p.VZ} {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
			_, _ = d.Write(buf[:])
		}
	}
	return d.Sum64()
}
