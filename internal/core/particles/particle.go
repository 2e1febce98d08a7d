package particles

import (
	"github.com/google/uuid"
	"github.com/zeusync/nbody/pkg/rotation"
	"github.com/zeusync/nbody/pkg/vector"
)

var _ rotation.Particle = (*Particle)(nil)

// Particle is a point mass with position and velocity in the simulation frame.
type Particle struct {
	ID   uuid.UUID `json:"id" yaml:"id"`
	Mass float64   `json:"mass" yaml:"mass"`

	X  float64 `json:"x" yaml:"x"`
	Y  float64 `json:"y" yaml:"y"`
	Z  float64 `json:"z" yaml:"z"`
	VX float64 `json:"vx" yaml:"vx"`
	VY float64 `json:"vy" yaml:"vy"`
	VZ float64 `json:"vz" yaml:"vz"`
}

// New returns a particle with a fresh random ID.
func New(mass float64, pos, vel vector.Vector3) Particle {
	p := Particle{ID: uuid.New(), Mass: mass}
	p.SetPosition(pos)
	p.SetVelocity(vel)
	return p
}

func (p *Particle) Position() vector.Vector3 { return vector.New(p.X, p.Y, p.Z) }

func (p *Particle) SetPosition(v vector.Vector3) { p.X, p.Y, p.Z = v.X, v.Y, v.Z }

func (p *Particle) Velocity() vector.Vector3 { return vector.New(p.VX, p.VY, p.VZ) }

func (p *Particle) SetVelocity(v vector.Vector3) { p.VX, p.VY, p.VZ = v.X, v.Y, v.Z }

// AngularMomentum returns m·(r × v).
func (p *Particle) AngularMomentum() vector.Vector3 {
	return p.Position().Cross(p.Velocity()).Scale(p.Mass)
}
