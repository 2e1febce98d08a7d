package rotation

import "github.com/zeusync/nbody/pkg/vector"

// Particle is a body whose position and velocity can be rewritten in place.
type Particle interface {
	Position() vector.Vector3
	SetPosition(vector.Vector3)
	Velocity() vector.Vector3
	SetVelocity(vector.Vector3)
}

// Collection is an indexed set of particles.
type Collection interface {
	Len() int
	At(i int) Particle
}

// Rotate returns v rotated by q.
func Rotate(v vector.Vector3, q Rotation) vector.Vector3 {
	IRotate(&v, q)
	return v
}

// IRotate rotates v in place.
//
// This is the expansion of q·v·q⁻¹ for unit q:
//
//	t = 2 (u × v)
//	v' = v + r t + u × t
//
// with u the imaginary part of q. No matrix is built.
func IRotate(v *vector.Vector3, q Rotation) {
	u := q.Imag()
	t := u.Cross(*v).Scale(2)
	*v = v.Add(t.Scale(q.R).Add(u.Cross(t)))
}

// IRotateParticle rotates position and velocity of p by the same q.
func IRotateParticle(p Particle, q Rotation) {
	p.SetPosition(Rotate(p.Position(), q))
	p.SetVelocity(Rotate(p.Velocity(), q))
}

// IRotateCollection rotates every particle of c in index order.
func IRotateCollection(c Collection, q Rotation) {
	n := c.Len()
	for i := 0; i < n; i++ {
		IRotateParticle(c.At(i), q)
	}
}
