// Package rotation implements rigid 3D rotations as unit quaternions.
//
// Conventions follow the usual SIMD quaternion layout: R is the real part
// cos(θ/2), and (IX, IY, IZ) is sin(θ/2) times the rotation axis.
// Composition with Mul reads right to left, so Mul(p, q) rotates by q first.
//
// Nothing here reports errors. Normalizing a zero vector or inverting a zero
// quaternion yields NaN/Inf components that propagate to the caller.
package rotation

import (
	"github.com/zeusync/nbody/pkg/vector"
	"gonum.org/v1/gonum/num/quat"
)

// Rotation is a quaternion, by convention of unit norm.
type Rotation struct {
	R, IX, IY, IZ float64
}

// Identity returns the rotation that leaves every vector unchanged.
func Identity() Rotation {
	return Rotation{R: 1}
}

// Imag returns the imaginary part as a vector.
func (q Rotation) Imag() vector.Vector3 {
	return vector.Vector3{X: q.IX, Y: q.IY, Z: q.IZ}
}

// Mul returns the Hamilton product p·q: the rotation that applies q, then p.
func Mul(p, q Rotation) Rotation {
	return Rotation{
		R:  p.R*q.R - p.IX*q.IX - p.IY*q.IY - p.IZ*q.IZ,
		IX: p.R*q.IX + p.IX*q.R + p.IY*q.IZ - p.IZ*q.IY,
		IY: p.R*q.IY - p.IX*q.IZ + p.IY*q.R + p.IZ*q.IX,
		IZ: p.R*q.IZ + p.IX*q.IY - p.IY*q.IX + p.IZ*q.R,
	}
}

// Then returns the rotation that applies q, then next.
func (q Rotation) Then(next Rotation) Rotation {
	return Mul(next, q)
}

func (q Rotation) LengthSquared() float64 {
	return q.R*q.R + q.IX*q.IX + q.IY*q.IY + q.IZ*q.IZ
}

func (q Rotation) Conjugate() Rotation {
	return Rotation{R: q.R, IX: -q.IX, IY: -q.IY, IZ: -q.IZ}
}

// Inverse returns conj(q)/|q|². It does not assume q has unit norm.
func (q Rotation) Inverse() Rotation {
	c := q.Conjugate()
	s := 1 / q.LengthSquared()
	c.R *= s
	c.IX *= s
	c.IY *= s
	c.IZ *= s
	return c
}

// Quat converts q to a gonum quaternion number.
func (q Rotation) Quat() quat.Number {
	return quat.Number{Real: q.R, Imag: q.IX, Jmag: q.IY, Kmag: q.IZ}
}

func FromQuat(n quat.Number) Rotation {
	return Rotation{R: n.Real, IX: n.Imag, IY: n.Jmag, IZ: n.Kmag}
}
