package rotation

import (
	"math"

	"github.com/zeusync/nbody/pkg/vector"
)

// FromTo returns the smallest rotation that turns the direction of from
// into the direction of to. Neither argument may be the zero vector.
//
// When from and to point in exactly opposite directions the axis is
// undefined. The result is then a half turn about from × e, where e is the
// world axis along which from has its smallest absolute component. That
// quaternion has R = 0 and an imaginary part that is not normalized, so it
// is an exact half turn only when |from × e| = 1.
func FromTo(from, to vector.Vector3) Rotation {
	from = from.Normalize()
	to = to.Normalize()

	if from.Dot(to) >= 0 {
		return fromToReduced(from, to)
	}

	// More than 90 degrees apart: go through the half vector in two steps.
	sum := from.Add(to)
	if sum.LengthSquared() == 0 {
		return halfTurnAbout(from.Cross(leastAlignedAxis(from)))
	}
	half := sum.Normalize()

	return Mul(fromToReduced(half, to), fromToReduced(from, half))
}

// fromToReduced requires unit from and to at most 90 degrees apart.
func fromToReduced(from, to vector.Vector3) Rotation {
	half := from.Add(to).Normalize()
	c := from.Cross(half)
	return Rotation{R: from.Dot(half), IX: c.X, IY: c.Y, IZ: c.Z}
}

// leastAlignedAxis picks x, then y, then z on ties.
func leastAlignedAxis(v vector.Vector3) vector.Vector3 {
	a := v.Abs()
	switch {
	case a.X <= a.Y && a.X <= a.Z:
		return vector.UnitX
	case a.Y <= a.Z:
		return vector.UnitY
	default:
		return vector.UnitZ
	}
}

func halfTurnAbout(axis vector.Vector3) Rotation {
	return Rotation{R: 0, IX: axis.X, IY: axis.Y, IZ: axis.Z}
}

// AngleAxis returns the rotation by angle radians about axis, counter-clockwise
// when looking down the axis. axis must be nonzero; it need not be unit length.
func AngleAxis(angle float64, axis vector.Vector3) Rotation {
	axis = axis.Normalize()
	s, c := math.Sincos(angle / 2)
	im := axis.Scale(s)
	return Rotation{R: c, IX: im.X, IY: im.Y, IZ: im.Z}
}

// ToNewAxes returns the rotation that maps newz onto the world z axis and
// then newx, as moved by that first step, onto the world x axis. For an
// orthonormal pair this expresses vectors in the frame spanned by them.
func ToNewAxes(newz, newx vector.Vector3) Rotation {
	q1 := FromTo(newz, vector.UnitZ)
	IRotate(&newx, q1)
	q2 := FromTo(newx, vector.UnitX)
	return Mul(q2, q1)
}

// Orbital returns the 3-1-3 rotation for longitude of ascending node Omega,
// inclination inc and argument of periapsis omega, all in radians
// (Murray & Dermott eq. 2.121). Applied to a vector in the orbital plane
// frame it yields the reference frame vector.
func Orbital(Omega, inc, omega float64) Rotation {
	p1 := AngleAxis(omega, vector.UnitZ)
	p2 := AngleAxis(inc, vector.UnitX)
	p3 := AngleAxis(Omega, vector.UnitZ)
	return Mul(p3, Mul(p2, p1))
}
