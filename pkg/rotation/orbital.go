package rotation

import "math"

// MinInc is how close the inclination may come to 0 or π before Omega and
// omega are treated as degenerate.
const MinInc = 1e-8

// OrbitalAngles holds the 3-1-3 orientation of an orbit, in radians.
type OrbitalAngles struct {
	Node float64 // longitude of ascending node, Ω
	Inc  float64 // inclination, i
	Peri float64 // argument of periapsis, ω
}

// Orbital returns the orientation angles of q. See ToOrbital.
func (q Rotation) Orbital() OrbitalAngles {
	node, inc, peri := ToOrbital(q)
	return OrbitalAngles{Node: node, Inc: inc, Peri: peri}
}

// Rotation rebuilds the rotation described by a.
func (a OrbitalAngles) Rotation() Rotation {
	return Orbital(a.Node, a.Inc, a.Peri)
}

// ToOrbital recovers (Omega, inc, omega) from a rotation built by Orbital.
//
// Near inc = 0 only Omega+omega is defined and near inc = π only
// Omega-omega; in both cases Omega is reported as 0 and the whole angle is
// put into omega. A negative Omega or omega gets 2π added once, which is
// not a full reduction to [0, 2π): for some inputs the angles come back
// shifted by a whole turn from the ones Orbital was given.
//
// See Bernardes & Viollet, PLoS ONE 17(11): e0276302.
func ToOrbital(q Rotation) (Omega, inc, omega float64) {
	a, b, c, d := q.R, q.IZ, q.IX, q.IY

	// Rounding can push the cosine just past ±1 for inc near 0 or π.
	inc = math.Acos(math.Max(-1, math.Min(1, 2*(a*a+b*b)-1)))
	nearZero := math.Abs(inc) <= MinInc
	nearPi := math.Abs(inc-math.Pi) <= MinInc

	switch {
	case !nearZero && !nearPi:
		halfSum := math.Atan2(b, a)
		halfDiff := math.Atan2(d, c)
		omega = halfSum - halfDiff
		Omega = halfSum + halfDiff
	case nearZero:
		Omega = 0
		omega = 2 * math.Atan2(b, a)
	default:
		Omega = 0
		omega = 2 * math.Atan2(d, c)
	}

	if omega < 0 {
		omega += 2 * math.Pi
	}
	if Omega < 0 {
		Omega += 2 * math.Pi
	}
	return Omega, inc, omega
}
