package vector

import (
	"math"

	"github.com/golang/geo/r3"
)

// Vector3 is a point or free direction in Euclidean 3-space.
type Vector3 struct {
	X, Y, Z float64
}

var (
	Zero  = Vector3{}
	UnitX = Vector3{X: 1}
	UnitY = Vector3{Y: 1}
	UnitZ = Vector3{Z: 1}
)

func New(x, y, z float64) Vector3 { return Vector3{X: x, Y: y, Z: z} }

// Scale returns s·v.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: s * v.X, Y: s * v.Y, Z: s * v.Z}
}

func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Cross returns the right-handed cross product v × b.
func (v Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		X: v.Y*b.Z - v.Z*b.Y,
		Y: v.Z*b.X - v.X*b.Z,
		Z: v.X*b.Y - v.Y*b.X,
	}
}

func (v Vector3) Dot(b Vector3) float64 {
	return v.X*b.X + v.Y*b.Y + v.Z*b.Z
}

func (v Vector3) LengthSquared() float64 { return v.Dot(v) }

func (v Vector3) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// Normalize returns v scaled to unit length.
// The zero vector has no direction; its result is NaN in every component.
func (v Vector3) Normalize() Vector3 {
	return v.Scale(1 / math.Sqrt(v.LengthSquared()))
}

// IsFinite reports whether no component is NaN or ±Inf.
func (v Vector3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsNaN(v.Z) &&
		!math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0) && !math.IsInf(v.Z, 0)
}

// Abs returns the component-wise absolute value.
func (v Vector3) Abs() Vector3 {
	return Vector3{X: math.Abs(v.X), Y: math.Abs(v.Y), Z: math.Abs(v.Z)}
}

// R3 converts v to the golang/geo representation.
func (v Vector3) R3() r3.Vector { return r3.Vector{X: v.X, Y: v.Y, Z: v.Z} }

func FromR3(v r3.Vector) Vector3 { return Vector3{X: v.X, Y: v.Y, Z: v.Z} }
