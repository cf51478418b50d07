package shape

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec2 is a displacement in the plane, such as the offset of a [Segment]. It has
// the same layout as gonum's [r2.Vec], which does the arithmetic.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

var (
	UnitX = Vec2{1, 0}
	UnitY = Vec2{0, 1}
)

func (v Vec2) r2() r2.Vec { return r2.Vec(v) }

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2(r2.Add(v.r2(), o.r2())) }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2(r2.Sub(v.r2(), o.r2())) }
func (v Vec2) Mul(f float64) Vec2   { return Vec2(r2.Scale(f, v.r2())) }
func (v Vec2) Negate() Vec2         { return Vec2{-v.X, -v.Y} }
func (v Vec2) Dot(o Vec2) float64   { return r2.Dot(v.r2(), o.r2()) }
func (v Vec2) Cross(o Vec2) float64 { return r2.Cross(v.r2(), o.r2()) }

// Div divides both components by f. Unlike v.Mul(1/f), this is exact when the
// components are multiples of f.
func (v Vec2) Div(f float64) Vec2 {
	return Vec2{v.X / f, v.Y / f}
}

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 { return r2.Norm(v.r2()) }

// Hypot2 returns the squared length of v.
func (v Vec2) Hypot2() float64 { return r2.Norm2(v.r2()) }

// Normalize returns the unit vector pointing in v's direction. The zero vector
// has no direction and results in NaN components.
func (v Vec2) Normalize() Vec2 {
	return Vec2(r2.Unit(v.r2()))
}

// Angle returns the direction of v in radians, measured counterclockwise from
// ⟨1, 0⟩, in the range [−π, π].
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// VecFromAngle returns the unit vector with direction th, in radians.
func VecFromAngle(th float64) Vec2 {
	sin, cos := math.Sincos(th)
	return Vec2{cos, sin}
}

// Rotate returns v rotated counterclockwise by th radians.
func (v Vec2) Rotate(th float64) Vec2 {
	sin, cos := math.Sincos(th)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Transform maps v by the linear part of aff. A displacement doesn't move when
// the plane is translated.
func (v Vec2) Transform(aff Affine) Vec2 {
	return aff.linear(v)
}

func (v Vec2) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}
