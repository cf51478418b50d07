package shape

import (
	"iter"
	"math"
)

// Affine is an affine transform of the plane, stored by columns. X and Y are the
// images of the unit vectors ⟨1, 0⟩ and ⟨0, 1⟩ and T is the translation, so that
// a point p maps to
//
//	p.X·X + p.Y·Y + T
//
// Vectors map the same way, but without T. Outlines depend on that split: their
// start point follows the whole transform, their relative segments only the
// linear part.
//
// The composition a.Mul(b) applies b first, so that
// p.Transform(a.Mul(b)) == p.Transform(b).Transform(a).
type Affine struct {
	X Vec2
	Y Vec2
	T Vec2
}

// Identity is the identity transform.
var Identity = Affine{X: Vec2{1, 0}, Y: Vec2{0, 1}}

// FlipY mirrors along the x axis, negating y. Useful for converting between y-up
// and y-down spaces.
var FlipY = Affine{X: Vec2{1, 0}, Y: Vec2{0, -1}}

// FlipX mirrors along the y axis, negating x.
var FlipX = Affine{X: Vec2{-1, 0}, Y: Vec2{0, 1}}

// Scale returns a transform scaling x and y independently. Negative factors
// mirror.
func Scale(x, y float64) Affine {
	return Affine{X: Vec(x, 0), Y: Vec(0, y)}
}

// Translate returns a transform moving everything by v.
func Translate(v Vec2) Affine {
	t := Identity
	t.T = v
	return t
}

// Rotate returns a rotation by th radians about the origin. Positive angles
// rotate ⟨1, 0⟩ towards ⟨0, 1⟩, which is counterclockwise in the y-up frame that
// shapes are built in.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{X: Vec(cos, sin), Y: Vec(-sin, cos)}
}

// RotateAbout returns a rotation by th radians about center.
func RotateAbout(th float64, center Point) Affine {
	c := Vec2(center)
	return Translate(c.Negate()).ThenRotate(th).ThenTranslate(c)
}

// linear maps v by the linear part of aff.
func (aff Affine) linear(v Vec2) Vec2 {
	return aff.X.Mul(v.X).Add(aff.Y.Mul(v.Y))
}

// Mul returns the transform that applies o, then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		X: aff.linear(o.X),
		Y: aff.linear(o.Y),
		T: aff.linear(o.T).Add(aff.T),
	}
}

// ThenRotate returns aff followed by a rotation of th radians.
func (aff Affine) ThenRotate(th float64) Affine {
	return Rotate(th).Mul(aff)
}

// ThenScale returns aff followed by scaling by (x, y).
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate returns aff followed by a translation of v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.T = aff.T.Add(v)
	return aff
}

// Linear returns aff without its translation.
func (aff Affine) Linear() Affine {
	aff.T = Vec2{}
	return aff
}

// Determinant returns the determinant of the linear part. It is negative for
// transforms that mirror, which reverses the winding direction of outlines.
func (aff Affine) Determinant() float64 {
	return aff.X.Cross(aff.Y)
}

// Invert returns the inverse transform. The result contains NaN or infinities
// if aff isn't invertible.
func (aff Affine) Invert() Affine {
	inv := 1 / aff.Determinant()
	out := Affine{
		X: Vec(aff.Y.Y, -aff.X.Y).Mul(inv),
		Y: Vec(-aff.Y.X, aff.X.X).Mul(inv),
	}
	out.T = out.linear(aff.T).Negate()
	return out
}

// Translation returns the translation component of this affine transformation.
func (aff Affine) Translation() Vec2 {
	return aff.T
}

func (aff Affine) IsInf() bool {
	return aff.X.IsInf() || aff.Y.IsInf() || aff.T.IsInf()
}

func (aff Affine) IsNaN() bool {
	return aff.X.IsNaN() || aff.Y.IsNaN() || aff.T.IsNaN()
}

// Transform maps every value of seq through aff.
func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				break
			}
		}
	}
}
