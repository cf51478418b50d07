package shape

import (
	"fmt"
	"math"
)

// Point is a position in the plane. Points and [Vec2] share a layout and convert
// freely, but only points are affected by translation.
type Point struct {
	X float64
	Y float64
}

// Origin is the point all shapes are centered on.
var Origin = Point{}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate returns pt moved by v.
func (pt Point) Translate(v Vec2) Point {
	return Point(Vec2(pt).Add(v))
}

// Sub returns the displacement from o to pt.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2(pt).Sub(Vec2(o))
}

// Transform maps pt by aff, including its translation.
func (pt Point) Transform(aff Affine) Point {
	return Point(aff.linear(Vec2(pt)).Add(aff.T))
}

// Lerp returns the point a fraction t of the way from pt to o.
func (pt Point) Lerp(o Point, t float64) Point {
	return pt.Translate(o.Sub(pt).Mul(t))
}

func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Hypot()
}

func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
