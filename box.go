package shape

import "math"

// Box is an axis-aligned rectangle given by two corners.
type Box struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewBoxFromPoints returns a box with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewBoxFromPoints(p0, p1 Point) Box {
	return Box{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new box with the same extents as b, but ensuring that width and
// height are non-negative.
func (b Box) Abs() Box {
	return Box{
		X0: min(b.X0, b.X1),
		Y0: min(b.Y0, b.Y1),
		X1: max(b.X0, b.X1),
		Y1: max(b.Y0, b.Y1),
	}
}

// Width returns the box's width, defined as X1 − X0. It may be negative.
func (b Box) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the box's height, defined as Y1 − Y0. It may be negative.
func (b Box) Height() float64 {
	return b.Y1 - b.Y0
}

func (b Box) Center() Point {
	return Point{
		X: 0.5 * (b.X0 + b.X1),
		Y: 0.5 * (b.Y0 + b.Y1),
	}
}

// Union returns the smallest box enclosing both b and o. Both boxes must have
// non-negative width and height.
func (b Box) Union(o Box) Box {
	return Box{
		X0: min(b.X0, o.X0),
		Y0: min(b.Y0, o.Y0),
		X1: max(b.X1, o.X1),
		Y1: max(b.Y1, o.Y1),
	}
}

// UnionPoint returns b grown to include pt. A box of zero size around a point
// grows from that point, so repeated calls enclose a set of points.
func (b Box) UnionPoint(pt Point) Box {
	return Box{
		X0: min(b.X0, pt.X),
		Y0: min(b.Y0, pt.Y),
		X1: max(b.X1, pt.X),
		Y1: max(b.Y1, pt.Y),
	}
}

func (b Box) IsNaN() bool {
	return math.IsNaN(b.X0) ||
		math.IsNaN(b.X1) ||
		math.IsNaN(b.Y0) ||
		math.IsNaN(b.Y1)
}
