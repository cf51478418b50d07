package shape

import "math"

// HRule returns an open, horizontal line of length d centered at the origin,
// running from (−d/2, 0) to (d/2, 0).
func HRule(d float64) Outline {
	return NewOutline(Pt(-d/2, 0), false, []Segment{Straight(Vec(d, 0))})
}

// VRule returns an open, vertical line of length d centered at the origin,
// running from (0, d/2) down to (0, −d/2).
func VRule(d float64) Outline {
	return NewOutline(Pt(0, d/2), false, []Segment{Straight(Vec(0, -d))})
}

// UnitSquare returns an axis-aligned square with sides of length 1, centered at
// the origin.
func UnitSquare() Outline {
	return Polygon(PolygonOpts{
		// A circumradius of √2/2 results in sides of length 1.
		Type:        PolyRegular{Sides: 4, Radius: math.Sqrt2 / 2},
		Orientation: OrientH,
	})
}

// Square returns an axis-aligned square with sides of length d, centered at the
// origin.
func Square(d float64) Outline {
	return UnitSquare().Scale(d)
}

// Rect returns an axis-aligned rectangle of width w and height h, centered at the
// origin. Negative sizes mirror the rectangle along that axis.
func Rect(w, h float64) Outline {
	return UnitSquare().ScaleX(w).ScaleY(h)
}

// RegPoly returns a regular polygon with n sides of length l, centered at the
// origin and with a horizontal bottom edge. The outline runs counterclockwise.
//
// n should be at least 3; fewer sides result in a degenerate outline.
func RegPoly(n int, l float64) Outline {
	sides := max(n-1, 0)
	lengths := make([]float64, sides)
	for i := range lengths {
		lengths[i] = l
	}
	var turn Turn
	if n > 0 {
		turn = FullTurn / Turn(n)
	}
	return Polygon(PolygonOpts{
		Type: PolySides{
			Turns:   repeatTurn(turn, sides),
			Lengths: lengths,
		},
		Orientation: OrientH,
	})
}

// EqTriangle returns an equilateral triangle with sides of length l.
func EqTriangle(l float64) Outline { return RegPoly(3, l) }

// Triangle is an alias of [EqTriangle].
func Triangle(l float64) Outline { return EqTriangle(l) }

func Pentagon(l float64) Outline   { return RegPoly(5, l) }
func Hexagon(l float64) Outline    { return RegPoly(6, l) }
func Septagon(l float64) Outline   { return RegPoly(7, l) }
func Octagon(l float64) Outline    { return RegPoly(8, l) }
func Nonagon(l float64) Outline    { return RegPoly(9, l) }
func Decagon(l float64) Outline    { return RegPoly(10, l) }
func Hendecagon(l float64) Outline { return RegPoly(11, l) }
func Dodecagon(l float64) Outline  { return RegPoly(12, l) }

// RoundedRectRadii holds the radii of the four corners of a rounded rectangle.
// Top and bottom refer to a y-up frame.
type RoundedRectRadii struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

// Clamp returns radii limited to the range [0, max].
func (r RoundedRectRadii) Clamp(max float64) RoundedRectRadii {
	return RoundedRectRadii{
		TopLeft:     Clamp(r.TopLeft, 0, max),
		TopRight:    Clamp(r.TopRight, 0, max),
		BottomRight: Clamp(r.BottomRight, 0, max),
		BottomLeft:  Clamp(r.BottomLeft, 0, max),
	}
}

// RoundedRect returns a rectangle with the extents of v, centered at the origin,
// whose corners are quarter-circles of radius r. The radius is limited to
// [0, min(|v.X|, |v.Y|)/2]; with a radius of 0 the result is a plain rectangle
// without any curves.
//
// The outline starts on the right edge and runs counterclockwise. A negative
// component of v mirrors the rectangle along that axis, like [Rect].
func RoundedRect(v Vec2, r float64) Outline {
	return RoundedRectCorners(v, RoundedRectRadii{r, r, r, r})
}

// RoundedRectCorners is like [RoundedRect], but with a separate radius per
// corner. Each radius is limited independently. The radii name the corners of
// the result, also when it is mirrored.
func RoundedRectCorners(v Vec2, radii RoundedRectRadii) Outline {
	sx, sy := math.Copysign(1, v.X), math.Copysign(1, v.Y)
	if sx < 0 {
		radii.TopLeft, radii.TopRight = radii.TopRight, radii.TopLeft
		radii.BottomLeft, radii.BottomRight = radii.BottomRight, radii.BottomLeft
	}
	if sy < 0 {
		radii.TopLeft, radii.BottomLeft = radii.BottomLeft, radii.TopLeft
		radii.TopRight, radii.BottomRight = radii.BottomRight, radii.TopRight
	}

	w, h := math.Abs(v.X), math.Abs(v.Y)
	radii = radii.Clamp(min(w, h) / 2)
	tl, tr := radii.TopLeft, radii.TopRight
	br, bl := radii.BottomRight, radii.BottomLeft

	corner := func(k int, r float64) []Segment {
		if r == 0 {
			return nil
		}
		return Arc(Turn(k)/4, Turn(k+1)/4).Scale(r).Segments
	}

	segs := make([]Segment, 0, 8)
	segs = append(segs, Straight(Vec(0, h-tr-br)))
	segs = append(segs, corner(0, tr)...)
	segs = append(segs, Straight(Vec(tr+tl-w, 0)))
	segs = append(segs, corner(1, tl)...)
	segs = append(segs, Straight(Vec(0, tl+bl-h)))
	segs = append(segs, corner(2, bl)...)
	segs = append(segs, Straight(Vec(w-bl-br, 0)))
	segs = append(segs, corner(3, br)...)

	start := Pt((w-2*br)/2+br, -(h-2*br)/2)
	o := Outline{Start: start, Closed: true, Segments: segs}
	if sx < 0 || sy < 0 {
		o = o.Transform(Scale(sx, sy))
	}
	return o
}
