package shape

import "fmt"

type SegmentKind int

const (
	// A straight segment.
	LinearKind SegmentKind = iota + 1
	// A cubic Bézier segment.
	CubicKind
)

// Segment is a piece of an outline, expressed relative to wherever the previous
// segment ended. A linear segment only uses End. A cubic segment uses C1 and C2 as
// its control points; all three are offsets from the segment's start.
type Segment struct {
	Kind SegmentKind
	C1   Vec2
	C2   Vec2
	End  Vec2
}

// Straight returns a straight segment with offset v.
func Straight(v Vec2) Segment {
	return Segment{Kind: LinearKind, End: v}
}

// BezierCubic returns a cubic Bézier segment. All points are relative to the
// segment's start.
func BezierCubic(c1, c2, end Vec2) Segment {
	return Segment{Kind: CubicKind, C1: c1, C2: c2, End: end}
}

func (seg Segment) String() string {
	switch seg.Kind {
	case LinearKind:
		return fmt.Sprintf("Straight(%s)", seg.End)
	case CubicKind:
		return fmt.Sprintf("Cubic(%s, %s, %s)", seg.C1, seg.C2, seg.End)
	default:
		return "InvalidSegment"
	}
}

// Offset returns the displacement from the segment's start to its end.
func (seg Segment) Offset() Vec2 {
	return seg.End
}

// Transform applies the linear part of aff.
func (seg Segment) Transform(aff Affine) Segment {
	if seg.Kind == LinearKind {
		return Straight(seg.End.Transform(aff))
	}
	return Segment{
		Kind: seg.Kind,
		C1:   seg.C1.Transform(aff),
		C2:   seg.C2.Transform(aff),
		End:  seg.End.Transform(aff),
	}
}

// Reverse returns the segment traversed in the opposite direction.
func (seg Segment) Reverse() Segment {
	if seg.Kind == LinearKind {
		return Straight(seg.End.Negate())
	}
	return Segment{
		Kind: seg.Kind,
		C1:   seg.C2.Sub(seg.End),
		C2:   seg.C1.Sub(seg.End),
		End:  seg.End.Negate(),
	}
}

// Eval returns the offset from the segment's start at parameter t ∈ [0, 1].
func (seg Segment) Eval(t float64) Vec2 {
	if seg.Kind == LinearKind {
		return seg.End.Mul(t)
	}
	mt := 1 - t
	return seg.C1.Mul(3 * mt * mt * t).
		Add(seg.C2.Mul(3 * mt * t * t)).
		Add(seg.End.Mul(t * t * t))
}

// Tangents returns the directions of the segment at its start and at its end.
// The vectors aren't normalized.
func (seg Segment) Tangents() (Vec2, Vec2) {
	if seg.Kind == LinearKind {
		return seg.End, seg.End
	}
	const epsilon = 1e-12
	var d0, d1 Vec2
	if seg.C1.Hypot2() > epsilon {
		d0 = seg.C1
	} else if seg.C2.Hypot2() > epsilon {
		d0 = seg.C2
	} else {
		d0 = seg.End
	}
	if d := seg.End.Sub(seg.C2); d.Hypot2() > epsilon {
		d1 = d
	} else if d := seg.End.Sub(seg.C1); d.Hypot2() > epsilon {
		d1 = d
	} else {
		d1 = seg.End
	}
	return d0, d1
}

// At fixes the segment in space, starting at p.
func (seg Segment) At(p Point) PathSegment {
	switch seg.Kind {
	case LinearKind:
		return PathSegment{Kind: LinearKind, P0: p, P1: p.Translate(seg.End)}
	case CubicKind:
		return PathSegment{
			Kind: CubicKind,
			P0:   p,
			P1:   p.Translate(seg.C1),
			P2:   p.Translate(seg.C2),
			P3:   p.Translate(seg.End),
		}
	default:
		return PathSegment{}
	}
}

// PathSegment is a [Segment] with absolute coordinates. Lines use P0 and P1;
// cubic Béziers use P0 through P3.
type PathSegment struct {
	Kind SegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

func (seg PathSegment) Start() Point { return seg.P0 }

func (seg PathSegment) End() Point {
	if seg.Kind == CubicKind {
		return seg.P3
	}
	return seg.P1
}

// SignedArea returns the segment's contribution to the signed area of a closed
// outline, via Green's theorem.
func (seg PathSegment) SignedArea() float64 {
	switch seg.Kind {
	case LinearKind:
		return Vec2(seg.P0).Cross(Vec2(seg.P1)) * 0.5
	case CubicKind:
		v := seg.P0.X*(6.0*seg.P1.Y+3.0*seg.P2.Y+seg.P3.Y) +
			3.0*(seg.P1.X*(-2.0*seg.P0.Y+seg.P2.Y+seg.P3.Y)-seg.P2.X*(seg.P0.Y+seg.P1.Y-2.0*seg.P3.Y)) -
			seg.P3.X*(seg.P0.Y+3.0*seg.P1.Y+6.0*seg.P2.Y)
		return v * (1.0 / 20.0)
	default:
		return 0
	}
}

// PathElement returns the drawing command that continues a path with this segment.
func (seg PathSegment) PathElement() PathElement {
	if seg.Kind == CubicKind {
		return CubicTo(seg.P1, seg.P2, seg.P3)
	}
	return LineTo(seg.P1)
}
