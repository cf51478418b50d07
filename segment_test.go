package shape

import (
	"math"
	"testing"
)

func TestSegmentReverse(t *testing.T) {
	line := Straight(Vec(3, 4))
	diff(t, Straight(Vec(-3, -4)), line.Reverse())

	c := BezierCubic(Vec(0, 1), Vec(1, 1), Vec(1, 0))
	diff(t, BezierCubic(Vec(0, 1), Vec(-1, 1), Vec(-1, 0)), c.Reverse())
	diff(t, c, c.Reverse().Reverse())
}

func TestSegmentEval(t *testing.T) {
	c := BezierCubic(Vec(0, 1), Vec(1, 1), Vec(1, 0))
	diff(t, Vec(0, 0), c.Eval(0))
	diff(t, Vec(0.5, 0.75), c.Eval(0.5))
	diff(t, Vec(1, 0), c.Eval(1))

	diff(t, Vec(1.5, 2), Straight(Vec(3, 4)).Eval(0.5))
}

func TestSegmentTangents(t *testing.T) {
	d0, d1 := Straight(Vec(3, 4)).Tangents()
	diff(t, Vec(3, 4), d0)
	diff(t, Vec(3, 4), d1)

	d0, d1 = BezierCubic(Vec(0, 1), Vec(1, 1), Vec(1, 0)).Tangents()
	diff(t, Vec(0, 1), d0)
	diff(t, Vec(0, -1), d1)

	// Control points coinciding with the ends fall back to the other one.
	d0, d1 = BezierCubic(Vec(0, 0), Vec(2, 2), Vec(2, 2)).Tangents()
	diff(t, Vec(2, 2), d0)
	diff(t, Vec(2, 2), d1)
}

func TestSegmentAt(t *testing.T) {
	ps := BezierCubic(Vec(0, 1), Vec(1, 1), Vec(1, 0)).At(Pt(1, 1))
	want := PathSegment{Kind: CubicKind, P0: Pt(1, 1), P1: Pt(1, 2), P2: Pt(2, 2), P3: Pt(2, 1)}
	diff(t, want, ps)
	diff(t, Pt(2, 1), ps.End())
	diff(t, CubicTo(Pt(1, 2), Pt(2, 2), Pt(2, 1)), ps.PathElement())

	ls := Straight(Vec(3, 4)).At(Pt(1, 1))
	diff(t, Pt(4, 5), ls.End())
	diff(t, LineTo(Pt(4, 5)), ls.PathElement())
}

func TestPathSegmentSignedArea(t *testing.T) {
	// Going up, across and down is clockwise.
	c := BezierCubic(Vec(0, 1), Vec(1, 1), Vec(1, 0))
	if a := c.At(Origin).SignedArea(); math.Abs(a+0.6) > 1e-12 {
		t.Errorf("got %v, want -0.6", a)
	}
	if a := c.Reverse().At(Pt(1, 0)).SignedArea(); math.Abs(a-0.6) > 1e-12 {
		t.Errorf("got %v, want 0.6", a)
	}
}

func TestSegmentTransform(t *testing.T) {
	c := BezierCubic(Vec(0, 1), Vec(1, 1), Vec(1, 0))
	// Translation doesn't affect offsets.
	diff(t, c, c.Transform(Translate(Vec(5, 5))))
	diff(t, BezierCubic(Vec(0, 2), Vec(2, 2), Vec(2, 0)), c.Transform(Scale(2, 2)))
}
