package shape

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Translate(Vec(-10, 0)))
	diff(t, Vec(3, -4), Pt(4, -2).Sub(Pt(1, 2)))
	diff(t, Pt(1, 0.5), Pt(0, 0).Lerp(Pt(4, 2), 0.25))
	diff(t, Pt(4, 2), Pt(0, 0).Lerp(Pt(4, 2), 1))
}

func TestPointDistance(t *testing.T) {
	for _, tc := range []struct {
		p1, p2 Point
		want   float64
	}{
		{Pt(0, 10), Pt(0, 5), 5},
		{Pt(-11, 1), Pt(-7, -2), 5},
		{Pt(1, 1), Pt(1, 1), 0},
	} {
		if d := tc.p1.Distance(tc.p2); d != tc.want {
			t.Errorf("distance between %s and %s: got %v, want %v", tc.p1, tc.p2, d, tc.want)
		}
	}
}

func TestPointTransform(t *testing.T) {
	// Points move with translation, vectors don't.
	aff := Translate(Vec(1, 2))
	diff(t, Pt(4, 6), Pt(3, 4).Transform(aff))
	diff(t, Vec(3, 4), Vec(3, 4).Transform(aff))
}
