package shape

import (
	"math"
	"slices"
	"testing"
)

func TestAffinePoints(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)
	for _, tc := range []struct {
		name string
		aff  Affine
		want Point
	}{
		{"identity", Identity, p},
		{"scale", Scale(2, 2), Pt(6, 8)},
		{"scale x", Scale(-1, 1), Pt(-3, 4)},
		{"no rotation", Rotate(0), p},
		{"quarter rotation", Rotate(math.Pi / 2), Pt(-4, 3)},
		{"translate", Translate(Vec(5, 6)), Pt(8, 10)},
		{"flip x", FlipX, Pt(-3, 4)},
		{"flip y", FlipY, Pt(3, -4)},
		{"rotate about", RotateAbout(math.Pi, Pt(3, 3)), Pt(3, 2)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assertNear(t, p.Transform(tc.aff), tc.want, epsilon)
		})
	}
}

func TestAffineVectorsIgnoreTranslation(t *testing.T) {
	aff := Translate(Vec(5, 6)).ThenScale(2, 3)
	diff(t, Vec(2, 3), Vec(1, 1).Transform(aff))
	diff(t, Vec(2, 3), Vec(1, 1).Transform(aff.Linear()))
	diff(t, Pt(12, 21), Pt(1, 1).Transform(aff))
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{X: Vec(1, 2), Y: Vec(3, 4), T: Vec(5, 6)}
	a2 := Affine{X: Vec(0.1, 1.2), Y: Vec(2.3, 3.4), T: Vec(4.5, 5.6)}

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)), epsilon)
	}
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{X: Vec(0.1, 1.2), Y: Vec(2.3, 3.4), T: Vec(4.5, 5.6)}
	aInv := a.Invert()

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, p.Transform(a).Transform(aInv), p, epsilon)
		assertNear(t, p.Transform(aInv).Transform(a), p, epsilon)
	}

	if !Scale(0, 1).Invert().IsInf() && !Scale(0, 1).Invert().IsNaN() {
		t.Error("inverting a singular transform succeeded")
	}
}

func TestAffineThen(t *testing.T) {
	aff := Scale(2, 3).ThenTranslate(Vec(1, 1)).ThenRotate(math.Pi / 2)
	assertNear(t, Pt(1, 1).Transform(aff), Pt(-4, 3), 1e-9)
	diff(t, Vec(1, 1), Translate(Vec(1, 1)).Translation())
	if d := Scale(2, 3).Determinant(); d != 6 {
		t.Errorf("got determinant %v, want 6", d)
	}
	if d := FlipY.Determinant(); d != -1 {
		t.Errorf("got determinant %v, want -1", d)
	}
}

func TestTransformSeq(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 2)}
	got := slices.Collect(Transform(slices.Values(pts), Translate(Vec(1, 1))))
	diff(t, []Point{Pt(1, 1), Pt(2, 3)}, got)
}
