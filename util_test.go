package shape

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

// sameVertices checks that got and want contain the same points, in any order.
func sameVertices(t *testing.T, got, want []Point, epsilon float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d vertices %v, want %d vertices %v", len(got), got, len(want), want)
	}
	used := make([]bool, len(got))
outer:
	for _, w := range want {
		for i, g := range got {
			if !used[i] && g.Distance(w) <= epsilon {
				used[i] = true
				continue outer
			}
		}
		t.Fatalf("vertex %s missing from %v", w, got)
	}
}

// turnBetween returns the signed angle from a to b, in (−π, π].
func turnBetween(a, b Vec2) float64 {
	return math.Atan2(a.Cross(b), a.Dot(b))
}

// totalTurning returns the total change of direction along o, in radians,
// including the turn back to the first segment of closed outlines.
func totalTurning(o Outline) float64 {
	var total float64
	segs := o.Segments
	for i, seg := range segs {
		d0, d1 := seg.Tangents()
		total += turnBetween(d0, d1)
		if i+1 < len(segs) {
			n0, _ := segs[i+1].Tangents()
			total += turnBetween(d1, n0)
		} else if o.Closed && len(segs) > 0 {
			n0, _ := segs[0].Tangents()
			total += turnBetween(d1, n0)
		}
	}
	return total
}

func countKind(o Outline, kind SegmentKind) int {
	n := 0
	for _, seg := range o.Segments {
		if seg.Kind == kind {
			n++
		}
	}
	return n
}
