package shape

import "math"

// arcSweepEpsilon is the smallest sweep, in radians, for which Arc produces any
// segments.
const arcSweepEpsilon = 1e-4

// Arc returns an open trail following the unit circle from angle start to angle
// end. For end > start the arc runs counterclockwise (in a y-up frame), otherwise
// clockwise. Sweeps larger than a full turn are truncated to a full turn.
//
// The arc is approximated by cubic Béziers, one per quarter turn or part
// thereof, so a quarter-circle is a single segment.
func Arc(start, end Turn) Trail {
	sweep := Clamp((end - start).Rad(), -2*math.Pi, 2*math.Pi)
	return Trail{Segments: arcSegments(start.Rad(), sweep)}
}

// ArcRadius is like [Arc], but for a circle of radius r.
func ArcRadius(start, end Turn, r float64) Trail {
	return Arc(start, end).Scale(r)
}

// ArcAt returns [Arc] located on the unit circle centered at the origin.
func ArcAt(start, end Turn) Outline {
	return Arc(start, end).At(Point(VecFromAngle(start.Rad())))
}

func arcSegments(angle0, sweep float64) []Segment {
	dir := math.Copysign(1, sweep)
	remaining := math.Abs(sweep)
	var segs []Segment
	for remaining >= arcSweepEpsilon {
		step := min(remaining, math.Pi/2)
		angle1 := angle0 + dir*step
		armLen := dir * (4.0 / 3.0) * math.Tan(step/4)

		p0 := VecFromAngle(angle0)
		p3 := VecFromAngle(angle1)
		p1 := p0.Add(VecFromAngle(angle0 + math.Pi/2).Mul(armLen))
		p2 := p3.Sub(VecFromAngle(angle1 + math.Pi/2).Mul(armLen))
		segs = append(segs, BezierCubic(p1.Sub(p0), p2.Sub(p0), p3.Sub(p0)))

		angle0 = angle1
		remaining -= step
	}
	return segs
}
