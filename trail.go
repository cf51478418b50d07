package shape

import "slices"

// closeEpsilon is the largest distance between the ends of a trail that [Trail.Close]
// treats as already closed.
const closeEpsilon = 1e-9

// Trail is a sequence of segments without a position. A closed trail's last
// segment ends where its first one starts.
type Trail struct {
	Segments []Segment
	Closed   bool
}

// FromOffsets returns an open trail of straight segments.
func FromOffsets(vs ...Vec2) Trail {
	segs := make([]Segment, len(vs))
	for i, v := range vs {
		segs[i] = Straight(v)
	}
	return Trail{Segments: segs}
}

// FromSegments returns an open trail made of segs.
func FromSegments(segs ...Segment) Trail {
	return Trail{Segments: slices.Clone(segs)}
}

// Offset returns the displacement from the trail's start to its end.
func (t Trail) Offset() Vec2 {
	var off Vec2
	for _, seg := range t.Segments {
		off = off.Add(seg.Offset())
	}
	return off
}

// Append returns the open trail that follows t with o.
func (t Trail) Append(o Trail) Trail {
	segs := make([]Segment, 0, len(t.Segments)+len(o.Segments))
	segs = append(segs, t.Segments...)
	segs = append(segs, o.Segments...)
	return Trail{Segments: segs}
}

// Close returns a closed version of t. If the trail doesn't already end where it
// starts, a straight segment back to the start is added.
func (t Trail) Close() Trail {
	segs := slices.Clone(t.Segments)
	if off := t.Offset(); off.Hypot() > closeEpsilon {
		segs = append(segs, Straight(off.Negate()))
	}
	return Trail{Segments: segs, Closed: true}
}

// Open returns t with the closure flag cleared. The segments are unchanged.
func (t Trail) Open() Trail {
	return Trail{Segments: slices.Clone(t.Segments)}
}

// Transform applies the linear part of aff to every segment.
func (t Trail) Transform(aff Affine) Trail {
	segs := make([]Segment, len(t.Segments))
	for i, seg := range t.Segments {
		segs[i] = seg.Transform(aff)
	}
	return Trail{Segments: segs, Closed: t.Closed}
}

// Scale scales the trail uniformly by f.
func (t Trail) Scale(f float64) Trail {
	return t.Transform(Scale(f, f))
}

// At places the trail in space, starting at start.
func (t Trail) At(start Point) Outline {
	return NewOutline(start, t.Closed, t.Segments)
}
