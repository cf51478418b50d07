package shape

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Outline is a trail located in the plane: a start point, a sequence of segments
// and whether the last point connects back to the first. Every constructor in
// this package returns an Outline; use [Outline.Trail], [Outline.Path] or
// [Outline.BezPath] to get the representation a consumer needs.
//
// The segments of a closed outline, including the final one, sum to a zero
// offset.
type Outline struct {
	Start    Point
	Closed   bool
	Segments []Segment
}

// NewOutline returns the outline starting at start and made of segs. The slice is
// copied.
func NewOutline(start Point, closed bool, segs []Segment) Outline {
	return Outline{
		Start:    start,
		Closed:   closed,
		Segments: slices.Clone(segs),
	}
}

func (o Outline) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Outline(%s", o.Start)
	for _, seg := range o.Segments {
		sb.WriteString(", ")
		sb.WriteString(seg.String())
	}
	if o.Closed {
		sb.WriteString(", closed")
	}
	sb.WriteString(")")
	return sb.String()
}

// Trail returns the outline without its position.
func (o Outline) Trail() Trail {
	return Trail{Segments: slices.Clone(o.Segments), Closed: o.Closed}
}

// Path returns a path consisting of just this outline.
func (o Outline) Path() Path {
	return Path{o.clone()}
}

// BezPath returns the outline as drawing commands.
func (o Outline) BezPath() BezPath {
	return slices.Collect(o.PathElements())
}

// PathElements returns the outline as drawing commands. A closed outline ends in
// ClosePath, which stands in for a final straight segment.
func (o Outline) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo(o.Start)) {
			return
		}
		n := len(o.Segments)
		i := 0
		for seg := range o.PathSegments() {
			i++
			if o.Closed && i == n && seg.Kind == LinearKind {
				break
			}
			if !yield(seg.PathElement()) {
				return
			}
		}
		if o.Closed {
			yield(ClosePath())
		}
	}
}

// PathSegments returns the outline's segments with absolute coordinates.
func (o Outline) PathSegments() iter.Seq[PathSegment] {
	return func(yield func(PathSegment) bool) {
		pt := o.Start
		for _, seg := range o.Segments {
			ps := seg.At(pt)
			if !yield(ps) {
				return
			}
			pt = ps.End()
		}
	}
}

// End returns the point at which the last segment ends.
func (o Outline) End() Point {
	return o.Start.Translate(o.Trail().Offset())
}

// Vertices returns the points at which segments meet, starting with o.Start. For
// closed outlines the end point of the final segment is omitted, as it coincides
// with the start.
func (o Outline) Vertices() []Point {
	pts := make([]Point, 0, len(o.Segments)+1)
	pts = append(pts, o.Start)
	for seg := range o.PathSegments() {
		pts = append(pts, seg.End())
	}
	if o.Closed && len(pts) > 1 {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// BoundingBox returns a box that conservatively encloses the outline. Control
// points of curves are included, so the box may be larger than the tight bounds.
func (o Outline) BoundingBox() Box {
	box := NewBoxFromPoints(o.Start, o.Start)
	for seg := range o.PathSegments() {
		box = box.UnionPoint(seg.P1)
		if seg.Kind == CubicKind {
			box = box.UnionPoint(seg.P2).UnionPoint(seg.P3)
		}
	}
	return box
}

// SignedArea returns the area enclosed by the outline. It is positive for
// counterclockwise outlines in a y-up frame. Open outlines are treated as if a
// straight line connected their end to their start.
func (o Outline) SignedArea() float64 {
	var area float64
	for seg := range o.PathSegments() {
		area += seg.SignedArea()
	}
	if !o.Closed {
		area += PathSegment{Kind: LinearKind, P0: o.End(), P1: o.Start}.SignedArea()
	}
	return area
}

// Transform applies aff to the outline. The start point is mapped by the full
// transform, segments by its linear part.
func (o Outline) Transform(aff Affine) Outline {
	segs := make([]Segment, len(o.Segments))
	for i, seg := range o.Segments {
		segs[i] = seg.Transform(aff)
	}
	return Outline{
		Start:    o.Start.Transform(aff),
		Closed:   o.Closed,
		Segments: segs,
	}
}

// Scale scales the outline uniformly by f about the origin.
func (o Outline) Scale(f float64) Outline { return o.Transform(Scale(f, f)) }

// ScaleX scales the outline along the x axis by f.
func (o Outline) ScaleX(f float64) Outline { return o.Transform(Scale(f, 1)) }

// ScaleY scales the outline along the y axis by f.
func (o Outline) ScaleY(f float64) Outline { return o.Transform(Scale(1, f)) }

// Translate moves the outline by v.
func (o Outline) Translate(v Vec2) Outline { return o.Transform(Translate(v)) }

// Rotate rotates the outline by th radians about the origin.
func (o Outline) Rotate(th float64) Outline { return o.Transform(Rotate(th)) }

func (o Outline) IsNaN() bool {
	if o.Start.IsNaN() {
		return true
	}
	for _, seg := range o.Segments {
		if seg.C1.IsNaN() || seg.C2.IsNaN() || seg.End.IsNaN() {
			return true
		}
	}
	return false
}

func (o Outline) clone() Outline {
	o.Segments = slices.Clone(o.Segments)
	return o
}
