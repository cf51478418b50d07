package shape

import (
	"fmt"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Start a new subpath at To without drawing.
	MoveToKind PathElementKind = iota + 1
	// Draw a straight line to To.
	LineToKind
	// Draw a cubic Bézier to To, with control points C1 and C2.
	CubicToKind
	// Draw a straight line back to the start of the subpath.
	ClosePathKind
)

// PathElement is a drawing command with absolute coordinates. Every kind other
// than ClosePath ends at To; only cubic Béziers use C1 and C2.
type PathElement struct {
	Kind PathElementKind
	C1   Point
	C2   Point
	To   Point
}

func MoveTo(to Point) PathElement { return PathElement{Kind: MoveToKind, To: to} }
func LineTo(to Point) PathElement { return PathElement{Kind: LineToKind, To: to} }
func ClosePath() PathElement      { return PathElement{Kind: ClosePathKind} }

func CubicTo(c1, c2, to Point) PathElement {
	return PathElement{Kind: CubicToKind, C1: c1, C2: c2, To: to}
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return "MoveTo" + el.To.String()
	case LineToKind:
		return "LineTo" + el.To.String()
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", el.C1, el.C2, el.To)
	case ClosePathKind:
		return "ClosePath"
	default:
		return fmt.Sprintf("PathElement(%d)", el.Kind)
	}
}

// Transform maps the element's points by aff.
func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case ClosePathKind:
		return el
	case CubicToKind:
		el.C1 = el.C1.Transform(aff)
		el.C2 = el.C2.Transform(aff)
	}
	el.To = el.To.Transform(aff)
	return el
}

// EndPoint returns where the pen is after el. ClosePath returns to the start of
// its subpath, which el alone doesn't know, so it reports false.
func (el PathElement) EndPoint() (Point, bool) {
	if el.Kind == ClosePathKind {
		return Point{}, false
	}
	return el.To, true
}

// BezPath is a sequence of drawing commands, as consumed by graphics APIs such as
// PostScript or SVG path data. Each subpath begins with a MoveTo.
type BezPath []PathElement

// Transform returns a copy of p with aff applied to every element.
func (p BezPath) Transform(aff Affine) BezPath {
	return slices.Collect(Transform(p.Elements(), aff))
}

func (p *BezPath) Push(el PathElement) { *p = append(*p, el) }

func (p *BezPath) MoveTo(to Point)          { p.Push(MoveTo(to)) }
func (p *BezPath) LineTo(to Point)          { p.Push(LineTo(to)) }
func (p *BezPath) CubicTo(c1, c2, to Point) { p.Push(CubicTo(c1, c2, to)) }
func (p *BezPath) ClosePath()               { p.Push(ClosePath()) }

func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }
