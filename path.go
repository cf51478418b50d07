package shape

import (
	"iter"
	"slices"
)

// Path is a collection of outlines that are filled or stroked together.
type Path []Outline

// Transform applies aff to every outline of the path.
func (p Path) Transform(aff Affine) Path {
	out := make(Path, len(p))
	for i, o := range p {
		out[i] = o.Transform(aff)
	}
	return out
}

// PathElements returns the drawing commands of all outlines, in order.
func (p Path) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for _, o := range p {
			for el := range o.PathElements() {
				if !yield(el) {
					return
				}
			}
		}
	}
}

// BezPath returns the drawing commands of all outlines, in order.
func (p Path) BezPath() BezPath {
	return slices.Collect(p.PathElements())
}

// SignedArea returns the sum of the outlines' signed areas.
func (p Path) SignedArea() float64 {
	var area float64
	for _, o := range p {
		area += o.SignedArea()
	}
	return area
}

// BoundingBox returns the union of the outlines' bounding boxes. An empty path has
// the zero box.
func (p Path) BoundingBox() Box {
	if len(p) == 0 {
		return Box{}
	}
	box := p[0].BoundingBox()
	for _, o := range p[1:] {
		box = box.Union(o.BoundingBox())
	}
	return box
}
