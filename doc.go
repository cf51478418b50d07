// Package shape provides constructors for simple 2D shapes: rules, squares,
// rectangles, regular polygons and rectangles with rounded corners. It is meant
// for diagramming and vector graphics, where shapes are built once and then
// transformed, combined and rendered by other code.
//
// # Outlines, trails and paths
//
// Every constructor returns an [Outline]: a start point, a sequence of
// [Segment] values and a flag saying whether the outline is closed. Segments are
// relative; a straight segment is just an offset, and a cubic Bézier segment
// holds two control points and an end point, all measured from wherever the
// previous segment ended. This makes outlines cheap to transform. An affine
// transform maps the start point fully and the segments by its linear part only.
//
// A [Trail] is an outline without a position, and a [Path] is a collection of
// outlines that are drawn together. Use [Outline.BezPath] or
// [Outline.PathElements] to turn an outline into absolute drawing commands
// ([MoveTo], [LineTo], [CubicTo] and [ClosePath]), the form that graphics APIs
// like PostScript consume.
//
// # Coordinates
//
// All shapes are centered at the origin in a y-up coordinate system, and closed
// shapes run counterclockwise, so their [Outline.SignedArea] is positive. Flip
// the result with [FlipY] to draw in a y-down system.
//
// # Polygons
//
// [Polygon] is the general engine behind [RegPoly] and [UnitSquare]. It builds
// vertices from a [PolyType], centers them on their centroid and rotates them
// according to an [Orientation]. [PolyRegular] places vertices on a circle,
// [PolyPolar] uses explicit angles and radii, and [PolySides] walks a list of
// side lengths and turns.
//
// # Arcs
//
// Circular arcs are approximated with cubic Béziers, one per quarter turn or
// less. Angles are given in [Turn] units, where a full turn is 1.
package shape
