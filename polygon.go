package shape

import "math"

// PolygonOpts describes a polygon for [Polygon].
type PolygonOpts struct {
	// Type determines the polygon's vertices. A nil Type produces an empty
	// outline.
	Type PolyType
	// Orientation rotates the polygon about its center after the vertices have
	// been generated.
	Orientation Orientation
	// Center is where the centroid of the polygon's vertices is placed.
	Center Point
}

// PolyType is one of [PolyRegular], [PolySides] or [PolyPolar].
type PolyType interface {
	vertices() []Vec2
}

// PolyRegular is a regular polygon with the given number of sides, its vertices
// on a circle of the given radius. The first vertex lies on the positive x axis.
type PolyRegular struct {
	Sides  int
	Radius float64
}

// PolySides is a polygon described by walking its sides. Side i has length
// Lengths[i]. The first side points along the positive x axis and before every
// following side the direction turns by the next element of Turns.
//
// At most len(Turns)+1 sides are taken from Lengths. The side that returns to the
// first vertex is implied and mustn't be listed.
type PolySides struct {
	Turns   []Turn
	Lengths []float64
}

// PolyPolar is a polygon described by its vertices in polar coordinates. Vertex i
// is at distance Radii[i] from the center, at the angle that is the sum of the
// first i elements of Turns. At most len(Turns)+1 vertices are taken from Radii.
type PolyPolar struct {
	Turns []Turn
	Radii []float64
}

func (p PolyRegular) vertices() []Vec2 {
	if p.Sides <= 0 {
		return nil
	}
	radii := make([]float64, p.Sides)
	for i := range radii {
		radii[i] = p.Radius
	}
	return PolyPolar{
		Turns: repeatTurn(FullTurn/Turn(p.Sides), p.Sides-1),
		Radii: radii,
	}.vertices()
}

func (p PolyPolar) vertices() []Vec2 {
	n := min(len(p.Turns)+1, len(p.Radii))
	vs := make([]Vec2, n)
	var angle Turn
	for i := range vs {
		if i > 0 {
			angle += p.Turns[i-1]
		}
		vs[i] = VecFromAngle(angle.Rad()).Mul(p.Radii[i])
	}
	return vs
}

func (p PolySides) vertices() []Vec2 {
	n := min(len(p.Turns)+1, len(p.Lengths))
	vs := make([]Vec2, n+1)
	var angle Turn
	for i := range n {
		if i > 0 {
			angle += p.Turns[i-1]
		}
		vs[i+1] = vs[i].Add(VecFromAngle(angle.Rad()).Mul(p.Lengths[i]))
	}
	return vs
}

// orientEpsilon is the tolerance within which vertex distances and rotations are
// considered tied. Ties go to the earlier vertex and to the edge towards the next
// vertex.
const orientEpsilon = 1e-9

type orientKind int

const (
	orientNone orientKind = iota
	orientTo
)

// Orientation selects how [Polygon] rotates a polygon.
type Orientation struct {
	kind orientKind
	dir  Vec2
}

var (
	// NoOrient leaves the polygon as generated.
	NoOrient = Orientation{}
	// OrientH gives the polygon a horizontal edge at the bottom.
	OrientH = OrientTo(Vec2{0, -1})
	// OrientV gives the polygon a vertical edge on the right.
	OrientV = OrientTo(Vec2{1, 0})
)

// OrientTo rotates the polygon so that the edge furthest in direction v is
// perpendicular to v. Of the two edges meeting at the vertex furthest along v, the
// one requiring the smaller rotation is chosen. A zero v leaves the polygon as
// generated, like [NoOrient].
func OrientTo(v Vec2) Orientation {
	return Orientation{kind: orientTo, dir: v}
}

// rotation returns the angle in radians by which to rotate vs.
func (ori Orientation) rotation(vs []Vec2) float64 {
	// A zero direction has no edge to align.
	if ori.kind == orientNone || len(vs) < 2 || ori.dir.Hypot2() == 0 {
		return 0
	}
	v := ori.dir.Normalize()
	best := 0
	for i := range vs {
		if vs[i].Dot(v) > vs[best].Dot(v)+orientEpsilon {
			best = i
		}
	}
	x := vs[best]
	next := vs[(best+1)%len(vs)]
	prev := vs[(best+len(vs)-1)%len(vs)]

	// The rotation that turns edge o perpendicular to v, reduced to (-π/2, π/2].
	toNormal := func(o Vec2) float64 {
		a := v.Angle() + math.Pi/2 - o.Angle()
		a = math.Mod(a, math.Pi)
		if a > math.Pi/2 {
			a -= math.Pi
		} else if a <= -math.Pi/2 {
			a += math.Pi
		}
		return a
	}
	a1 := toNormal(next.Sub(x))
	a2 := toNormal(prev.Sub(x))
	if math.Abs(a2) < math.Abs(a1)-orientEpsilon {
		return a2
	}
	return a1
}

// Polygon returns the closed outline of the polygon described by opts. It starts
// at the first generated vertex and, after the explicitly described sides, has a
// straight segment back to that vertex.
func Polygon(opts PolygonOpts) Outline {
	var vs []Vec2
	if opts.Type != nil {
		vs = opts.Type.vertices()
	}
	if len(vs) == 0 {
		return Outline{Start: opts.Center, Closed: true}
	}

	var centroid Vec2
	for _, v := range vs {
		centroid = centroid.Add(v)
	}
	centroid = centroid.Div(float64(len(vs)))
	for i := range vs {
		vs[i] = vs[i].Sub(centroid)
	}
	if th := opts.Orientation.rotation(vs); th != 0 {
		for i := range vs {
			vs[i] = vs[i].Rotate(th)
		}
	}

	var segs []Segment
	if len(vs) > 1 {
		segs = make([]Segment, len(vs))
		for i := range vs {
			segs[i] = Straight(vs[(i+1)%len(vs)].Sub(vs[i]))
		}
	}
	return Outline{
		Start:    opts.Center.Translate(vs[0]),
		Closed:   true,
		Segments: segs,
	}
}
