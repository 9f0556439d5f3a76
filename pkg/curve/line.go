package curve

import "github.com/modelkit/geom/pkg/geometry"

// Line is a straight segment between two vertices. It has exactly one
// span.
type Line struct {
	From geometry.Vector
	To   geometry.Vector
}

// NewLine creates a segment from a to b.
func NewLine(a, b geometry.Vector) *Line {
	return &Line{From: a, To: b}
}

// NewLine2D creates a segment between two XY points at elevation zero.
func NewLine2D(x0, y0, x1, y1 float64) *Line {
	return NewLine(geometry.NewVector(x0, y0, 0), geometry.NewVector(x1, y1, 0))
}

// IsValid reports whether both vertices are valid.
func (l *Line) IsValid() bool {
	return l.From.IsValid() && l.To.IsValid()
}

// SpanCount returns 1.
func (l *Line) SpanCount() int { return 1 }

// PointAt interpolates along the segment.
func (l *Line) PointAt(span int, t float64) geometry.Vector {
	if span != 0 {
		return geometry.Unset()
	}
	return lerp(l.From, l.To, t)
}

// Start returns the first vertex.
func (l *Line) Start() geometry.Vector { return l.From }

// End returns the second vertex.
func (l *Line) End() geometry.Vector { return l.To }

// Vertices returns the two defining vertices.
func (l *Line) Vertices() []geometry.Vector {
	return []geometry.Vector{l.From, l.To}
}

// Length returns the segment length.
func (l *Line) Length() float64 {
	return l.From.DistanceTo(l.To)
}

// Closed reports whether the segment degenerates to a point.
func (l *Line) Closed(tol geometry.Tol) bool {
	return l.From.EpsilonEquals(l.To, tol)
}

// Facet returns the two endpoints; a segment needs no subdivision.
func (l *Line) Facet(tol geometry.Tol) []geometry.Vector {
	return l.Vertices()
}

// Direction returns the vector from start to end.
func (l *Line) Direction() geometry.Vector {
	return l.To.Sub(l.From)
}

// Midpoint returns the point halfway along the segment.
func (l *Line) Midpoint() geometry.Vector {
	return lerp(l.From, l.To, 0.5)
}
