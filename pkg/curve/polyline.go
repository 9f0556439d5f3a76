package curve

import "github.com/modelkit/geom/pkg/geometry"

// PolyLine is a chain of straight segments through an ordered vertex
// list. n vertices give n-1 spans.
type PolyLine struct {
	Points []geometry.Vector
}

// NewPolyLine creates a polyline through the given vertices.
func NewPolyLine(points ...geometry.Vector) *PolyLine {
	return &PolyLine{Points: points}
}

// IsValid reports whether the polyline has at least two valid vertices.
func (p *PolyLine) IsValid() bool {
	if len(p.Points) < 2 {
		return false
	}
	for _, pt := range p.Points {
		if !pt.IsValid() {
			return false
		}
	}
	return true
}

// SpanCount returns the number of segments.
func (p *PolyLine) SpanCount() int {
	if len(p.Points) < 2 {
		return 0
	}
	return len(p.Points) - 1
}

// PointAt interpolates within the span-th segment.
func (p *PolyLine) PointAt(span int, t float64) geometry.Vector {
	if span < 0 || span >= p.SpanCount() {
		return geometry.Unset()
	}
	return lerp(p.Points[span], p.Points[span+1], t)
}

// Start returns the first vertex.
func (p *PolyLine) Start() geometry.Vector {
	if len(p.Points) == 0 {
		return geometry.Unset()
	}
	return p.Points[0]
}

// End returns the last vertex.
func (p *PolyLine) End() geometry.Vector {
	if len(p.Points) == 0 {
		return geometry.Unset()
	}
	return p.Points[len(p.Points)-1]
}

// Vertices returns the vertex list.
func (p *PolyLine) Vertices() []geometry.Vector {
	return p.Points
}

// Length returns the sum of segment lengths.
func (p *PolyLine) Length() float64 {
	total := 0.0
	for i := 0; i+1 < len(p.Points); i++ {
		total += p.Points[i].DistanceTo(p.Points[i+1])
	}
	return total
}

// Closed reports whether first and last vertices coincide within
// tolerance.
func (p *PolyLine) Closed(tol geometry.Tol) bool {
	if len(p.Points) < 3 {
		return false
	}
	return p.Start().EpsilonEquals(p.End(), tol)
}

// Facet returns the vertex list; straight segments need no subdivision.
func (p *PolyLine) Facet(tol geometry.Tol) []geometry.Vector {
	return p.Points
}
