package curve

import "github.com/modelkit/geom/pkg/geometry"

// PolyCurve is an ordered sequence of sub-curves treated as one curve.
// The sub-curves are assumed, not verified, to run contiguously
// end-to-start. Span indices are delegated to the sub-curves in order.
type PolyCurve struct {
	Curves []Curve
}

// NewPolyCurve creates a composite curve over the given sub-curves.
func NewPolyCurve(curves ...Curve) *PolyCurve {
	return &PolyCurve{Curves: curves}
}

// Append adds a sub-curve to the end of the sequence.
func (p *PolyCurve) Append(c Curve) {
	p.Curves = append(p.Curves, c)
}

// IsValid reports whether there is at least one sub-curve and every
// sub-curve is itself valid.
func (p *PolyCurve) IsValid() bool {
	if len(p.Curves) == 0 {
		return false
	}
	for _, c := range p.Curves {
		if !c.IsValid() {
			return false
		}
	}
	return true
}

// SpanCount returns the total span count of all sub-curves.
func (p *PolyCurve) SpanCount() int {
	total := 0
	for _, c := range p.Curves {
		total += c.SpanCount()
	}
	return total
}

// PointAt walks the sub-curves, subtracting consumed span counts until
// the span index lands in one of them. The global arclength is never
// re-derived.
func (p *PolyCurve) PointAt(span int, t float64) geometry.Vector {
	if span < 0 {
		return geometry.Unset()
	}
	for _, c := range p.Curves {
		n := c.SpanCount()
		if span < n {
			return c.PointAt(span, t)
		}
		span -= n
	}
	return geometry.Unset()
}

// Start returns the start of the first sub-curve.
func (p *PolyCurve) Start() geometry.Vector {
	if len(p.Curves) == 0 {
		return geometry.Unset()
	}
	return p.Curves[0].Start()
}

// End returns the end of the last sub-curve.
func (p *PolyCurve) End() geometry.Vector {
	if len(p.Curves) == 0 {
		return geometry.Unset()
	}
	return p.Curves[len(p.Curves)-1].End()
}

// Vertices concatenates the sub-curve vertices, dropping duplicated
// joints between consecutive sub-curves.
func (p *PolyCurve) Vertices() []geometry.Vector {
	tol := geometry.DefaultTol()
	var out []geometry.Vector
	for _, c := range p.Curves {
		out = appendFacet(out, c.Vertices(), tol)
	}
	return out
}

// Length returns the sum of sub-curve lengths.
func (p *PolyCurve) Length() float64 {
	total := 0.0
	for _, c := range p.Curves {
		total += c.Length()
	}
	return total
}

// Closed reports whether the first vertex coincides with the last
// within tolerance.
func (p *PolyCurve) Closed(tol geometry.Tol) bool {
	if len(p.Curves) == 0 {
		return false
	}
	return p.Start().EpsilonEquals(p.End(), tol)
}

// Facet concatenates the sub-curve facets, dropping duplicated joints.
func (p *PolyCurve) Facet(tol geometry.Tol) []geometry.Vector {
	var out []geometry.Vector
	for _, c := range p.Curves {
		out = appendFacet(out, c.Facet(tol), tol)
	}
	return out
}
