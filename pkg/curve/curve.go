// Package curve provides parametrized curve types for the geometry
// kernel. A curve's parametrization is split into integer-indexed spans
// with a normalized [0,1] parameter within each span, so composite curves
// can delegate evaluation to their pieces without deriving a global
// arclength parametrization.
package curve

import (
	"math"

	"github.com/modelkit/geom/pkg/geometry"
)

// Curve is the capability set shared by all curve variants.
type Curve interface {
	// IsValid reports whether the curve definition is usable. Malformed
	// curves are representable; queries on them return unset values.
	IsValid() bool
	// SpanCount returns the number of independently evaluable spans.
	SpanCount() int
	// PointAt evaluates the point on the given span at a normalized
	// [0,1] parameter.
	PointAt(span int, t float64) geometry.Vector
	// Start returns the first point of the curve.
	Start() geometry.Vector
	// End returns the last point of the curve.
	End() geometry.Vector
	// Vertices returns the defining vertices of the curve.
	Vertices() []geometry.Vector
	// Length returns the total curve length.
	Length() float64
	// Closed reports whether start and end coincide within tolerance.
	Closed(tol geometry.Tol) bool
	// Facet returns a polygonal approximation including both endpoints,
	// subdividing curved spans by the tolerance facetting angle.
	Facet(tol geometry.Tol) []geometry.Vector
}

// PointAtParameter evaluates a curve at a global parameter in
// [0, SpanCount]: the integer part selects the span and the fraction is
// the parameter within it.
func PointAtParameter(c Curve, t float64) geometry.Vector {
	n := c.SpanCount()
	if n == 0 {
		return geometry.Unset()
	}
	span := int(math.Floor(t))
	if span < 0 {
		span = 0
	}
	local := t - float64(span)
	if span >= n {
		span = n - 1
		local = 1
	}
	return c.PointAt(span, local)
}

// lerp interpolates between two points.
func lerp(a, b geometry.Vector, t float64) geometry.Vector {
	return a.Add(b.Sub(a).Scale(t))
}

// appendFacet appends pts to dst, skipping the first point when it
// repeats the current tail within tolerance.
func appendFacet(dst []geometry.Vector, pts []geometry.Vector, tol geometry.Tol) []geometry.Vector {
	for i, p := range pts {
		if i == 0 && len(dst) > 0 && dst[len(dst)-1].EpsilonEquals(p, tol) {
			continue
		}
		dst = append(dst, p)
	}
	return dst
}
