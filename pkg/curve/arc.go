package curve

import (
	"math"

	"github.com/modelkit/geom/pkg/geometry"
)

// Arc is a circular arc in a plane parallel to XY, described by its
// centre, radius and start/end angles measured from the +X axis. The
// sweep runs from StartAngle to EndAngle; a negative sweep runs
// clockwise.
type Arc struct {
	Center     geometry.Vector
	Radius     float64
	StartAngle geometry.Angle
	EndAngle   geometry.Angle
}

// NewArc creates an arc about center from startAngle to endAngle.
func NewArc(center geometry.Vector, radius float64, startAngle, endAngle geometry.Angle) *Arc {
	return &Arc{Center: center, Radius: radius, StartAngle: startAngle, EndAngle: endAngle}
}

// IsValid reports whether the arc has a valid centre, positive radius
// and defined angles.
func (a *Arc) IsValid() bool {
	return a.Center.IsValid() && a.Radius > 0 &&
		!a.StartAngle.IsUndefined() && !a.EndAngle.IsUndefined() &&
		!a.StartAngle.IsMulti() && !a.EndAngle.IsMulti()
}

// Sweep returns the signed swept angle.
func (a *Arc) Sweep() geometry.Angle {
	return a.EndAngle - a.StartAngle
}

// SpanCount returns 1; an arc is evaluated in closed form.
func (a *Arc) SpanCount() int { return 1 }

// PointAt evaluates the arc at a normalized parameter.
func (a *Arc) PointAt(span int, t float64) geometry.Vector {
	if span != 0 || !a.IsValid() {
		return geometry.Unset()
	}
	ang := a.StartAngle + geometry.Angle(float64(a.Sweep())*t)
	return geometry.NewVector(
		a.Center.X+a.Radius*ang.Cos(),
		a.Center.Y+a.Radius*ang.Sin(),
		a.Center.Z,
	)
}

// Start returns the arc start point.
func (a *Arc) Start() geometry.Vector { return a.PointAt(0, 0) }

// End returns the arc end point.
func (a *Arc) End() geometry.Vector { return a.PointAt(0, 1) }

// Vertices returns the start and end points.
func (a *Arc) Vertices() []geometry.Vector {
	return []geometry.Vector{a.Start(), a.End()}
}

// Length returns radius times the swept angle.
func (a *Arc) Length() float64 {
	return a.Radius * math.Abs(float64(a.Sweep()))
}

// Closed reports whether the arc sweeps a full turn.
func (a *Arc) Closed(tol geometry.Tol) bool {
	return a.Start().EpsilonEquals(a.End(), tol)
}

// Facet subdivides the sweep into steps no larger than the facetting
// angle, returning both endpoints.
func (a *Arc) Facet(tol geometry.Tol) []geometry.Vector {
	steps := facetSteps(a.Sweep(), tol)
	pts := make([]geometry.Vector, 0, steps+1)
	for i := 0; i <= steps; i++ {
		pts = append(pts, a.PointAt(0, float64(i)/float64(steps)))
	}
	return pts
}

// facetSteps returns the number of subdivisions needed to keep each
// facet within the tolerance angle.
func facetSteps(sweep geometry.Angle, tol geometry.Tol) int {
	step := float64(tol.Angle)
	if step <= 0 {
		step = float64(geometry.FromDegrees(10))
	}
	steps := int(math.Ceil(math.Abs(float64(sweep)) / step))
	if steps < 1 {
		steps = 1
	}
	return steps
}

// Circle is a full circle in a plane parallel to XY. It is always
// closed and has one span parametrized counter-clockwise from +X.
type Circle struct {
	Center geometry.Vector
	Radius float64
}

// NewCircle creates a circle about center.
func NewCircle(center geometry.Vector, radius float64) *Circle {
	return &Circle{Center: center, Radius: radius}
}

// IsValid reports whether the centre is valid and the radius positive.
func (c *Circle) IsValid() bool {
	return c.Center.IsValid() && c.Radius > 0
}

// SpanCount returns 1.
func (c *Circle) SpanCount() int { return 1 }

// PointAt evaluates the circle at a normalized parameter, one full
// counter-clockwise turn over [0,1].
func (c *Circle) PointAt(span int, t float64) geometry.Vector {
	if span != 0 || !c.IsValid() {
		return geometry.Unset()
	}
	ang := geometry.Angle(2 * math.Pi * t)
	return geometry.NewVector(
		c.Center.X+c.Radius*ang.Cos(),
		c.Center.Y+c.Radius*ang.Sin(),
		c.Center.Z,
	)
}

// Start returns the point at angle zero.
func (c *Circle) Start() geometry.Vector { return c.PointAt(0, 0) }

// End returns the point at a full turn, coincident with Start.
func (c *Circle) End() geometry.Vector { return c.PointAt(0, 1) }

// Vertices returns the single defining vertex at angle zero.
func (c *Circle) Vertices() []geometry.Vector {
	return []geometry.Vector{c.Start()}
}

// Length returns the circumference.
func (c *Circle) Length() float64 {
	return 2 * math.Pi * c.Radius
}

// Closed always reports true.
func (c *Circle) Closed(tol geometry.Tol) bool { return true }

// Facet subdivides the full turn by the facetting angle; the closing
// vertex repeats the first.
func (c *Circle) Facet(tol geometry.Tol) []geometry.Vector {
	steps := facetSteps(geometry.Angle(2*math.Pi), tol)
	pts := make([]geometry.Vector, 0, steps+1)
	for i := 0; i <= steps; i++ {
		pts = append(pts, c.PointAt(0, float64(i)/float64(steps)))
	}
	return pts
}
