// Package intersect provides stateless intersection queries between
// geometric primitives, computed in the XY projection. Degenerate inputs
// (parallel lines, concentric circles, zero-length directions) are
// expected operating conditions and reported through ok flags or empty
// result slices, never panics.
package intersect

import (
	"math"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/modelkit/geom/pkg/curve"
	"github.com/modelkit/geom/pkg/geometry"
)

// xy projects a vector onto the XY plane.
func xy(v geometry.Vector) r2.Point {
	return r2.Point{X: v.X, Y: v.Y}
}

// LineLineXY solves for the intersection parameters of two infinite
// lines given in point+direction form. ok is false when the directions
// are parallel and the determinant vanishes.
func LineLineXY(pt0, dir0, pt1, dir1 geometry.Vector) (t0, t1 float64, ok bool) {
	d0 := xy(dir0)
	d1 := xy(dir1)
	det := d0.Cross(d1)
	if det == 0 {
		return math.NaN(), math.NaN(), false
	}
	w := xy(pt1).Sub(xy(pt0))
	return w.Cross(d1) / det, w.Cross(d0) / det, true
}

// LineLineXYPoint intersects two line segments in the XY projection.
// With segmentsOnly set, solutions whose parameter falls outside [0,1]
// on either segment are rejected. Parallel lines never intersect; in
// particular, collinear overlapping segments are NOT reported as an
// intersection point. Callers needing overlap detection must test for it
// separately.
func LineLineXYPoint(a, b *curve.Line, segmentsOnly bool, tol geometry.Tol) (geometry.Vector, bool) {
	t0, t1, ok := LineLineXY(a.From, a.Direction(), b.From, b.Direction())
	if !ok {
		return geometry.Unset(), false
	}
	if segmentsOnly && (t0 < 0 || t0 > 1 || t1 < 0 || t1 > 1) {
		return geometry.Unset(), false
	}
	return a.PointAt(0, t0), true
}

// LineCircleXY intersects the infinite line through start and end with a
// circle in the XY projection, returning 0, 1 (tangent within tolerance)
// or 2 points ordered along the line. The Z of the results is taken from
// the line start.
func LineCircleXY(start, end, center geometry.Vector, radius float64, tol geometry.Tol) []geometry.Vector {
	d := xy(end).Sub(xy(start))
	f := xy(start).Sub(xy(center))

	a := d.Dot(d)
	if a == 0 {
		// Zero-length line: no parametrization to solve along.
		return nil
	}
	b := 2 * d.Dot(f)
	c := f.Dot(f) - radius*radius

	disc := b*b - 4*a*c
	eps := tol.Distance * a
	at := func(t float64) geometry.Vector {
		p := xy(start).Add(d.Mul(t))
		return geometry.NewVector(p.X, p.Y, start.Z)
	}
	switch {
	case disc < -eps:
		return nil
	case disc <= eps:
		return []geometry.Vector{at(-b / (2 * a))}
	default:
		root := math.Sqrt(disc)
		return []geometry.Vector{at((-b - root) / (2 * a)), at((-b + root) / (2 * a))}
	}
}

// CircleCircleXY intersects two circles in the XY projection using the
// radical-line construction. Concentric circles and circles fully inside
// or outside one another yield no points; tangency yields one.
func CircleCircleXY(centerA geometry.Vector, radiusA float64, centerB geometry.Vector, radiusB float64, tol geometry.Tol) []geometry.Vector {
	ca := xy(centerA)
	cb := xy(centerB)
	d := cb.Sub(ca).Norm()
	if d <= tol.Distance {
		// Concentric: either coincident (infinite solutions) or nested.
		return nil
	}
	if d > radiusA+radiusB+tol.Distance {
		return nil
	}
	if d < math.Abs(radiusA-radiusB)-tol.Distance {
		return nil
	}

	// Distance from centerA to the radical line along the centre line.
	a := (d*d + radiusA*radiusA - radiusB*radiusB) / (2 * d)
	u := cb.Sub(ca).Mul(1 / d)
	mid := ca.Add(u.Mul(a))

	h2 := radiusA*radiusA - a*a
	if h2 <= tol.DistanceSq() {
		return []geometry.Vector{geometry.NewVector(mid.X, mid.Y, centerA.Z)}
	}
	h := math.Sqrt(h2)
	perp := r2.Point{X: -u.Y, Y: u.X}.Mul(h)
	return []geometry.Vector{
		geometry.NewVector(mid.X+perp.X, mid.Y+perp.Y, centerA.Z),
		geometry.NewVector(mid.X-perp.X, mid.Y-perp.Y, centerA.Z),
	}
}

// OffsetExtensionDistance computes how far a mitered offset line must be
// extended along its own direction to meet an adjacent offset line that
// joins it at the given included angle, where the two lines are offset
// sideways by offsetA and offsetB respectively. The extension is signed:
// it follows the sign of the angle and of the offsets. Parallel joins
// (angle ~0) need no extension and return 0.
func OffsetExtensionDistance(angle geometry.Angle, offsetA, offsetB float64) float64 {
	sin := angle.Sin()
	if scalar.EqualWithinAbs(sin, 0, 1e-12) {
		return 0
	}
	return (offsetA*angle.Cos() - offsetB) / sin
}
