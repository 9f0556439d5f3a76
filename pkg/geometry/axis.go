package geometry

import "math"

// Axis is an infinite line defined by an origin and a direction. The
// direction need not be unit length; parameters returned by the closest
// point queries are multiples of it.
type Axis struct {
	Origin    Vector
	Direction Vector
}

// NewAxis creates an axis through origin along direction.
func NewAxis(origin, direction Vector) Axis {
	return Axis{Origin: origin, Direction: direction}
}

// IsValid reports whether both vectors are valid and the direction is
// non-zero.
func (a Axis) IsValid() bool {
	return a.Origin.IsValid() && a.Direction.IsValid() &&
		a.Direction.MagnitudeSq() > 0
}

// PointAt returns origin + direction*t.
func (a Axis) PointAt(t float64) Vector {
	return a.Origin.Add(a.Direction.Scale(t))
}

// ClosestPoint returns the parameter of the point on the axis closest to
// pt, found by projecting pt-origin onto the direction.
func (a Axis) ClosestPoint(pt Vector) float64 {
	return pt.Sub(a.Origin).Dot(a.Direction) / a.Direction.MagnitudeSq()
}

// ClosestPointTo solves for the closest-approach parameters s on this
// axis and t on the other. ok is false when the directions are parallel
// and the 2x2 system is singular; the parameters are meaningless in that
// case and must not be used.
func (a Axis) ClosestPointTo(other Axis) (s, t float64, ok bool) {
	w0 := a.Origin.Sub(other.Origin)
	da := a.Direction.Dot(a.Direction)
	b := a.Direction.Dot(other.Direction)
	c := other.Direction.Dot(other.Direction)
	d := a.Direction.Dot(w0)
	e := other.Direction.Dot(w0)

	denom := da*c - b*b
	if denom == 0 {
		return math.NaN(), math.NaN(), false
	}
	s = (b*e - c*d) / denom
	t = (da*e - b*d) / denom
	return s, t, true
}

// IntersectPlane returns the parameter t such that PointAt(t) lies on the
// plane. ok is false when the axis is parallel to the plane, in which
// case there is no unique intersection.
func (a Axis) IntersectPlane(pl Plane) (t float64, ok bool) {
	dirProj := a.Direction.Dot(pl.Z)
	if dirProj == 0 {
		return math.NaN(), false
	}
	originProj := a.Origin.Dot(pl.Z)
	planeProj := pl.Origin.Dot(pl.Z)
	return (planeProj - originProj) / dirProj, true
}
