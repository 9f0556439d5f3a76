package geometry

import "math"

// Plane is an origin point together with an orthonormal local frame. Z is
// the plane normal; X and Y span the plane itself.
type Plane struct {
	Origin Vector
	X      Vector
	Y      Vector
	Z      Vector
}

// XYPlane returns the global XY plane at elevation z.
func XYPlane(z float64) Plane {
	return Plane{
		Origin: NewVector(0, 0, z),
		X:      NewVector(1, 0, 0),
		Y:      NewVector(0, 1, 0),
		Z:      NewVector(0, 0, 1),
	}
}

// NewPlane constructs a plane through origin with the given normal. The
// in-plane X axis is chosen as the projection of the global X axis, or
// the global Y axis when the normal is (anti)parallel to global X.
func NewPlane(origin, normal Vector, tol Tol) Plane {
	z := normal.Unitize(tol)
	seed := NewVector(1, 0, 0)
	if math.Abs(z.X) > 1-tol.Distance {
		seed = NewVector(0, 1, 0)
	}
	x := seed.Sub(z.Scale(seed.Dot(z))).Unitize(tol)
	y := z.Cross(x)
	return Plane{Origin: origin, X: x, Y: y, Z: z}
}

// PlaneThrough3Points constructs a plane through three points, with the
// X axis along the first edge. ok is false when the points are collinear.
func PlaneThrough3Points(a, b, c Vector, tol Tol) (Plane, bool) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	n := ab.Cross(ac)
	if n.IsZero(tol) {
		return Plane{}, false
	}
	z := n.Unitize(tol)
	x := ab.Unitize(tol)
	y := z.Cross(x)
	return Plane{Origin: a, X: x, Y: y, Z: z}, true
}

// IsValid reports whether all frame vectors are valid and non-zero.
func (p Plane) IsValid() bool {
	return p.Origin.IsValid() && p.X.IsValid() && p.Y.IsValid() && p.Z.IsValid() &&
		p.X.MagnitudeSq() > 0 && p.Y.MagnitudeSq() > 0 && p.Z.MagnitudeSq() > 0
}

// LocalToGlobal maps local frame coordinates to a global point.
func (p Plane) LocalToGlobal(x, y, z float64) Vector {
	return p.Origin.Add(p.X.Scale(x)).Add(p.Y.Scale(y)).Add(p.Z.Scale(z))
}

// GlobalToLocal maps a global point into the plane's frame coordinates.
func (p Plane) GlobalToLocal(pt Vector) Vector {
	d := pt.Sub(p.Origin)
	return NewVector(d.Dot(p.X), d.Dot(p.Y), d.Dot(p.Z))
}

// Project returns the closest point to pt on the plane.
func (p Plane) Project(pt Vector) Vector {
	local := p.GlobalToLocal(pt)
	return p.LocalToGlobal(local.X, local.Y, 0)
}
