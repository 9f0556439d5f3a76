package geometry

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Vector represents a 3D position or direction. It is an immutable value
// type: all operations return new values. A Vector may be "unset" (all
// components NaN), which marks an explicitly undefined result and is
// distinct from the numeric zero vector.
type Vector r3.Vector

// NewVector creates a vector from its components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Unset returns the undefined-vector sentinel.
func Unset() Vector {
	nan := math.NaN()
	return Vector{X: nan, Y: nan, Z: nan}
}

// IsValid reports whether no component is NaN. The unset sentinel and any
// vector produced by a degenerate computation fail this check.
func (v Vector) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsNaN(v.Z)
}

// IsZero reports whether the squared magnitude is below the squared
// distance tolerance. Used to guard divisions by near-zero lengths.
func (v Vector) IsZero(tol Tol) bool {
	return v.MagnitudeSq() <= tol.DistanceSq()
}

// Add returns the sum of two vectors.
func (v Vector) Add(other Vector) Vector {
	return Vector(r3.Vector(v).Add(r3.Vector(other)))
}

// Sub returns the difference between two vectors.
func (v Vector) Sub(other Vector) Vector {
	return Vector(r3.Vector(v).Sub(r3.Vector(other)))
}

// Scale multiplies the vector by a scalar.
func (v Vector) Scale(s float64) Vector {
	return Vector(r3.Vector(v).Mul(s))
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(other Vector) float64 {
	return r3.Vector(v).Dot(r3.Vector(other))
}

// Cross returns the cross product of two vectors.
func (v Vector) Cross(other Vector) Vector {
	return Vector(r3.Vector(v).Cross(r3.Vector(other)))
}

// Magnitude returns the length of the vector.
func (v Vector) Magnitude() float64 {
	return r3.Vector(v).Norm()
}

// MagnitudeSq returns the squared length of the vector.
func (v Vector) MagnitudeSq() float64 {
	return r3.Vector(v).Norm2()
}

// Unitize returns the vector scaled to unit length. A near-zero vector
// cannot be unitized; the zero vector is returned instead of panicking.
func (v Vector) Unitize(tol Tol) Vector {
	if v.IsZero(tol) {
		return Vector{}
	}
	return v.Scale(1.0 / v.Magnitude())
}

// DistanceTo returns the distance between two points.
func (v Vector) DistanceTo(other Vector) float64 {
	return v.Sub(other).Magnitude()
}

// DistanceToSq returns the squared distance between two points.
func (v Vector) DistanceToSq(other Vector) float64 {
	return v.Sub(other).MagnitudeSq()
}

// WithZ returns a copy of the vector with the Z component replaced.
func (v Vector) WithZ(z float64) Vector {
	return Vector{X: v.X, Y: v.Y, Z: z}
}

// EpsilonEquals reports whether two points coincide within the distance
// tolerance.
func (v Vector) EpsilonEquals(other Vector, tol Tol) bool {
	return v.DistanceToSq(other) <= tol.DistanceSq()
}

// String formats the vector for diagnostics.
func (v Vector) String() string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
