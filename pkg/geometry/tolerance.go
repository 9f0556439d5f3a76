package geometry

// Tol carries the numeric thresholds consulted by tolerance-sensitive
// geometric operations. Tolerances are passed explicitly rather than held
// in package state, so concurrent callers can work with different values
// without coordination.
type Tol struct {
	Distance float64 // coincidence threshold for points and lengths
	Angle    Angle   // facetting step for approximating curved segments
	Layer    float64 // inclusion threshold for layered containment checks
}

// DefaultTol returns the standard kernel tolerances.
func DefaultTol() Tol {
	return Tol{
		Distance: 1e-6,
		Angle:    FromDegrees(10),
		Layer:    0.5,
	}
}

// DistanceSq returns the squared coincidence threshold, used when
// comparing squared magnitudes to avoid a square root.
func (t Tol) DistanceSq() float64 {
	return t.Distance * t.Distance
}
