package geometry

import "math"

// Angle is a radian value wrapped in a distinct type so angular
// quantities do not get confused with plain scalars. Two sentinel values
// exist: Undefined (NaN) for "no angle" and Multi (negative infinity) for
// "represents several angles at once"; the latter is reserved for
// higher-level callers and never produced by this package.
type Angle float64

// Undefined returns the no-angle sentinel.
func Undefined() Angle {
	return Angle(math.NaN())
}

// Multi returns the several-angles-at-once sentinel.
func Multi() Angle {
	return Angle(math.Inf(-1))
}

// FromDegrees converts degrees to an Angle.
func FromDegrees(deg float64) Angle {
	return Angle(deg * math.Pi / 180.0)
}

// IsUndefined reports whether the angle is the undefined sentinel.
func (a Angle) IsUndefined() bool {
	return math.IsNaN(float64(a))
}

// IsMulti reports whether the angle is the multi-angle sentinel.
func (a Angle) IsMulti() bool {
	return math.IsInf(float64(a), -1)
}

// Radians returns the raw radian value.
func (a Angle) Radians() float64 {
	return float64(a)
}

// Degrees returns the angle expressed in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * 180.0 / math.Pi
}

// NormalizeTo2Pi maps the angle to the range [0, 2π). math.Mod keeps the
// sign of the dividend, so 2π is added before the final modulo to make
// negative inputs come out correctly.
func (a Angle) NormalizeTo2Pi() Angle {
	return Angle(math.Mod(math.Mod(float64(a), 2*math.Pi)+2*math.Pi, 2*math.Pi))
}

// Normalize maps the angle to the range (-π, π].
func (a Angle) Normalize() Angle {
	n := a.NormalizeTo2Pi()
	if n > math.Pi {
		n -= 2 * math.Pi
	}
	return n
}

// Sign returns +1 for zero or positive angles and -1 for negative ones.
// Zero counts as positive by convention so that mitre and offset
// calculations never see a zero sign factor.
func (a Angle) Sign() float64 {
	if a < 0 {
		return -1
	}
	return 1
}

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 {
	return math.Sin(float64(a))
}

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 {
	return math.Cos(float64(a))
}

// Tan returns the tangent of the angle.
func (a Angle) Tan() float64 {
	return math.Tan(float64(a))
}

// Abs returns the magnitude of the angle.
func (a Angle) Abs() Angle {
	return Angle(math.Abs(float64(a)))
}
