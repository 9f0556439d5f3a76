package geometry

import "math"

// CircleFit represents the result of fitting a circle to points
type CircleFit struct {
	Center Vector  // Circle center, carrying the Z of the first input point
	Radius float64 // Circle radius
	StdDev float64 // Standard deviation of fit (quality measure)
}

// CircleThrough3PointsXY returns the center and radius of the circle
// through three points, projected onto the XY plane. Collinear points
// define no circle and report ok=false.
//
// Uses the 3-point determinant formula:
//
//	D = 2(x₁(y₂-y₃) + x₂(y₃-y₁) + x₃(y₁-y₂))
//	cx = ((x₁²+y₁²)(y₂-y₃) + (x₂²+y₂²)(y₃-y₁) + (x₃²+y₃²)(y₁-y₂)) / D
//	cy = ((x₁²+y₁²)(x₃-x₂) + (x₂²+y₂²)(x₁-x₃) + (x₃²+y₃²)(x₂-x₁)) / D
func CircleThrough3PointsXY(a, b, c Vector) (center Vector, radius float64, ok bool) {
	x1, y1 := a.X, a.Y
	x2, y2 := b.X, b.Y
	x3, y3 := c.X, c.Y

	d := 2.0 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if math.Abs(d) < 1e-10 {
		return Unset(), 0, false
	}

	s1 := x1*x1 + y1*y1
	s2 := x2*x2 + y2*y2
	s3 := x3*x3 + y3*y3

	cx := (s1*(y2-y3) + s2*(y3-y1) + s3*(y1-y2)) / d
	cy := (s1*(x3-x2) + s2*(x1-x3) + s3*(x2-x1)) / d

	dx := x1 - cx
	dy := y1 - cy
	return NewVector(cx, cy, a.Z), math.Sqrt(dx*dx + dy*dy), true
}

// FitCircleXY fits a circle to a set of points projected onto the XY
// plane. The circle is taken through the first, middle, and last
// points to get good coverage of the arc; the standard deviation of
// all radial distances measures the fit quality. Fewer than 3 points
// or collinear anchor points report ok=false.
func FitCircleXY(points []Vector) (CircleFit, bool) {
	if len(points) < 3 {
		return CircleFit{Center: Unset()}, false
	}

	center, radius, ok := CircleThrough3PointsXY(
		points[0], points[len(points)/2], points[len(points)-1])
	if !ok {
		return CircleFit{Center: Unset()}, false
	}

	var sumError float64
	for _, p := range points {
		dx := p.X - center.X
		dy := p.Y - center.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		sumError += (dist - radius) * (dist - radius)
	}

	return CircleFit{
		Center: center,
		Radius: radius,
		StdDev: math.Sqrt(sumError / float64(len(points))),
	}, true
}
