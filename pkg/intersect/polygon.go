package intersect

import (
	"math"
	"sort"

	"github.com/golang/geo/r2"

	"github.com/modelkit/geom/pkg/curve"
	"github.com/modelkit/geom/pkg/geometry"
)

// Interval is a portion of a curve's global parameter domain. The global
// parameter runs over [0, SpanCount]: the integer part is the span index
// and the fraction the normalized position within the span.
type Interval struct {
	Start float64
	End   float64
}

// Mid returns the interval midpoint.
func (iv Interval) Mid() float64 {
	return (iv.Start + iv.End) / 2
}

// PolygonContainmentXY reports whether pt lies inside the polygon in the
// XY projection, using a ray crossing count. Points on the polygon
// boundary (within the distance tolerance) count as inside. The polygon
// is implicitly closed from its last vertex back to its first.
func PolygonContainmentXY(polygon []geometry.Vector, pt geometry.Vector, tol geometry.Tol) bool {
	if len(polygon) < 3 {
		return false
	}
	p := xy(pt)

	inside := false
	j := len(polygon) - 1
	for i := 0; i < len(polygon); i++ {
		a := xy(polygon[j])
		b := xy(polygon[i])
		if pointSegDistSq(p, a, b) <= tol.DistanceSq() {
			return true
		}
		if (b.Y > p.Y) != (a.Y > p.Y) {
			x := (a.X-b.X)*(p.Y-b.Y)/(a.Y-b.Y) + b.X
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// pointSegDistSq returns the squared distance from p to segment ab.
func pointSegDistSq(p, a, b r2.Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		d := p.Sub(a)
		return d.Dot(d)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	d := p.Sub(a.Add(ab.Mul(t)))
	return d.Dot(d)
}

// LineInPolygonXY clips a line segment to the portions lying inside a
// polygon, returning the inside pieces as new lines. A segment that
// starts exactly on a polygon edge is clipped from that boundary point.
func LineInPolygonXY(line *curve.Line, polygon []geometry.Vector, tol geometry.Tol) []*curve.Line {
	intervals := CurveDomainInPolygonXY(line, polygon, tol)
	out := make([]*curve.Line, 0, len(intervals))
	for _, iv := range intervals {
		out = append(out, curve.NewLine(
			curve.PointAtParameter(line, iv.Start),
			curve.PointAtParameter(line, iv.End),
		))
	}
	return out
}

// CurveInPolygonXY clips a curve to the portions lying inside a polygon,
// returning each inside portion as a polyline through the curve's facet
// points over that parameter range.
func CurveInPolygonXY(crv curve.Curve, polygon []geometry.Vector, tol geometry.Tol) []curve.Curve {
	intervals := CurveDomainInPolygonXY(crv, polygon, tol)
	out := make([]curve.Curve, 0, len(intervals))
	for _, iv := range intervals {
		pts := samplePortion(crv, iv, tol)
		if len(pts) == 2 {
			out = append(out, curve.NewLine(pts[0], pts[1]))
		} else if len(pts) > 2 {
			out = append(out, curve.NewPolyLine(pts...))
		}
	}
	return out
}

// CurveDomainInPolygonXY clips a curve to a polygon in the XY
// projection, returning the inside portions as parameter-domain
// intervals. The curve is cut where it crosses polygon edges; each
// resulting piece is classified by testing its midpoint for containment,
// so a curve starting exactly on a polygon edge resolves by where it
// heads next.
func CurveDomainInPolygonXY(crv curve.Curve, polygon []geometry.Vector, tol geometry.Tol) []Interval {
	spans := crv.SpanCount()
	if spans == 0 || len(polygon) < 3 {
		return nil
	}

	params := []float64{0, float64(spans)}
	for s := 0; s < spans; s++ {
		pieces := spanPieces(crv, s, tol)
		for i := 0; i+1 < len(pieces.params); i++ {
			pa := pieces.points[i]
			pb := pieces.points[i+1]
			seg := curve.NewLine(pa, pb)
			if seg.Direction().IsZero(tol) {
				continue
			}
			j := len(polygon) - 1
			for k := 0; k < len(polygon); k++ {
				edge := curve.NewLine(polygon[j], polygon[k])
				j = k
				if edge.Direction().IsZero(tol) {
					continue
				}
				u0, u1, ok := LineLineXY(seg.From, seg.Direction(), edge.From, edge.Direction())
				if !ok || u0 < 0 || u0 > 1 || u1 < 0 || u1 > 1 {
					continue
				}
				local := pieces.params[i] + u0*(pieces.params[i+1]-pieces.params[i])
				params = append(params, float64(s)+local)
			}
		}
	}

	sort.Float64s(params)
	eps := 1e-9 * float64(spans)

	var out []Interval
	open := false
	for i := 0; i+1 < len(params); i++ {
		iv := Interval{Start: params[i], End: params[i+1]}
		if iv.End-iv.Start <= eps {
			continue
		}
		mid := curve.PointAtParameter(crv, iv.Mid())
		if !PolygonContainmentXY(polygon, mid, tol) {
			open = false
			continue
		}
		if open && math.Abs(out[len(out)-1].End-iv.Start) <= eps {
			out[len(out)-1].End = iv.End
			continue
		}
		out = append(out, iv)
		open = true
	}
	return out
}

// spanSamples holds the straight-piece approximation of one curve span:
// sample points and their local [0,1] parameters.
type spanSamples struct {
	params []float64
	points []geometry.Vector
}

// spanPieces approximates a span by straight pieces. Straight spans keep
// their two endpoints; curved spans are subdivided by the facetting
// angle.
func spanPieces(crv curve.Curve, span int, tol geometry.Tol) spanSamples {
	a := crv.PointAt(span, 0)
	b := crv.PointAt(span, 1)
	mid := crv.PointAt(span, 0.5)
	chordMid := a.Add(b).Scale(0.5)
	if mid.EpsilonEquals(chordMid, tol) {
		return spanSamples{params: []float64{0, 1}, points: []geometry.Vector{a, b}}
	}

	steps := int(math.Ceil(2 * math.Pi / float64(tol.Angle)))
	if steps < 4 {
		steps = 4
	}
	s := spanSamples{
		params: make([]float64, 0, steps+1),
		points: make([]geometry.Vector, 0, steps+1),
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.params = append(s.params, t)
		s.points = append(s.points, crv.PointAt(span, t))
	}
	return s
}

// samplePortion samples the facet points of a curve over a parameter
// interval, always including both interval ends.
func samplePortion(crv curve.Curve, iv Interval, tol geometry.Tol) []geometry.Vector {
	pts := []geometry.Vector{curve.PointAtParameter(crv, iv.Start)}
	firstSpan := int(math.Floor(iv.Start))
	lastSpan := int(math.Ceil(iv.End)) - 1
	if lastSpan >= crv.SpanCount() {
		lastSpan = crv.SpanCount() - 1
	}
	for s := firstSpan; s <= lastSpan; s++ {
		pieces := spanPieces(crv, s, tol)
		for i, t := range pieces.params {
			global := float64(s) + t
			if global > iv.Start+1e-12 && global < iv.End-1e-12 &&
				!pieces.points[i].EpsilonEquals(pts[len(pts)-1], tol) {
				pts = append(pts, pieces.points[i])
			}
		}
	}
	end := curve.PointAtParameter(crv, iv.End)
	if !end.EpsilonEquals(pts[len(pts)-1], tol) {
		pts = append(pts, end)
	}
	return pts
}
