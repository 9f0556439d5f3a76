package curve

import (
	"math"

	"github.com/modelkit/geom/pkg/geometry"
)

// enclosure accumulates the signed trapezoid area and first-moment terms
// of a polygon loop in plane coordinates. Summing enclosures composes
// area-weighted centroids exactly, which is how voids and sub-curves are
// combined.
type enclosure struct {
	area float64
	mx   float64
	my   float64
}

// addEdge accumulates one polygon edge's trapezoid contribution.
func (e *enclosure) addEdge(x1, y1, x2, y2 float64) {
	cross := x1*y2 - x2*y1
	e.area += cross / 2
	e.mx += (x1 + x2) * cross / 6
	e.my += (y1 + y2) * cross / 6
}

// add merges another enclosure into this one.
func (e *enclosure) add(o enclosure) {
	e.area += o.area
	e.mx += o.mx
	e.my += o.my
}

// negate flips the sign of the enclosure.
func (e *enclosure) negate() {
	e.area, e.mx, e.my = -e.area, -e.mx, -e.my
}

// EnclosedArea computes the signed area enclosed by a closed curve
// projected onto a plane (nil means the global XY plane), together with
// the area centroid. Void curves are subtracted; their centroid
// contributions combine area-weighted with the perimeter's. ok is false
// when the net area is ~0 and the centroid is therefore undefined.
//
// Counter-clockwise perimeters yield positive area. The curve is assumed
// closed; an open curve is treated as if closed by a final edge from its
// end back to its start.
func EnclosedArea(c Curve, voids []Curve, pl *geometry.Plane, tol geometry.Tol) (area float64, centroid geometry.Vector, ok bool) {
	if c == nil || !c.IsValid() {
		return 0, geometry.Unset(), false
	}

	total := loopEnclosure(c, pl, tol)
	for _, v := range voids {
		if v == nil || !v.IsValid() {
			continue
		}
		ve := loopEnclosure(v, pl, tol)
		// Subtract regardless of the void's winding direction.
		if math.Signbit(ve.area) == math.Signbit(total.area) {
			ve.negate()
		}
		total.add(ve)
	}

	if math.Abs(total.area) <= tol.DistanceSq() {
		return 0, geometry.Unset(), false
	}

	cx := total.mx / total.area
	cy := total.my / total.area
	if pl != nil {
		return total.area, pl.LocalToGlobal(cx, cy, 0), true
	}
	// XY projection: carry the curve's elevation through to the centroid.
	z := 0.0
	if facet := c.Facet(tol); len(facet) > 0 {
		z = facet[0].Z
	}
	return total.area, geometry.NewVector(cx, cy, z), true
}

// loopEnclosure accumulates the facetted loop of a curve, including the
// implicit closing edge from last back to first vertex.
func loopEnclosure(c Curve, pl *geometry.Plane, tol geometry.Tol) enclosure {
	var e enclosure
	facet := c.Facet(tol)
	if len(facet) < 2 {
		return e
	}
	x1, y1 := planeCoords(facet[0], pl)
	fx, fy := x1, y1
	for _, p := range facet[1:] {
		x2, y2 := planeCoords(p, pl)
		e.addEdge(x1, y1, x2, y2)
		x1, y1 = x2, y2
	}
	e.addEdge(x1, y1, fx, fy)
	return e
}

// planeCoords projects a point into the 2D coordinates of the given
// plane, or the global XY plane when pl is nil.
func planeCoords(p geometry.Vector, pl *geometry.Plane) (x, y float64) {
	if pl == nil {
		return p.X, p.Y
	}
	local := pl.GlobalToLocal(p)
	return local.X, local.Y
}
