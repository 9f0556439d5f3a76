// Package surface provides planar region surfaces bounded by curves.
package surface

import (
	"github.com/modelkit/geom/pkg/curve"
	"github.com/modelkit/geom/pkg/geometry"
)

// Surface is a bounded 2D entity embedded in 3D space.
type Surface interface {
	// IsValid reports whether the surface definition is usable.
	IsValid() bool
	// Vertices returns the defining vertices of the surface.
	Vertices() []geometry.Vector
	// Area returns the enclosed area and its centroid. ok is false when
	// the area is degenerate and the centroid undefined.
	Area(tol geometry.Tol) (area float64, centroid geometry.Vector, ok bool)
}

// PlanarRegion is a surface bounded by a closed perimeter curve with
// zero or more void curves cut out of it. The region's plane is derived
// from the perimeter on first use and cached until the boundary is
// mutated.
type PlanarRegion struct {
	perimeter curve.Curve
	voids     []curve.Curve

	plane    geometry.Plane
	planeSet bool
	planeOK  bool
}

// NewPlanarRegion creates a region bounded by perimeter.
func NewPlanarRegion(perimeter curve.Curve, voids ...curve.Curve) *PlanarRegion {
	return &PlanarRegion{perimeter: perimeter, voids: voids}
}

// Perimeter returns the outer boundary curve.
func (r *PlanarRegion) Perimeter() curve.Curve {
	return r.perimeter
}

// Voids returns the void curves.
func (r *PlanarRegion) Voids() []curve.Curve {
	return r.voids
}

// SetPerimeter replaces the outer boundary and invalidates the cached
// plane.
func (r *PlanarRegion) SetPerimeter(c curve.Curve) {
	r.perimeter = c
	r.planeSet = false
}

// AddVoid cuts another void out of the region and invalidates the
// cached plane.
func (r *PlanarRegion) AddVoid(c curve.Curve) {
	r.voids = append(r.voids, c)
	r.planeSet = false
}

// IsValid reports whether the perimeter and all voids are valid curves.
func (r *PlanarRegion) IsValid() bool {
	if r.perimeter == nil || !r.perimeter.IsValid() {
		return false
	}
	for _, v := range r.voids {
		if v == nil || !v.IsValid() {
			return false
		}
	}
	return true
}

// Vertices returns the perimeter vertices.
func (r *PlanarRegion) Vertices() []geometry.Vector {
	if r.perimeter == nil {
		return nil
	}
	return r.perimeter.Vertices()
}

// Plane returns the plane the region lies on, derived from the first
// three non-collinear facet points of the perimeter. ok is false when
// the perimeter is degenerate.
func (r *PlanarRegion) Plane(tol geometry.Tol) (geometry.Plane, bool) {
	if r.planeSet {
		return r.plane, r.planeOK
	}
	r.planeSet = true
	r.planeOK = false
	if r.perimeter == nil {
		return geometry.Plane{}, false
	}
	facet := r.perimeter.Facet(tol)
	for i := 2; i < len(facet); i++ {
		if pl, ok := geometry.PlaneThrough3Points(facet[0], facet[1], facet[i], tol); ok {
			r.plane = pl
			r.planeOK = true
			break
		}
	}
	return r.plane, r.planeOK
}

// Area returns the net enclosed area (perimeter minus voids) measured on
// the region's plane, with its centroid.
func (r *PlanarRegion) Area(tol geometry.Tol) (float64, geometry.Vector, bool) {
	if !r.IsValid() {
		return 0, geometry.Unset(), false
	}
	pl, ok := r.Plane(tol)
	if !ok {
		return 0, geometry.Unset(), false
	}
	return curve.EnclosedArea(r.perimeter, r.voids, &pl, tol)
}
