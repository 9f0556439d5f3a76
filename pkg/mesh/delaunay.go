package mesh

import (
	"math"

	"github.com/modelkit/geom/pkg/geometry"
)

// DelaunayTriangulationXY triangulates the given points projected onto
// the XY plane. Z coordinates are carried through to the output mesh
// unchanged. The triangulation is built incrementally: a synthetic
// super-triangle enclosing the bounding box seeds the mesh, each point
// is inserted by removing the faces whose circumcircle contains it and
// fanning new triangles to the boundary of the removed region, and the
// super-triangle's corners are stripped at the end.
func DelaunayTriangulationXY(points []geometry.Vector, tol geometry.Tol) *Mesh {
	m := NewMesh()
	if len(points) < 3 {
		return m
	}
	m.Vertices = append(m.Vertices, points...)

	// Super-triangle large enough to contain every input point.
	bb := geometry.BoundingBoxOf(points)
	size := bb.Size()
	d := math.Max(size.X, size.Y)
	if d == 0 {
		d = 1
	}
	mid := bb.Center()
	s0 := m.AddVertex(geometry.NewVector(mid.X-2*d, mid.Y-d, 0))
	s1 := m.AddVertex(geometry.NewVector(mid.X, mid.Y+2*d, 0))
	s2 := m.AddVertex(geometry.NewVector(mid.X+2*d, mid.Y-d, 0))
	m.AddFace(s0, s1, s2)

	for i := range points {
		insertVertex(m, i)
	}

	// Strip the super-triangle and every face still touching it.
	kept := m.Faces[:0]
	for _, f := range m.Faces {
		if f.Contains(s0) || f.Contains(s1) || f.Contains(s2) {
			continue
		}
		kept = append(kept, f)
	}
	m.Faces = kept
	m.Vertices = m.Vertices[:len(points)]
	return m
}

// insertVertex performs one Bowyer-Watson insertion step for the
// vertex at the given index.
func insertVertex(m *Mesh, index int) {
	p := m.Vertices[index]

	var boundary []Edge
	kept := m.Faces[:0]
	for _, f := range m.Faces {
		if circumcircleContainsXY(m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]], p) {
			boundary = append(boundary, f.Edges()...)
			continue
		}
		kept = append(kept, f)
	}
	m.Faces = kept

	// Edges shared by two removed faces are interior to the cavity;
	// drop both copies. The surviving edges form the cavity boundary.
	dup := make([]bool, len(boundary))
	for i := 0; i < len(boundary); i++ {
		for j := i + 1; j < len(boundary); j++ {
			if boundary[i].Equals(boundary[j]) {
				dup[i] = true
				dup[j] = true
			}
		}
	}
	for i, e := range boundary {
		if !dup[i] {
			m.AddFace(e.A, e.B, index)
		}
	}
}

// circumcircleXY returns the XY circumcircle of triangle abc as its
// center and squared radius. ok is false for degenerate triangles.
func circumcircleXY(a, b, c geometry.Vector) (cx, cy, r2 float64, ok bool) {
	ax, ay := a.X, a.Y
	bx, by := b.X-ax, b.Y-ay
	ex, ey := c.X-ax, c.Y-ay

	d := 2 * (bx*ey - by*ex)
	if d == 0 {
		return 0, 0, 0, false
	}
	b2 := bx*bx + by*by
	e2 := ex*ex + ey*ey
	ux := (ey*b2 - by*e2) / d
	uy := (bx*e2 - ex*b2) / d
	return ax + ux, ay + uy, ux*ux + uy*uy, true
}

// circumcircleContainsXY reports whether p lies strictly inside the
// circumcircle of triangle abc, all projected onto the XY plane. A
// degenerate triangle has no circumcircle and contains nothing.
func circumcircleContainsXY(a, b, c, p geometry.Vector) bool {
	cx, cy, r2, ok := circumcircleXY(a, b, c)
	if !ok {
		return false
	}
	dx := p.X - cx
	dy := p.Y - cy
	return dx*dx+dy*dy < r2
}
