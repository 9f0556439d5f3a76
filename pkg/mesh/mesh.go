// Package mesh provides an indexed face mesh with triangular and
// quadrilateral faces, XY Delaunay triangulation and horizontal
// plane slicing.
package mesh

import (
	"github.com/modelkit/geom/pkg/geometry"
)

// Face is an ordered loop of vertex indices. Faces hold either three
// or four vertices.
type Face []int

// IsTri reports whether the face is a triangle.
func (f Face) IsTri() bool { return len(f) == 3 }

// IsQuad reports whether the face is a quadrilateral.
func (f Face) IsQuad() bool { return len(f) == 4 }

// IsValid reports whether the face has a supported vertex count.
func (f Face) IsValid() bool { return len(f) == 3 || len(f) == 4 }

// Edges returns the boundary edges of the face in winding order.
func (f Face) Edges() []Edge {
	edges := make([]Edge, 0, len(f))
	for i := range f {
		edges = append(edges, Edge{A: f[i], B: f[(i+1)%len(f)]})
	}
	return edges
}

// Contains reports whether the face references the given vertex index.
func (f Face) Contains(index int) bool {
	for _, v := range f {
		if v == index {
			return true
		}
	}
	return false
}

// Edge joins two vertex indices. Orientation is not significant for
// equality.
type Edge struct {
	A, B int
}

// Key returns the edge with its indices in canonical ascending order,
// usable as a map key for orientation-independent lookup.
func (e Edge) Key() Edge {
	if e.A > e.B {
		return Edge{A: e.B, B: e.A}
	}
	return e
}

// Equals reports whether two edges join the same vertices in either
// orientation.
func (e Edge) Equals(o Edge) bool {
	return (e.A == o.A && e.B == o.B) || (e.A == o.B && e.B == o.A)
}

// Mesh is an indexed face set. Vertices and faces are plain exported
// slices so callers can build meshes directly.
type Mesh struct {
	Vertices []geometry.Vector
	Faces    []Face
}

// NewMesh returns an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(v geometry.Vector) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddFace appends a face over existing vertex indices.
func (m *Mesh) AddFace(indices ...int) {
	m.Faces = append(m.Faces, Face(indices))
}

// BoundingBox returns the axis-aligned bounds of all vertices.
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	return geometry.BoundingBoxOf(m.Vertices)
}

// UniqueEdges returns every edge referenced by the faces exactly once,
// independent of orientation.
func (m *Mesh) UniqueEdges() []Edge {
	seen := make(map[Edge]bool)
	var edges []Edge
	for _, f := range m.Faces {
		for _, e := range f.Edges() {
			k := e.Key()
			if !seen[k] {
				seen[k] = true
				edges = append(edges, k)
			}
		}
	}
	return edges
}

// FaceVertices resolves a face to its vertex positions.
func (m *Mesh) FaceVertices(f Face) []geometry.Vector {
	pts := make([]geometry.Vector, len(f))
	for i, idx := range f {
		pts[i] = m.Vertices[idx]
	}
	return pts
}

// FaceArea returns the area of a face. Quads are split along the
// 0-2 diagonal.
func (m *Mesh) FaceArea(f Face) float64 {
	pts := m.FaceVertices(f)
	if len(pts) < 3 {
		return 0
	}
	area := triangleArea(pts[0], pts[1], pts[2])
	if len(pts) == 4 {
		area += triangleArea(pts[0], pts[2], pts[3])
	}
	return area
}

// Area returns the total area of all faces.
func (m *Mesh) Area() float64 {
	total := 0.0
	for _, f := range m.Faces {
		total += m.FaceArea(f)
	}
	return total
}

func triangleArea(a, b, c geometry.Vector) float64 {
	return b.Sub(a).Cross(c.Sub(a)).Magnitude() / 2
}

// NewCuboid builds an axis-aligned box mesh with quad faces. The
// origin is the minimum corner.
func NewCuboid(origin geometry.Vector, dx, dy, dz float64) *Mesh {
	m := NewMesh()
	for _, c := range [][3]float64{
		{0, 0, 0}, {dx, 0, 0}, {dx, dy, 0}, {0, dy, 0},
		{0, 0, dz}, {dx, 0, dz}, {dx, dy, dz}, {0, dy, dz},
	} {
		m.AddVertex(origin.Add(geometry.NewVector(c[0], c[1], c[2])))
	}
	m.AddFace(0, 3, 2, 1) // bottom
	m.AddFace(4, 5, 6, 7) // top
	m.AddFace(0, 1, 5, 4)
	m.AddFace(1, 2, 6, 5)
	m.AddFace(2, 3, 7, 6)
	m.AddFace(3, 0, 4, 7)
	return m
}
