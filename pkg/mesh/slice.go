package mesh

import (
	"github.com/modelkit/geom/pkg/curve"
	"github.com/modelkit/geom/pkg/geometry"
)

// IntersectPlane slices every face with the horizontal plane at the
// given elevation and returns the resulting segments, one per crossed
// face. Faces lying entirely in the plane contribute nothing.
func (m *Mesh) IntersectPlane(z float64, tol geometry.Tol) [][2]geometry.Vector {
	var segments [][2]geometry.Vector
	for _, f := range m.Faces {
		pts := facePlanePoints(m.FaceVertices(f), z, tol)
		if len(pts) == 2 {
			segments = append(segments, [2]geometry.Vector{pts[0], pts[1]})
		}
	}
	return segments
}

// facePlanePoints returns the distinct points where the face boundary
// crosses the plane z.
func facePlanePoints(verts []geometry.Vector, z float64, tol geometry.Tol) []geometry.Vector {
	var pts []geometry.Vector
	push := func(p geometry.Vector) {
		for _, q := range pts {
			if q.EpsilonEquals(p, tol) {
				return
			}
		}
		pts = append(pts, p)
	}
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		da, db := a.Z-z, b.Z-z
		switch {
		case da == 0 && db == 0:
			// Edge lies in the plane; its vertices surface via the
			// adjacent edges.
		case da == 0:
			push(a)
		case db == 0:
			push(b)
		case (da < 0) != (db < 0):
			t := da / (da - db)
			push(a.Add(b.Sub(a).Scale(t)))
		}
	}
	return pts
}

// IntersectPlaneCurves slices the mesh at the given elevation and
// chains the resulting segments end to end into polylines. Closed
// cross-sections come back as closed polylines (first point repeated
// last).
func (m *Mesh) IntersectPlaneCurves(z float64, tol geometry.Tol) []*curve.PolyLine {
	segments := m.IntersectPlane(z, tol)
	used := make([]bool, len(segments))
	var out []*curve.PolyLine

	for start := range segments {
		if used[start] {
			continue
		}
		used[start] = true
		chain := []geometry.Vector{segments[start][0], segments[start][1]}

		// Extend forward from the tail, then backward from the head.
		for grew := true; grew; {
			grew = false
			for i, seg := range segments {
				if used[i] {
					continue
				}
				tail := chain[len(chain)-1]
				head := chain[0]
				switch {
				case seg[0].EpsilonEquals(tail, tol):
					chain = append(chain, seg[1])
				case seg[1].EpsilonEquals(tail, tol):
					chain = append(chain, seg[0])
				case seg[0].EpsilonEquals(head, tol):
					chain = append([]geometry.Vector{seg[1]}, chain...)
				case seg[1].EpsilonEquals(head, tol):
					chain = append([]geometry.Vector{seg[0]}, chain...)
				default:
					continue
				}
				used[i] = true
				grew = true
			}
		}
		out = append(out, curve.NewPolyLine(chain...))
	}
	return out
}
