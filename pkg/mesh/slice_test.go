package mesh

import (
	"math"
	"testing"

	"github.com/modelkit/geom/pkg/geometry"
)

func TestIntersectPlaneCubeSegments(t *testing.T) {
	tol := geometry.DefaultTol()
	m := NewCuboid(geometry.NewVector(0, 0, 0), 10, 10, 10)

	segments := m.IntersectPlane(5, tol)
	// The 4 wall quads each cross the mid-height plane; top and
	// bottom do not.
	if len(segments) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(segments))
	}
	for _, s := range segments {
		if s[0].Z != 5 || s[1].Z != 5 {
			t.Errorf("segment endpoints must lie at z=5, got %v %v", s[0], s[1])
		}
		if math.Abs(s[0].DistanceTo(s[1])-10) > 1e-9 {
			t.Errorf("each wall section must span 10, got %v", s[0].DistanceTo(s[1]))
		}
	}
}

func TestIntersectPlaneCurvesCube(t *testing.T) {
	tol := geometry.DefaultTol()
	m := NewCuboid(geometry.NewVector(0, 0, 0), 10, 10, 10)

	curves := m.IntersectPlaneCurves(5, tol)
	if len(curves) != 1 {
		t.Fatalf("expected 1 cross-section curve, got %d", len(curves))
	}
	c := curves[0]
	if !c.Closed(tol) {
		t.Error("mid-height cross-section must be closed")
	}
	if math.Abs(c.Length()-40) > 1e-9 {
		t.Errorf("expected perimeter 40, got %v", c.Length())
	}
}

func TestIntersectPlaneMiss(t *testing.T) {
	tol := geometry.DefaultTol()
	m := NewCuboid(geometry.NewVector(0, 0, 0), 10, 10, 10)

	if segments := m.IntersectPlane(25, tol); len(segments) != 0 {
		t.Errorf("plane above the box must not intersect, got %d segments", len(segments))
	}
}

func TestIntersectPlaneCurvesTwoBoxes(t *testing.T) {
	tol := geometry.DefaultTol()
	m := NewCuboid(geometry.NewVector(0, 0, 0), 10, 10, 10)
	other := NewCuboid(geometry.NewVector(20, 0, 0), 5, 5, 10)
	base := len(m.Vertices)
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, f := range other.Faces {
		shifted := make(Face, len(f))
		for i, idx := range f {
			shifted[i] = idx + base
		}
		m.Faces = append(m.Faces, shifted)
	}

	curves := m.IntersectPlaneCurves(5, tol)
	if len(curves) != 2 {
		t.Fatalf("expected 2 separate cross-sections, got %d", len(curves))
	}
	lengths := []float64{curves[0].Length(), curves[1].Length()}
	if lengths[0] > lengths[1] {
		lengths[0], lengths[1] = lengths[1], lengths[0]
	}
	if math.Abs(lengths[0]-20) > 1e-9 || math.Abs(lengths[1]-40) > 1e-9 {
		t.Errorf("expected perimeters 20 and 40, got %v", lengths)
	}
}

func TestIntersectPlaneTriangleFace(t *testing.T) {
	tol := geometry.DefaultTol()
	m := NewMesh()
	m.AddVertex(geometry.NewVector(0, 0, 0))
	m.AddVertex(geometry.NewVector(10, 0, 0))
	m.AddVertex(geometry.NewVector(5, 0, 10))
	m.AddFace(0, 1, 2)

	segments := m.IntersectPlane(5, tol)
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if math.Abs(segments[0][0].DistanceTo(segments[0][1])-5) > 1e-9 {
		t.Errorf("section at half height must span half the base, got %v",
			segments[0][0].DistanceTo(segments[0][1]))
	}
}

func TestIntersectPlaneThroughVertex(t *testing.T) {
	tol := geometry.DefaultTol()
	m := NewMesh()
	m.AddVertex(geometry.NewVector(0, 0, -5))
	m.AddVertex(geometry.NewVector(10, 0, 0))
	m.AddVertex(geometry.NewVector(0, 0, 5))
	m.AddFace(0, 1, 2)

	segments := m.IntersectPlane(0, tol)
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment through the on-plane vertex, got %d", len(segments))
	}
	if math.Abs(segments[0][0].DistanceTo(segments[0][1])-10) > 1e-9 {
		t.Errorf("expected section length 10, got %v", segments[0][0].DistanceTo(segments[0][1]))
	}
}
