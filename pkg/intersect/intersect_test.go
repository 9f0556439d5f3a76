package intersect

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/modelkit/geom/pkg/curve"
	"github.com/modelkit/geom/pkg/geometry"
)

func TestLineLineXYPointCrossing(t *testing.T) {
	tol := geometry.DefaultTol()
	a := curve.NewLine2D(0, 0, 10, 10)
	b := curve.NewLine2D(0, 10, 10, 0)

	p, ok := LineLineXYPoint(a, b, true, tol)
	if !ok {
		t.Fatal("crossing segments must intersect")
	}
	if !p.EpsilonEquals(geometry.NewVector(5, 5, 0), tol) {
		t.Errorf("expected (5,5), got %v", p)
	}
}

func TestLineLineXYPointParallel(t *testing.T) {
	tol := geometry.DefaultTol()
	a := curve.NewLine2D(0, 0, 10, 0)
	b := curve.NewLine2D(0, 1, 10, 1)

	if p, ok := LineLineXYPoint(a, b, false, tol); ok || p.IsValid() {
		t.Error("parallel lines must not intersect")
	}
}

func TestLineLineXYPointCollinearOverlap(t *testing.T) {
	// Identical collinear segments share every point, but the solver
	// reports no single intersection point. This is intended behavior
	// that downstream callers rely on.
	tol := geometry.DefaultTol()
	a := curve.NewLine2D(0, 0, 1, 0)
	b := curve.NewLine2D(0, 0, 1, 0)

	if p, ok := LineLineXYPoint(a, b, true, tol); ok || p.IsValid() {
		t.Error("collinear overlapping segments must not report a point intersection")
	}
}

func TestLineLineXYPointSegmentBounds(t *testing.T) {
	tol := geometry.DefaultTol()
	a := curve.NewLine2D(0, 0, 1, 0)
	b := curve.NewLine2D(5, -1, 5, 1)

	// The infinite lines meet at (5,0), outside segment a
	if _, ok := LineLineXYPoint(a, b, true, tol); ok {
		t.Error("segmentsOnly must reject intersections beyond the segment ends")
	}
	p, ok := LineLineXYPoint(a, b, false, tol)
	if !ok {
		t.Fatal("unbounded solve must find the intersection")
	}
	if !p.EpsilonEquals(geometry.NewVector(5, 0, 0), tol) {
		t.Errorf("expected (5,0), got %v", p)
	}
}

func TestLineCircleXYTwoPoints(t *testing.T) {
	tol := geometry.DefaultTol()
	pts := LineCircleXY(
		geometry.NewVector(0, 0, 0), geometry.NewVector(10, 0, 0),
		geometry.NewVector(5, 0, 0), 1, tol,
	)
	if len(pts) != 2 {
		t.Fatalf("expected 2 intersection points, got %d", len(pts))
	}
	if !pts[0].EpsilonEquals(geometry.NewVector(4, 0, 0), tol) {
		t.Errorf("expected first point (4,0), got %v", pts[0])
	}
	if !pts[1].EpsilonEquals(geometry.NewVector(6, 0, 0), tol) {
		t.Errorf("expected second point (6,0), got %v", pts[1])
	}
}

func TestLineCircleXYTangent(t *testing.T) {
	tol := geometry.DefaultTol()
	pts := LineCircleXY(
		geometry.NewVector(0, 1, 0), geometry.NewVector(10, 1, 0),
		geometry.NewVector(5, 0, 0), 1, tol,
	)
	if len(pts) != 1 {
		t.Fatalf("expected 1 tangent point, got %d", len(pts))
	}
	if !pts[0].EpsilonEquals(geometry.NewVector(5, 1, 0), tol) {
		t.Errorf("expected tangent point (5,1), got %v", pts[0])
	}
}

func TestLineCircleXYMiss(t *testing.T) {
	tol := geometry.DefaultTol()
	pts := LineCircleXY(
		geometry.NewVector(0, 5, 0), geometry.NewVector(10, 5, 0),
		geometry.NewVector(5, 0, 0), 1, tol,
	)
	if len(pts) != 0 {
		t.Errorf("expected no intersection, got %d points", len(pts))
	}
}

func TestCircleCircleXYTwoPoints(t *testing.T) {
	tol := geometry.DefaultTol()
	pts := CircleCircleXY(geometry.NewVector(-1, 0, 0), 3, geometry.NewVector(1, 0, 0), 3, tol)
	if len(pts) != 2 {
		t.Fatalf("expected 2 intersection points, got %d", len(pts))
	}
	for _, p := range pts {
		if math.Abs(p.DistanceTo(geometry.NewVector(-1, 0, 0))-3) > 1e-9 {
			t.Errorf("point %v not on first circle", p)
		}
		if math.Abs(p.DistanceTo(geometry.NewVector(1, 0, 0))-3) > 1e-9 {
			t.Errorf("point %v not on second circle", p)
		}
	}
}

func TestCircleCircleXYConcentric(t *testing.T) {
	tol := geometry.DefaultTol()
	pts := CircleCircleXY(geometry.NewVector(0, 0, 0), 3, geometry.NewVector(0, 0, 0), 4, tol)
	if len(pts) != 0 {
		t.Errorf("concentric circles must not intersect, got %d points", len(pts))
	}
}

func TestCircleCircleXYTangent(t *testing.T) {
	tol := geometry.DefaultTol()
	pts := CircleCircleXY(geometry.NewVector(0, 0, 0), 1, geometry.NewVector(2, 0, 0), 1, tol)
	if len(pts) != 1 {
		t.Fatalf("externally tangent circles must meet at 1 point, got %d", len(pts))
	}
	if !pts[0].EpsilonEquals(geometry.NewVector(1, 0, 0), tol) {
		t.Errorf("expected tangent point (1,0), got %v", pts[0])
	}
}

func TestCircleCircleXYSeparate(t *testing.T) {
	tol := geometry.DefaultTol()
	pts := CircleCircleXY(geometry.NewVector(0, 0, 0), 1, geometry.NewVector(10, 0, 0), 1, tol)
	if len(pts) != 0 {
		t.Errorf("distant circles must not intersect, got %d points", len(pts))
	}
}

func TestOffsetExtensionDistance(t *testing.T) {
	cases := []struct {
		angle            geometry.Angle
		offsetA, offsetB float64
		want             float64
	}{
		{geometry.FromDegrees(30), 1, 0.5, 0.732},
		{geometry.FromDegrees(-30), 1, 0.5, -0.732},
		{geometry.FromDegrees(30), 1, -0.5, 2.732},
		{geometry.FromDegrees(-90), 1, 0.5, 0.5},
	}
	for _, c := range cases {
		got := OffsetExtensionDistance(c.angle, c.offsetA, c.offsetB)
		if !scalar.EqualWithinAbs(got, c.want, 0.001) {
			t.Errorf("OffsetExtensionDistance(%v deg, %v, %v) = %v, expected %v",
				c.angle.Degrees(), c.offsetA, c.offsetB, got, c.want)
		}
	}
}

func TestOffsetExtensionDistanceParallel(t *testing.T) {
	if got := OffsetExtensionDistance(0, 1, 0.5); got != 0 {
		t.Errorf("zero included angle must need no extension, got %v", got)
	}
}
