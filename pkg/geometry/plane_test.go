package geometry

import (
	"math"
	"testing"
)

func TestPlaneFrameOrthonormal(t *testing.T) {
	tol := DefaultTol()
	pl := NewPlane(NewVector(1, 2, 3), NewVector(1, 1, 1), tol)

	for name, v := range map[string]Vector{"X": pl.X, "Y": pl.Y, "Z": pl.Z} {
		if math.Abs(v.Magnitude()-1) > 1e-10 {
			t.Errorf("%s axis not unit length: %v", name, v.Magnitude())
		}
	}
	if math.Abs(pl.X.Dot(pl.Y)) > 1e-10 || math.Abs(pl.Y.Dot(pl.Z)) > 1e-10 || math.Abs(pl.Z.Dot(pl.X)) > 1e-10 {
		t.Error("frame axes not mutually perpendicular")
	}
}

func TestPlaneLocalGlobalRoundTrip(t *testing.T) {
	tol := DefaultTol()
	pl := NewPlane(NewVector(5, -2, 1), NewVector(0, 1, 2), tol)

	p := NewVector(3, 4, 5)
	local := pl.GlobalToLocal(p)
	back := pl.LocalToGlobal(local.X, local.Y, local.Z)
	if !back.EpsilonEquals(p, tol) {
		t.Errorf("round trip failed: %v -> %v", p, back)
	}
}

func TestPlaneProject(t *testing.T) {
	tol := DefaultTol()
	pl := XYPlane(2)

	p := pl.Project(NewVector(3, 4, 9))
	if !p.EpsilonEquals(NewVector(3, 4, 2), tol) {
		t.Errorf("projection onto z=2 plane failed: %v", p)
	}
}

func TestPlaneThrough3Points(t *testing.T) {
	tol := DefaultTol()

	pl, ok := PlaneThrough3Points(NewVector(0, 0, 1), NewVector(1, 0, 1), NewVector(0, 1, 1), tol)
	if !ok {
		t.Fatal("non-collinear points must define a plane")
	}
	if !pl.Z.EpsilonEquals(NewVector(0, 0, 1), tol) {
		t.Errorf("expected normal (0,0,1), got %v", pl.Z)
	}

	if _, ok := PlaneThrough3Points(NewVector(0, 0, 0), NewVector(1, 1, 1), NewVector(2, 2, 2), tol); ok {
		t.Error("collinear points must not define a plane")
	}
}
