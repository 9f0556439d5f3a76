package curve

import (
	"math"
	"testing"

	"github.com/modelkit/geom/pkg/geometry"
)

func TestLineBasics(t *testing.T) {
	l := NewLine(geometry.NewVector(0, 0, 0), geometry.NewVector(3, 4, 0))

	if !l.IsValid() {
		t.Fatal("line with valid endpoints must be valid")
	}
	if l.SpanCount() != 1 {
		t.Errorf("line span count: expected 1, got %d", l.SpanCount())
	}
	if math.Abs(l.Length()-5) > 1e-10 {
		t.Errorf("line length: expected 5, got %v", l.Length())
	}
	if mid := l.PointAt(0, 0.5); !mid.EpsilonEquals(geometry.NewVector(1.5, 2, 0), geometry.DefaultTol()) {
		t.Errorf("midpoint evaluation failed: %v", mid)
	}
	if p := l.PointAt(1, 0.5); p.IsValid() {
		t.Error("evaluating an out-of-range span must return an unset point")
	}
}

func TestLineInvalid(t *testing.T) {
	l := NewLine(geometry.Unset(), geometry.NewVector(1, 0, 0))
	if l.IsValid() {
		t.Error("line with an unset vertex must be invalid")
	}
}

func TestPolyLineEvaluation(t *testing.T) {
	tol := geometry.DefaultTol()
	p := NewPolyLine(
		geometry.NewVector(0, 0, 0),
		geometry.NewVector(10, 0, 0),
		geometry.NewVector(10, 10, 0),
	)

	if p.SpanCount() != 2 {
		t.Fatalf("expected 2 spans, got %d", p.SpanCount())
	}
	if math.Abs(p.Length()-20) > 1e-10 {
		t.Errorf("expected length 20, got %v", p.Length())
	}
	if pt := p.PointAt(1, 0.5); !pt.EpsilonEquals(geometry.NewVector(10, 5, 0), tol) {
		t.Errorf("span 1 midpoint failed: %v", pt)
	}
	if p.Closed(tol) {
		t.Error("open polyline reported closed")
	}
}

func TestPolyLineClosed(t *testing.T) {
	p := NewPolyLine(
		geometry.NewVector(0, 0, 0),
		geometry.NewVector(10, 0, 0),
		geometry.NewVector(5, 5, 0),
		geometry.NewVector(0, 0, 0),
	)
	if !p.Closed(geometry.DefaultTol()) {
		t.Error("looping polyline must report closed")
	}
}

func TestCircleLengthAndClosure(t *testing.T) {
	tol := geometry.DefaultTol()
	c := NewCircle(geometry.NewVector(2, 3, 1), 4)

	if !c.IsValid() {
		t.Fatal("circle must be valid")
	}
	if math.Abs(c.Length()-8*math.Pi) > 1e-10 {
		t.Errorf("circumference: expected 8pi, got %v", c.Length())
	}
	if !c.Closed(tol) {
		t.Error("circle must always be closed")
	}
	if !c.Start().EpsilonEquals(geometry.NewVector(6, 3, 1), tol) {
		t.Errorf("circle start point: %v", c.Start())
	}
}

func TestCircleFacetRespectsAngleTolerance(t *testing.T) {
	tol := geometry.DefaultTol() // 10 degree facetting
	c := NewCircle(geometry.NewVector(0, 0, 0), 1)

	facet := c.Facet(tol)
	if len(facet) != 37 { // 360/10 steps plus the closing vertex
		t.Errorf("expected 37 facet points, got %d", len(facet))
	}
	if !facet[0].EpsilonEquals(facet[len(facet)-1], tol) {
		t.Error("circle facet must close on itself")
	}
	for _, p := range facet {
		if math.Abs(p.Sub(c.Center).Magnitude()-1) > 1e-10 {
			t.Errorf("facet point off the circle: %v", p)
		}
	}
}

func TestArcQuarter(t *testing.T) {
	tol := geometry.DefaultTol()
	a := NewArc(geometry.NewVector(0, 0, 0), 2, 0, geometry.Angle(math.Pi/2))

	if math.Abs(a.Length()-math.Pi) > 1e-10 {
		t.Errorf("quarter arc length: expected pi, got %v", a.Length())
	}
	if !a.Start().EpsilonEquals(geometry.NewVector(2, 0, 0), tol) {
		t.Errorf("arc start: %v", a.Start())
	}
	if !a.End().EpsilonEquals(geometry.NewVector(0, 2, 0), tol) {
		t.Errorf("arc end: %v", a.End())
	}
	if a.Closed(tol) {
		t.Error("quarter arc must not be closed")
	}
}

func TestArcInvalid(t *testing.T) {
	if NewArc(geometry.NewVector(0, 0, 0), 0, 0, 1).IsValid() {
		t.Error("zero radius arc must be invalid")
	}
	if NewArc(geometry.NewVector(0, 0, 0), 1, geometry.Undefined(), 1).IsValid() {
		t.Error("undefined start angle must make the arc invalid")
	}
}

func TestPolyCurveSpanWalking(t *testing.T) {
	tol := geometry.DefaultTol()
	pc := NewPolyCurve(
		NewPolyLine(geometry.NewVector(0, 0, 0), geometry.NewVector(10, 0, 0), geometry.NewVector(10, 10, 0)),
		NewLine(geometry.NewVector(10, 10, 0), geometry.NewVector(0, 10, 0)),
		NewLine(geometry.NewVector(0, 10, 0), geometry.NewVector(0, 0, 0)),
	)

	if !pc.IsValid() {
		t.Fatal("composite of valid curves must be valid")
	}
	if pc.SpanCount() != 4 {
		t.Fatalf("expected 4 spans, got %d", pc.SpanCount())
	}
	// Span 2 lands in the second sub-curve
	if pt := pc.PointAt(2, 0.5); !pt.EpsilonEquals(geometry.NewVector(5, 10, 0), tol) {
		t.Errorf("span 2 midpoint failed: %v", pt)
	}
	// Span 3 lands in the third sub-curve
	if pt := pc.PointAt(3, 0); !pt.EpsilonEquals(geometry.NewVector(0, 10, 0), tol) {
		t.Errorf("span 3 start failed: %v", pt)
	}
	if pt := pc.PointAt(4, 0); pt.IsValid() {
		t.Error("span beyond the composite must return an unset point")
	}
	if math.Abs(pc.Length()-40) > 1e-10 {
		t.Errorf("perimeter length: expected 40, got %v", pc.Length())
	}
	if !pc.Closed(tol) {
		t.Error("square loop must report closed")
	}
}

func TestPolyCurveInvalidWhenEmpty(t *testing.T) {
	pc := NewPolyCurve()
	if pc.IsValid() {
		t.Error("polycurve with zero sub-curves must be invalid")
	}
	if pt := pc.PointAt(0, 0); pt.IsValid() {
		t.Error("evaluating an empty polycurve must return an unset point")
	}
}

func TestPointAtParameter(t *testing.T) {
	tol := geometry.DefaultTol()
	p := NewPolyLine(
		geometry.NewVector(0, 0, 0),
		geometry.NewVector(10, 0, 0),
		geometry.NewVector(10, 10, 0),
	)

	if pt := PointAtParameter(p, 1.5); !pt.EpsilonEquals(geometry.NewVector(10, 5, 0), tol) {
		t.Errorf("global parameter 1.5 failed: %v", pt)
	}
	// The end of the domain evaluates to the curve end
	if pt := PointAtParameter(p, 2); !pt.EpsilonEquals(geometry.NewVector(10, 10, 0), tol) {
		t.Errorf("global parameter at domain end failed: %v", pt)
	}
}
