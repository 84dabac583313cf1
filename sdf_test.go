package sdf_test

import (
	"math"
	"testing"

	sdf "github.com/soypat/sdfparts"
	"github.com/soypat/sdfparts/form2/must2"
	"github.com/soypat/sdfparts/form3/must3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-9

func TestTransform2DInverse(t *testing.T) {
	m := sdf.Translate2D(r2.Vec{X: 3, Y: -2}).Mul(sdf.Rotate2D(sdf.DtoR(30))).Mul(sdf.Scale2D(r2.Vec{X: 2, Y: 0.5}))
	inv := m.Inverse()
	for _, p := range []r2.Vec{{}, {X: 1}, {X: -4, Y: 7}} {
		got := inv.MulPosition(m.MulPosition(p))
		if r2.Norm(r2.Sub(got, p)) > tol {
			t.Errorf("inverse of %v: got %v", p, got)
		}
	}
}

func TestTransform3DInverse(t *testing.T) {
	m := sdf.Translate3D(r3.Vec{X: 1, Y: 2, Z: 3}).Mul(sdf.RotateX(0.3)).Mul(sdf.RotateY(-1.1)).Mul(sdf.RotateZ(2))
	inv := m.Inverse()
	for _, p := range []r3.Vec{{}, {X: 1}, {X: -4, Y: 7, Z: 0.5}} {
		got := inv.MulPosition(m.MulPosition(p))
		if r3.Norm(r3.Sub(got, p)) > tol {
			t.Errorf("inverse of %v: got %v", p, got)
		}
	}
}

func TestBooleans2D(t *testing.T) {
	a := must2.Box(r2.Vec{X: 4, Y: 4}, 0)
	b := must2.Circle(1)
	p := r2.Vec{X: 1.5}
	if got := sdf.Union2D(a, b).Evaluate(p); math.Abs(got+0.5) > tol {
		t.Errorf("union: got %g", got)
	}
	if got := sdf.Difference2D(a, b).Evaluate(r2.Vec{}); math.Abs(got-1) > tol {
		t.Errorf("difference: got %g", got)
	}
	if got := sdf.Intersect2D(a, b).Evaluate(p); math.Abs(got-0.5) > tol {
		t.Errorf("intersection: got %g", got)
	}
}

func TestEmpty2D(t *testing.T) {
	c := must2.Circle(1)
	if !sdf.IsEmpty2D(sdf.Union2D()) {
		t.Error("union of nothing should be empty")
	}
	if !sdf.IsEmpty2D(sdf.Union2D(sdf.Empty2D(), sdf.Empty2D())) {
		t.Error("union of empties should be empty")
	}
	u := sdf.Union2D(sdf.Empty2D(), c)
	if u.Bounds() != c.Bounds() {
		t.Errorf("empty changed union bounds: %v", u.Bounds())
	}
	d := sdf.Difference2D(c, sdf.Empty2D())
	if got := d.Evaluate(r2.Vec{}); got != -1 {
		t.Errorf("subtracting empty: got %g", got)
	}
	if !sdf.IsEmpty2D(sdf.Transform2D(sdf.Empty2D(), sdf.Translate2D(r2.Vec{X: 1}))) {
		t.Error("transformed empty should stay empty")
	}
}

func TestLineOf2D(t *testing.T) {
	c := must2.Circle(0.5)
	s := sdf.LineOf2D(c, r2.Vec{}, r2.Vec{X: 4}, "x.x.x")
	for _, x := range []float64{0, 2, 4} {
		if got := s.Evaluate(r2.Vec{X: x}); math.Abs(got+0.5) > tol {
			t.Errorf("hole at x=%g: got %g", x, got)
		}
	}
	for _, x := range []float64{1, 3} {
		if got := s.Evaluate(r2.Vec{X: x}); got <= 0 {
			t.Errorf("gap at x=%g: got %g", x, got)
		}
	}
	if !sdf.IsEmpty2D(sdf.LineOf2D(c, r2.Vec{}, r2.Vec{X: 1}, "")) {
		t.Error("empty pattern should be empty")
	}
}

func TestExtrudeRevolve(t *testing.T) {
	e := sdf.Extrude3D(must2.Box(r2.Vec{X: 2, Y: 2}, 0), 10)
	bb := e.Bounds()
	if bb.Min.Z != -5 || bb.Max.Z != 5 {
		t.Errorf("extrusion bounds %v", bb)
	}
	if got := e.Evaluate(r3.Vec{Z: 6}); math.Abs(got-1) > tol {
		t.Errorf("above extrusion: got %g", got)
	}
	// a revolved offset square is a torus like ring
	ring := sdf.Revolve3D(sdf.Transform2D(must2.Box(r2.Vec{X: 1, Y: 1}, 0), sdf.Translate2D(r2.Vec{X: 3})))
	if ring.Evaluate(r3.Vec{Y: 3}) >= 0 || ring.Evaluate(r3.Vec{}) <= 0 {
		t.Error("revolved ring misplaced")
	}
}

func TestScaleUniform3D(t *testing.T) {
	s := sdf.ScaleUniform3D(must3.Sphere(2), 1.5)
	if got := s.Evaluate(r3.Vec{X: 4}); math.Abs(got-1) > tol {
		t.Errorf("scaled sphere: got %g", got)
	}
	if bb := s.Bounds(); math.Abs(bb.Max.X-3) > tol {
		t.Errorf("scaled bounds %v", bb)
	}
}

func TestArea2D(t *testing.T) {
	area, err := sdf.Area2D(must2.Circle(5), sdf.V2i{500, 500})
	if err != nil {
		t.Fatal(err)
	}
	if want := math.Pi * 25; math.Abs(area-want) > 0.01*want {
		t.Errorf("circle area %g, want %g", area, want)
	}
	if area, _ = sdf.Area2D(sdf.Empty2D(), sdf.V2i{10, 10}); area != 0 {
		t.Errorf("empty area %g", area)
	}
	if _, err = sdf.Area2D(must2.Circle(1), sdf.V2i{0, 10}); err == nil {
		t.Error("expected error for zero grid")
	}
}
