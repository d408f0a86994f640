package bezier

import (
	"errors"
	"math"
	"testing"
)

// Control polygons used across tests, of degrees 0 through 6.
var testPolygons = [][]Point{
	{Pt(3, 4)},
	{Pt(0, 0), Pt(100, 100)},
	{Pt(0, 0), Pt(50, 100), Pt(100, 0)},
	{Pt(50, 250), Pt(100, 450), Pt(150, 450), Pt(250, 250)},
	{Pt(0, 0), Pt(10, 40), Pt(-20, 30), Pt(60, -5), Pt(80, 80)},
	{Pt(1, 2), Pt(3, 5), Pt(8, 13), Pt(21, 34), Pt(55, 89), Pt(144, 233)},
	{Pt(10, 10), Pt(60, 210), Pt(110, 210), Pt(210, 10), Pt(250, 50), Pt(300, 490), Pt(400, 80)},
}

func TestBezierEndpoints(t *testing.T) {
	for _, pts := range testPolygons {
		b, err := NewBezier(pts)
		if err != nil {
			t.Fatal(err)
		}
		assertNear(t, b.Eval(0), pts[0], DefaultAccuracy)
		assertNear(t, b.Eval(1), pts[len(pts)-1], DefaultAccuracy)
		diff(t, pts[0], b.Start())
		diff(t, pts[len(pts)-1], b.End())
	}
}

func TestBezierHighDegree(t *testing.T) {
	for _, n := range []int{171, 172, 400} {
		pts := make([]Point, n)
		for i := range pts {
			pts[i] = Pt(float64(i), float64(i%7)*10)
		}
		b, err := NewBezier(pts)
		if err != nil {
			t.Fatal(err)
		}
		assertNear(t, b.Eval(0), pts[0], DefaultAccuracy)
		assertNear(t, b.Eval(1), pts[n-1], DefaultAccuracy)
		if mid := b.Eval(0.5); mid.IsNaN() || mid.IsInf() {
			t.Errorf("%d control points: got %v at t=0.5", n, mid)
		}
		// x grows linearly with the control point index, and Bernstein
		// polynomials reproduce linear functions exactly.
		if x := b.Eval(0.5).X; math.Abs(x-float64(n-1)/2) > 1e-6 {
			t.Errorf("%d control points: got x=%g at t=0.5, want %g", n, x, float64(n-1)/2)
		}
	}
}

func TestBezierSinglePoint(t *testing.T) {
	b, err := NewBezier([]Point{Pt(7, -3)})
	if err != nil {
		t.Fatal(err)
	}
	if d := b.Degree(); d != 0 {
		t.Errorf("got degree %d, want 0", d)
	}
	for i := range 11 {
		ts := float64(i) / 10
		diff(t, Pt(7, -3), b.Eval(ts))
	}
}

func TestBezierDegenerate(t *testing.T) {
	b := NewCubicBezier(Pt(0, 0), Pt(0, 0), Pt(0, 0), Pt(0, 0))
	pts, err := Sample(b, DefaultResolution)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range pts {
		diff(t, Pt(0, 0), p)
	}
}

func TestNewBezierEmpty(t *testing.T) {
	if _, err := NewBezier(nil); !errors.Is(err, ErrEmptyControlPolygon) {
		t.Errorf("got error %v, want %v", err, ErrEmptyControlPolygon)
	}
}

func TestEvalEmptyPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrEmptyControlPolygon {
			t.Errorf("got panic value %v, want %v", r, ErrEmptyControlPolygon)
		}
	}()
	Eval(nil, 0.5)
}

func TestEmptyBezierPanics(t *testing.T) {
	var b Bezier
	ops := map[string]func(){
		"Eval":       func() { b.Eval(0.5) },
		"Start":      func() { b.Start() },
		"End":        func() { b.End() },
		"SplitAt":    func() { b.SplitAt(0.5) },
		"Subdivide":  func() { b.Subdivide() },
		"Subsegment": func() { b.Subsegment(0.2, 0.8) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if r := recover(); r != ErrEmptyControlPolygon {
					t.Errorf("got panic value %v, want %v", r, ErrEmptyControlPolygon)
				}
			}()
			op()
		})
	}
}

func TestNewBezierCopies(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(100, 100)}
	b, err := NewBezier(pts)
	if err != nil {
		t.Fatal(err)
	}
	pts[1] = Pt(-1, -1)
	diff(t, Pt(100, 100), b.End())
}

func TestBezierExtrapolates(t *testing.T) {
	b := Line{Pt(0, 0), Pt(100, 100)}.Bezier()
	diff(t, Pt(200, 200), b.Eval(2), approx())
	diff(t, Pt(-50, -50), b.Eval(-0.5), approx())
}

func TestCubicBernsteinEquivalence(t *testing.T) {
	b := NewCubicBezier(Pt(50, 250), Pt(100, 450), Pt(150, 450), Pt(250, 250))
	c := b.Cubic()
	for i := range 101 {
		ts := float64(i) / 100
		diff(t, b.evalBernstein(ts), c.Eval(ts), approx())
	}
}

func TestCubicMidpoint(t *testing.T) {
	b := NewCubicBezier(Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0))
	diff(t, Pt(50, 75), b.evalBernstein(0.5), approx())
	diff(t, Pt(50, 75), b.Cubic().Eval(0.5), approx())
	diff(t, Pt(50, 75), b.Eval(0.5), approx())
}

func TestBezierSplitAt(t *testing.T) {
	for _, pts := range testPolygons {
		b := Bezier{Points: pts}
		const split = 0.3
		left, right := b.SplitAt(split)
		if left.Degree() != b.Degree() || right.Degree() != b.Degree() {
			t.Fatalf("split changed degree %d to %d and %d", b.Degree(), left.Degree(), right.Degree())
		}
		for i := range 11 {
			u := float64(i) / 10
			assertNear(t, left.Eval(u), b.Eval(u*split), 1e-9)
			assertNear(t, right.Eval(u), b.Eval(split+u*(1-split)), 1e-9)
		}
	}
}

func TestBezierSubsegment(t *testing.T) {
	b := Bezier{Points: testPolygons[5]}
	ranges := [][2]float64{{0.2, 0.7}, {0, 1}, {0.7, 0.3}, {0.6, 0}}
	for _, r := range ranges {
		sub := b.Subsegment(r[0], r[1])
		for i := range 11 {
			u := float64(i) / 10
			assertNear(t, sub.Eval(u), b.Eval(r[0]+u*(r[1]-r[0])), 1e-9)
		}
	}
}

func TestBezierDeriv(t *testing.T) {
	b := Bezier{Points: []Point{Pt(0, 0), Pt(0.2, 0.9), Pt(0.5, -0.3), Pt(0.7, 0.4), Pt(1, 1), Pt(0.4, 0.2)}}
	d := b.Deriv()
	if d.Degree() != b.Degree()-1 {
		t.Fatalf("got degree %d, want %d", d.Degree(), b.Degree()-1)
	}
	const delta = 1e-6
	for i := range 11 {
		ts := float64(i) / 10
		approxDeriv := b.Eval(ts + delta).Sub(b.Eval(ts - delta)).Mul(1 / (2 * delta))
		if l := Vec2(d.Eval(ts)).Sub(approxDeriv).Hypot(); l > 1e-6 {
			t.Errorf("t=%g: got difference of %g", ts, l)
		}
	}

	if got := (Bezier{Points: []Point{Pt(3, 3)}}).Deriv(); got.Eval(0.5) != (Point{}) {
		t.Errorf("derivative of a point should be zero, got %v", got.Eval(0.5))
	}
}

func TestBezierTransform(t *testing.T) {
	b := Bezier{Points: testPolygons[6]}
	aff := Affine{0.5, 0.1, -0.2, 2, 10, -20}
	bt := b.Transform(aff)
	for i := range 11 {
		ts := float64(i) / 10
		assertNear(t, bt.Eval(ts), b.Eval(ts).Transform(aff), 1e-9)
	}
}

func TestBezierControlBounds(t *testing.T) {
	b := Bezier{Points: testPolygons[6]}
	r := b.ControlBounds()
	diff(t, Rect{10, 10, 400, 490}, r)
	for i := range 101 {
		p := b.Eval(float64(i) / 100)
		if p.X < r.X0 || p.X > r.X1 || p.Y < r.Y0 || p.Y > r.Y1 {
			t.Errorf("%v lies outside of control bounds %v", p, r)
		}
	}
}
