package bezier

var _ ParametricCurve = CubicBez{}

// CubicBez is a cubic Bézier curve. It evaluates with the closed-form blend
// functions (1−t)³, 3(1−t)²t, 3(1−t)t² and t³, which is equivalent to the
// Bernstein sum used by [Bezier] at degree 3.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Bezier returns the cubic as a general [Bezier].
func (c CubicBez) Bezier() Bezier {
	return NewCubicBezier(c.P0, c.P1, c.P2, c.P3)
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// SubdivideCurve subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) SubdivideCurve() (ParametricCurve, ParametricCurve) {
	return c.Subdivide()
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Bezier().Deriv()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(Vec2(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec2(d.Eval(t1)).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

func (c CubicBez) SubsegmentCurve(t0, t1 float64) ParametricCurve {
	return c.Subsegment(t0, t1)
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}
