package bezier

import (
	"math"
	"slices"
)

var _ ParametricCurve = Bezier{}

// Bezier is a Bézier curve of arbitrary degree, defined by its control
// polygon. A curve with n+1 control points has degree n.
//
// The zero value has no control points and is not a valid curve; use
// [NewBezier] or [NewCubicBezier] to construct curves.
type Bezier struct {
	// Points is the control polygon. It must not be modified after the curve
	// has been constructed.
	Points []Point
}

// NewBezier returns the curve with the given control points, in order. The
// slice is copied, so the caller retains ownership of pts.
//
// It returns [ErrEmptyControlPolygon] if pts is empty.
func NewBezier(pts []Point) (Bezier, error) {
	if len(pts) == 0 {
		return Bezier{}, ErrEmptyControlPolygon
	}
	return Bezier{Points: append([]Point(nil), pts...)}, nil
}

// NewCubicBezier returns the cubic curve with the four control points p0, p1,
// p2 and p3.
func NewCubicBezier(p0, p1, p2, p3 Point) Bezier {
	return Bezier{Points: []Point{p0, p1, p2, p3}}
}

// Degree returns the curve's degree, which is one less than the number of
// control points.
func (b Bezier) Degree() int {
	return len(b.Points) - 1
}

// Eval evaluates the curve at parameter t using the Bernstein form
//
//	B(t) = Σ C(n, i) (1−t)ⁿ⁻ⁱ tⁱ Pᵢ
//
// Cubic curves take the closed-form path of [CubicBez.Eval], which produces
// the same values. t is not clamped; values outside [0, 1] extrapolate.
//
// Eval panics if the curve has no control points.
func (b Bezier) Eval(t float64) Point {
	b.mustHavePoints()
	switch len(b.Points) {
	case 1:
		return b.Points[0]
	case 4:
		return b.Cubic().Eval(t)
	default:
		return b.evalBernstein(t)
	}
}

func (b Bezier) evalBernstein(t float64) Point {
	n := b.Degree()
	mt := 1.0 - t
	var v Vec2
	for i, p := range b.Points {
		w := Binomial(n, i) * math.Pow(mt, float64(n-i)) * math.Pow(t, float64(i))
		v = v.Add(Vec2(p).Mul(w))
	}
	return Point(v)
}

// Eval evaluates the curve with the control points pts at parameter t. See
// [Bezier.Eval] for details.
//
// Eval panics if pts is empty.
func Eval(pts []Point, t float64) Point {
	return Bezier{Points: pts}.Eval(t)
}

// mustHavePoints panics with ErrEmptyControlPolygon if b has no control
// points.
func (b Bezier) mustHavePoints() {
	if len(b.Points) == 0 {
		panic(ErrEmptyControlPolygon)
	}
}

// Start returns the first control point. It panics if the curve has no
// control points.
func (b Bezier) Start() Point {
	b.mustHavePoints()
	return b.Points[0]
}

// End returns the last control point. It panics if the curve has no control
// points.
func (b Bezier) End() Point {
	b.mustHavePoints()
	return b.Points[len(b.Points)-1]
}

// Cubic returns the curve as a [CubicBez]. It panics if the curve's degree
// isn't 3.
func (b Bezier) Cubic() CubicBez {
	if len(b.Points) != 4 {
		panic("bezier: Cubic called on curve of degree other than 3")
	}
	return CubicBez{b.Points[0], b.Points[1], b.Points[2], b.Points[3]}
}

// SplitAt splits the curve at parameter t into two curves of the same degree,
// using de Casteljau's algorithm. The first curve covers [0, t] and the
// second covers [t, 1]. It panics if the curve has no control points.
func (b Bezier) SplitAt(t float64) (Bezier, Bezier) {
	b.mustHavePoints()
	n := b.Degree()
	work := append([]Point(nil), b.Points...)
	left := make([]Point, n+1)
	right := make([]Point, n+1)
	left[0] = work[0]
	right[n] = work[n]
	for k := 1; k <= n; k++ {
		for i := 0; i <= n-k; i++ {
			work[i] = work[i].Lerp(work[i+1], t)
		}
		left[k] = work[0]
		right[n-k] = work[n-k]
	}
	return Bezier{left}, Bezier{right}
}

// Subdivide subdivides the curve into halves, using de Casteljau.
func (b Bezier) Subdivide() (Bezier, Bezier) {
	return b.SplitAt(0.5)
}

// SubdivideCurve implements [ParametricCurve].
func (b Bezier) SubdivideCurve() (ParametricCurve, ParametricCurve) {
	return b.Subdivide()
}

// Subsegment returns the curve of the same degree that traces b between the
// parameters start and end.
func (b Bezier) Subsegment(start, end float64) Bezier {
	if end == 0 {
		// [start, 0] is the reverse of the prefix [0, start].
		left, _ := b.SplitAt(start)
		slices.Reverse(left.Points)
		return left
	}
	left, _ := b.SplitAt(end)
	_, mid := left.SplitAt(start / end)
	return mid
}

// SubsegmentCurve implements [ParametricCurve].
func (b Bezier) SubsegmentCurve(start, end float64) ParametricCurve {
	return b.Subsegment(start, end)
}

// Deriv returns the derivative (hodograph) of the curve, a curve of one
// degree less whose control points are vectors stored as points. The
// derivative of a single point is the zero vector.
func (b Bezier) Deriv() Bezier {
	n := b.Degree()
	if n < 1 {
		return Bezier{Points: []Point{{}}}
	}
	pts := make([]Point, n)
	for i := range n {
		pts[i] = Point(b.Points[i+1].Sub(b.Points[i]).Mul(float64(n)))
	}
	return Bezier{Points: pts}
}

// Transform applies an affine transformation to the curve. Bézier curves are
// affine invariant, so this is the same as transforming every point of the
// curve.
func (b Bezier) Transform(aff Affine) Bezier {
	pts := make([]Point, len(b.Points))
	for i, p := range b.Points {
		pts[i] = p.Transform(aff)
	}
	return Bezier{Points: pts}
}

// ControlBounds returns the bounding box of the control polygon. By the
// convex hull property, the curve over [0, 1] lies within it.
func (b Bezier) ControlBounds() Rect {
	return BoundingRect(b.Points)
}

// IsInf reports whether any control point has an infinite coordinate.
func (b Bezier) IsInf() bool {
	for _, p := range b.Points {
		if p.IsInf() {
			return true
		}
	}
	return false
}

// IsNaN reports whether any control point has a NaN coordinate.
func (b Bezier) IsNaN() bool {
	for _, p := range b.Points {
		if p.IsNaN() {
			return true
		}
	}
	return false
}
