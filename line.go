package bezier

var _ ParametricCurve = Line{}

// Line represents a line segment, the Bézier curve of degree 1. Sampled
// curves are drawn as a series of lines, see [Polyline].
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Bezier returns the line as a general [Bezier].
func (l Line) Bezier() Bezier {
	return Bezier{Points: []Point{l.P0, l.P1}}
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

func (l Line) SubsegmentCurve(start, end float64) ParametricCurve {
	return l.Subsegment(start, end)
}

func (l Line) Subdivide() (Line, Line) {
	return l.Subsegment(0.0, 0.5), l.Subsegment(0.5, 1.0)
}

func (l Line) SubdivideCurve() (ParametricCurve, ParametricCurve) {
	return l.Subdivide()
}
