package bezier

// DefaultPlotHeight is the height of the plot used by [DefaultPlot].
const DefaultPlotHeight = 500

// Plot describes the drawing surface that curves are plotted on. Curves are
// usually specified in mathematical coordinates, with the origin in the
// bottom left corner and y growing upwards, while drawing surfaces have their
// origin in the top left corner and y growing downwards.
//
// Points are converted to the surface's coordinates once, when they are
// constructed via [Plot.Pt]. Curves are then evaluated and sampled entirely
// in surface coordinates. Because Bézier curves are affine invariant, the
// sampled points don't need to be flipped again; flipping them would mirror
// the curve a second time.
type Plot struct {
	// Height is the height of the surface. A mathematical y of 0 maps to
	// Height and a mathematical y of Height maps to 0.
	Height float64
}

// DefaultPlot returns a plot of height [DefaultPlotHeight].
func DefaultPlot() Plot {
	return Plot{Height: DefaultPlotHeight}
}

// Pt returns the surface point for the mathematical point (x, y).
func (p Plot) Pt(x, y float64) Point {
	return Point{X: x, Y: p.Height - y}
}

// Math returns the mathematical coordinates of the surface point pt. It is
// the inverse of [Plot.Pt].
func (p Plot) Math(pt Point) Point {
	return pt.Transform(p.Affine().Invert())
}

// Affine returns the transform from mathematical to surface coordinates.
func (p Plot) Affine() Affine {
	return FlipY.ThenTranslate(Vec(0, p.Height))
}

// Curve returns the curve whose control points are given in mathematical
// coordinates, converted to surface coordinates.
func (p Plot) Curve(pts []Point) (Bezier, error) {
	b, err := NewBezier(pts)
	if err != nil {
		return Bezier{}, err
	}
	return b.Transform(p.Affine()), nil
}
