// Package bezier evaluates and samples Bézier curves of arbitrary degree, for
// drawing them as polylines on a 2D surface.
//
// # Curves
//
// [Bezier] describes a curve by its control polygon, an ordered slice of
// [Point]s. A curve with n+1 control points has degree n and is evaluated
// with the Bernstein form
//
//	B(t) = Σ C(n, i) (1−t)ⁿ⁻ⁱ tⁱ Pᵢ,  t ∈ [0, 1]
//
// where C(n, i) is the binomial coefficient computed by [Binomial]. Cubic
// curves (n = 3) are evaluated with the equivalent closed-form blend
// functions of [CubicBez], and [Line] is the curve of degree 1. All three
// implement [ParametricCurve].
//
// Evaluating a curve at a parameter outside [0, 1] extrapolates the
// polynomial; the parameter is neither clamped nor rejected.
//
// # Sampling
//
// [Sample] turns a curve into drawing points by evaluating it at
// [DefaultResolution] (or any other number of) evenly spaced intervals,
// including both endpoints. [Polyline] converts drawing points into the line
// segments that approximate the curve.
//
// # Coordinates
//
// Points are stored in the coordinate space of the drawing surface, with y
// growing downwards. [Plot] converts from mathematical coordinates, with y
// growing upwards, exactly once, when points are constructed. See [Plot] for
// why sampled points must not be converted again.
//
// # Errors
//
// Constructing a curve without control points returns
// [ErrEmptyControlPolygon], and sampling with a non-positive resolution
// returns [ErrInvalidResolution]. Evaluating a curve that has no control
// points and computing invalid binomial coefficients are programming errors
// and panic.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package bezier
