package bezier

import "errors"

// DefaultAccuracy is a default tolerance for comparing computed points. It is
// suitable for general-purpose use, such as 2D graphics.
const DefaultAccuracy = 1e-9

var (
	// ErrEmptyControlPolygon is returned when a curve is constructed from
	// zero control points. Such a curve is undefined.
	ErrEmptyControlPolygon = errors.New("bezier: empty control polygon")

	// ErrInvalidResolution is returned when a curve is sampled with a
	// resolution that isn't positive.
	ErrInvalidResolution = errors.New("bezier: resolution must be positive")
)

// ParametricCurve describes a curve parametrized by a scalar.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range
	// [0, 1]. Values outside that range extrapolate the curve.
	Eval(t float64) Point
	// Get a subsegment of the curve for the given parameter range.
	SubsegmentCurve(start, end float64) ParametricCurve
	// Subdivide into halves.
	SubdivideCurve() (ParametricCurve, ParametricCurve)
	Start() Point
	End() Point
}
