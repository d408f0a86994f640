package bezier

import (
	"fmt"
	"iter"
	"log/slog"
)

// DefaultResolution is the number of intervals used when sampling curves for
// on-screen drawing. 100 intervals produce visually smooth curves at typical
// plot sizes; higher values trade speed for smoothness.
const DefaultResolution = 100

// Sample evaluates c at resolution+1 evenly spaced parameters t = i/resolution
// for i = 0, …, resolution, including both endpoints. The returned drawing
// points are fully materialized so they can be drawn as one polyline.
//
// It returns [ErrInvalidResolution] if resolution is not positive. Invalid
// resolutions are rejected, not clamped.
func Sample(c ParametricCurve, resolution int) ([]Point, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("sampling with resolution %d: %w", resolution, ErrInvalidResolution)
	}
	out := make([]Point, resolution+1)
	for i := range out {
		// Computing t by division instead of accumulating an interval keeps
		// the last parameter at exactly 1.
		out[i] = c.Eval(float64(i) / float64(resolution))
	}
	Logger().Debug("sampled curve",
		slog.Int("resolution", resolution),
		slog.Int("points", len(out)))
	return out, nil
}

// SamplePoints samples the curve with the control points pts. It combines
// [NewBezier] and [Sample] and returns their errors.
func SamplePoints(pts []Point, resolution int) ([]Point, error) {
	b, err := NewBezier(pts)
	if err != nil {
		return nil, err
	}
	return Sample(b, resolution)
}

// Polyline returns the line segments connecting consecutive points of pts.
// It yields nothing if pts has fewer than two points.
func Polyline(pts []Point) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(pts); i++ {
			if !yield(Line{pts[i-1], pts[i]}) {
				return
			}
		}
	}
}
