// Package render draws sampled Bézier curves and their control handles.
//
// Drawing goes through the [Renderer] interface, which only knows how to draw
// point markers and line segments. [SVG] writes drawings as SVG documents and
// [Raster] rasterizes them into images.
//
// Points are expected in surface coordinates, with the origin in the top left
// corner; see [bezier.Plot] for converting from mathematical coordinates.
package render

import (
	"fmt"
	"log/slog"

	"honnef.co/go/bezier"
)

// Renderer draws primitives onto a surface. Calls are assumed to be
// synchronous and are drawn in order, later primitives on top of earlier
// ones.
type Renderer interface {
	// DrawPoint draws a marker at p.
	DrawPoint(p bezier.Point)
	// DrawLine draws the line segment from p0 to p1 with the given stroke
	// width and color. Colors are parsed by [ParseColor].
	DrawLine(p0, p1 bezier.Point, strokeWidth float64, color string)
}

// Style describes how curves and their handles are drawn.
type Style struct {
	CurveWidth float64 `yaml:"curve_width"`
	CurveColor string  `yaml:"curve_color"`

	HandleWidth float64 `yaml:"handle_width"`
	// EndHandleColor is used for the handles attached to the curve's
	// endpoints, InnerHandleColor for all others.
	EndHandleColor   string `yaml:"end_handle_color"`
	InnerHandleColor string `yaml:"inner_handle_color"`

	MarkerRadius float64 `yaml:"marker_radius"`
	MarkerColor  string  `yaml:"marker_color"`

	// Background fills the surface before anything is drawn. The empty
	// string leaves the surface transparent.
	Background string `yaml:"background"`
}

// DefaultStyle returns the default style: black curves of width 2, green end
// handles, red inner handles and black markers of radius 5 on a white
// background.
func DefaultStyle() Style {
	return Style{
		CurveWidth:       2,
		CurveColor:       "#000000",
		HandleWidth:      1,
		EndHandleColor:   "#00FF00",
		InnerHandleColor: "#AA4444",
		MarkerRadius:     5,
		MarkerColor:      "#000",
		Background:       "#FFFFFF",
	}
}

// DrawPolyline draws the line segments connecting consecutive points of pts.
// Nothing is drawn for fewer than two points.
func DrawPolyline(r Renderer, pts []bezier.Point, strokeWidth float64, color string) {
	for l := range bezier.Polyline(pts) {
		r.DrawLine(l.P0, l.P1, strokeWidth, color)
	}
}

// DrawHandles draws the control polygon ctrl. Consecutive control points are
// connected by handle lines; the first and last lines use the style's end
// handle color and all others its inner handle color. Markers are drawn at
// the points connected by the first and last lines. A single control point
// is drawn as just a marker.
func DrawHandles(r Renderer, ctrl []bezier.Point, style Style) {
	if len(ctrl) == 1 {
		r.DrawPoint(ctrl[0])
		return
	}
	last := len(ctrl) - 1
	for i := 1; i <= last; i++ {
		color := style.InnerHandleColor
		if i == 1 || i == last {
			r.DrawPoint(ctrl[i-1])
			r.DrawPoint(ctrl[i])
			color = style.EndHandleColor
		}
		r.DrawLine(ctrl[i-1], ctrl[i], style.HandleWidth, color)
	}
}

// DrawCurve samples b at the given resolution and draws its handles followed
// by the sampled curve.
func DrawCurve(r Renderer, b bezier.Bezier, resolution int, style Style) error {
	pts, err := bezier.Sample(b, resolution)
	if err != nil {
		return fmt.Errorf("drawing curve of degree %d: %w", b.Degree(), err)
	}
	DrawHandles(r, b.Points, style)
	DrawPolyline(r, pts, style.CurveWidth, style.CurveColor)
	bezier.Logger().Debug("drew curve",
		slog.Int("degree", b.Degree()),
		slog.Int("resolution", resolution),
		slog.Int("points", len(pts)))
	return nil
}
