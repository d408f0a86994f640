package render

import (
	"fmt"
	"io"
	"strconv"

	"honnef.co/go/bezier"
)

var _ Renderer = (*SVG)(nil)

// SVG is a [Renderer] that writes an SVG document. Lines are written as
// <line> elements and markers as <circle> elements.
//
// Write and color errors are sticky: after the first error nothing else is
// written, and the error is returned by [SVG.Err] and [SVG.Close].
type SVG struct {
	w      io.Writer
	style  Style
	marker string
	err    error
}

// NewSVG writes the header of an SVG document showing the region view of the
// surface to w and returns a renderer for its contents. The document is as
// large as view. Markers are drawn using style's marker radius and color.
// The document must be finished by calling [SVG.Close].
func NewSVG(w io.Writer, view bezier.Rect, style Style) *SVG {
	s := &SVG{w: w, style: style}
	s.marker = s.color(style.MarkerColor)
	x, y, width, height := num(view.X0), num(view.Y0), num(view.Width()), num(view.Height())
	s.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %[1]s %[2]s">`+"\n",
		width, height, x, y)
	if style.Background != "" {
		s.printf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s" />`+"\n",
			x, y, width, height, s.color(style.Background))
	}
	return s
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (s *SVG) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

func (s *SVG) color(c string) string {
	col, err := ParseColor(c)
	if err != nil {
		if s.err == nil {
			s.err = err
		}
		return ""
	}
	return FormatColor(col)
}

// DrawPoint implements [Renderer].
func (s *SVG) DrawPoint(p bezier.Point) {
	s.printf(`<circle cx="%s" cy="%s" r="%s" fill="%s" />`+"\n",
		num(p.X), num(p.Y), num(s.style.MarkerRadius), s.marker)
}

// DrawLine implements [Renderer].
func (s *SVG) DrawLine(p0, p1 bezier.Point, strokeWidth float64, color string) {
	c := s.color(color)
	s.printf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" />`+"\n",
		num(p0.X), num(p0.Y), num(p1.X), num(p1.Y), c, num(strokeWidth))
}

// Err returns the first error encountered while writing.
func (s *SVG) Err() error {
	return s.err
}

// Close writes the end of the document. It doesn't close the underlying
// writer.
func (s *SVG) Close() error {
	s.printf("</svg>\n")
	return s.err
}
