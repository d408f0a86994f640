package render

import (
	"image"
	"math"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"honnef.co/go/bezier"
)

var _ Renderer = (*Raster)(nil)

// kappa is the distance of the control points of a cubic Bézier
// approximating a quarter circle of radius 1.
const kappa = 0.5522847498307936

// Raster is a [Renderer] that rasterizes into an RGBA image, with
// anti-aliasing. Lines are drawn without caps or joins.
//
// Color errors are sticky: after the first error nothing else is drawn, and
// the error is returned by [Raster.Err].
type Raster struct {
	img    *image.RGBA
	ras    *vector.Rasterizer
	style  Style
	marker image.Image
	err    error

	// aff maps surface coordinates to pixels and scale is its linear
	// scale factor, applied to stroke widths and marker radii.
	aff   bezier.Affine
	scale float64
}

// NewRaster returns a renderer drawing the region view of the surface into a
// new image, filled with the style's background. Every unit of the surface
// covers scale pixels, so the image is view's size times scale, rounded up.
// Markers are drawn using style's marker radius and color.
func NewRaster(view bezier.Rect, scale float64, style Style) *Raster {
	width := int(math.Ceil(view.Width() * scale))
	height := int(math.Ceil(view.Height() * scale))
	aff := bezier.Translate(bezier.Vec(-view.X0, -view.Y0)).ThenScale(scale, scale)
	r := &Raster{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:   vector.NewRasterizer(width, height),
		style: style,
		aff:   aff,
		scale: math.Sqrt(math.Abs(aff.Determinant())),
	}
	r.marker = r.uniform(style.MarkerColor)
	if style.Background != "" {
		if bg := r.uniform(style.Background); bg != nil {
			draw.Draw(r.img, r.img.Bounds(), bg, image.Point{}, draw.Src)
		}
	}
	return r
}

func (r *Raster) uniform(c string) image.Image {
	col, err := ParseColor(c)
	if err != nil {
		if r.err == nil {
			r.err = err
		}
		return nil
	}
	return image.NewUniform(col)
}

// Image returns the image drawn into.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Err returns the first error encountered while drawing.
func (r *Raster) Err() error {
	return r.err
}

// EncodePNG writes the image to w in PNG format.
func (r *Raster) EncodePNG(w io.Writer) error {
	if r.err != nil {
		return r.err
	}
	return png.Encode(w, r.img)
}

func (r *Raster) fill(src image.Image) {
	b := r.img.Bounds()
	r.ras.Draw(r.img, b, src, image.Point{})
	r.ras.Reset(b.Dx(), b.Dy())
}

// moveTo and lineTo take points in pixel coordinates.
func (r *Raster) moveTo(p bezier.Point) {
	r.ras.MoveTo(float32(p.X), float32(p.Y))
}

func (r *Raster) lineTo(p bezier.Point) {
	r.ras.LineTo(float32(p.X), float32(p.Y))
}

// DrawPoint implements [Renderer].
func (r *Raster) DrawPoint(p bezier.Point) {
	if r.err != nil || r.style.MarkerRadius <= 0 {
		return
	}
	arcs := circle(p.Transform(r.aff), r.style.MarkerRadius*r.scale)
	r.moveTo(arcs[0].P0)
	for _, c := range arcs {
		r.ras.CubeTo(
			float32(c.P1.X), float32(c.P1.Y),
			float32(c.P2.X), float32(c.P2.Y),
			float32(c.P3.X), float32(c.P3.Y))
	}
	r.ras.ClosePath()
	r.fill(r.marker)
}

// DrawLine implements [Renderer]. Zero-length lines and lines with a
// non-positive stroke width draw nothing.
func (r *Raster) DrawLine(p0, p1 bezier.Point, strokeWidth float64, color string) {
	if r.err != nil {
		return
	}
	src := r.uniform(color)
	l := bezier.Line{P0: p0, P1: p1}.Transform(r.aff)
	if src == nil || strokeWidth <= 0 || l.Length() == 0 {
		return
	}
	p0, p1 = l.P0, l.P1
	n := p1.Sub(p0).Normalize().Perp().Mul(strokeWidth * r.scale / 2)
	r.moveTo(p0.Translate(n))
	r.lineTo(p1.Translate(n))
	r.lineTo(p1.Translate(n.Negate()))
	r.lineTo(p0.Translate(n.Negate()))
	r.ras.ClosePath()
	r.fill(src)
}

// circle approximates the circle of radius rad around center with four cubic
// Béziers, starting at the rightmost point.
func circle(center bezier.Point, rad float64) [4]bezier.CubicBez {
	k := kappa * rad
	var out [4]bezier.CubicBez
	// Each quarter is the previous one rotated by 90 degrees.
	dir := bezier.Vec(1, 0)
	for i := range out {
		perp := dir.Perp()
		out[i] = bezier.CubicBez{
			P0: center.Translate(dir.Mul(rad)),
			P1: center.Translate(dir.Mul(rad).Add(perp.Mul(k))),
			P2: center.Translate(perp.Mul(rad).Add(dir.Mul(k))),
			P3: center.Translate(perp.Mul(rad)),
		}
		dir = perp
	}
	return out
}

