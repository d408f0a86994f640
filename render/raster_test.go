package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"honnef.co/go/bezier"
)

var white = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}

// assertInk asserts that the pixel at (x, y) has been painted (nearly) black.
func assertInk(t *testing.T, img *image.RGBA, x, y int) {
	t.Helper()
	if c := img.RGBAAt(x, y); c.R >= 0x10 || c.G >= 0x10 || c.B >= 0x10 {
		t.Errorf("pixel (%d, %d) is %v, want black", x, y, c)
	}
}

// assertBlank asserts that the pixel at (x, y) still has the white
// background.
func assertBlank(t *testing.T, img *image.RGBA, x, y int) {
	t.Helper()
	if c := img.RGBAAt(x, y); c != white {
		t.Errorf("pixel (%d, %d) is %v, want %v", x, y, c, white)
	}
}

func newRaster(t *testing.T, width, height float64) *Raster {
	t.Helper()
	return NewRaster(bezier.Rect{X1: width, Y1: height}, 1, DefaultStyle())
}

func TestRasterBackground(t *testing.T) {
	r := newRaster(t, 20, 10)
	if err := r.Err(); err != nil {
		t.Fatal(err)
	}
	diff(t, image.Rect(0, 0, 20, 10), r.Image().Bounds())
	assertBlank(t, r.Image(), 0, 0)
	assertBlank(t, r.Image(), 19, 9)
}

func TestRasterLine(t *testing.T) {
	r := newRaster(t, 100, 40)
	r.DrawLine(bezier.Pt(10, 20), bezier.Pt(90, 20), 4, "#000000")
	if err := r.Err(); err != nil {
		t.Fatal(err)
	}

	img := r.Image()
	assertInk(t, img, 50, 19)
	assertInk(t, img, 50, 20)
	assertBlank(t, img, 50, 5)
	assertBlank(t, img, 50, 30)
	assertBlank(t, img, 5, 20)
	assertBlank(t, img, 95, 20)
}

func TestRasterZeroLengthLine(t *testing.T) {
	r := newRaster(t, 10, 10)
	r.DrawLine(bezier.Pt(5, 5), bezier.Pt(5, 5), 4, "#000000")
	if err := r.Err(); err != nil {
		t.Fatal(err)
	}
	assertBlank(t, r.Image(), 5, 5)
}

func TestRasterPoint(t *testing.T) {
	r := newRaster(t, 40, 40)
	r.DrawPoint(bezier.Pt(20, 20))
	if err := r.Err(); err != nil {
		t.Fatal(err)
	}

	img := r.Image()
	assertInk(t, img, 20, 20)
	assertInk(t, img, 17, 20)
	assertBlank(t, img, 20, 30)
	assertBlank(t, img, 10, 20)
}

// Drawing a region of the surface at twice the size must shift and scale
// geometry, stroke widths and markers alike.
func TestRasterView(t *testing.T) {
	r := NewRaster(bezier.Rect{X0: 100, Y0: 100, X1: 140, Y1: 140}, 2, DefaultStyle())
	diff(t, image.Rect(0, 0, 80, 80), r.Image().Bounds())

	r.DrawPoint(bezier.Pt(120, 120))
	r.DrawLine(bezier.Pt(100, 110), bezier.Pt(140, 110), 3, "#000000")
	if err := r.Err(); err != nil {
		t.Fatal(err)
	}

	img := r.Image()
	// The marker's radius of 5 becomes 10 pixels.
	assertInk(t, img, 40, 40)
	assertInk(t, img, 47, 40)
	assertBlank(t, img, 40, 55)
	assertBlank(t, img, 20, 40)
	// The line at y = 110 is 6 pixels wide around y = 20.
	assertInk(t, img, 60, 18)
	assertInk(t, img, 60, 21)
	assertBlank(t, img, 60, 10)
	assertBlank(t, img, 60, 28)
}

func TestRasterBadColor(t *testing.T) {
	r := newRaster(t, 10, 10)
	r.DrawLine(bezier.Pt(0, 5), bezier.Pt(10, 5), 4, "bogus")
	if r.Err() == nil {
		t.Error("expected an error for an invalid color")
	}
	if r.EncodePNG(&bytes.Buffer{}) == nil {
		t.Error("EncodePNG should return the sticky error")
	}
}

func TestRasterEncodePNG(t *testing.T) {
	r := newRaster(t, 60, 60)
	b := bezier.NewCubicBezier(bezier.Pt(5, 55), bezier.Pt(5, 5), bezier.Pt(55, 5), bezier.Pt(55, 55))
	if err := DrawCurve(r, b, bezier.DefaultResolution, DefaultStyle()); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, image.Rect(0, 0, 60, 60), img.Bounds())
}

func TestCircle(t *testing.T) {
	center := bezier.Pt(3, 4)
	arcs := circle(center, 2)
	for i, c := range arcs {
		if next := arcs[(i+1)%len(arcs)].P0; c.P3 != next {
			t.Errorf("arc %d ends at %v, but the next one starts at %v", i, c.P3, next)
		}
		for j := range 11 {
			p := c.Eval(float64(j) / 10)
			if d := p.Distance(center); math.Abs(d-2) > 2e-3 {
				t.Errorf("arc %d at t=%g is %g away from the center, want 2", i, float64(j)/10, d)
			}
		}
	}
}
