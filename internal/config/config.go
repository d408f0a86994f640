// Package config loads plot descriptions for the bezplot command.
//
// A plot description is a YAML document such as
//
//	plot_height: 500
//	width: 500
//	resolution: 100
//	format: svg
//	fit: false
//	scale: 1
//	style:
//	  curve_width: 2
//	curves:
//	  - name: cubic
//	    points: [[50, 250], [100, 450], [150, 450], [250, 250]]
//	    color: navy
//
// Control points are given in mathematical coordinates, with the origin in
// the bottom left corner of the plot. Omitted settings keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"honnef.co/go/bezier"
	"honnef.co/go/bezier/render"
)

// Output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// Config describes a plot of one or more curves.
type Config struct {
	// PlotHeight is the height of the plot, used to convert control points
	// to surface coordinates.
	PlotHeight float64 `yaml:"plot_height"`
	Width      float64 `yaml:"width"`
	Resolution int     `yaml:"resolution"`
	Format     string  `yaml:"format"`
	// Fit crops the output to the curves' control polygons, markers and
	// strokes instead of drawing the whole Width by PlotHeight surface.
	Fit bool `yaml:"fit"`
	// Scale is the number of pixels per surface unit in PNG output.
	Scale  float64      `yaml:"scale"`
	Style  render.Style `yaml:"style"`
	Curves []Curve      `yaml:"curves"`
}

// Curve is a single curve of a plot.
type Curve struct {
	Name   string  `yaml:"name"`
	Points []Point `yaml:"points"`
	// Color overrides the style's curve color.
	Color string `yaml:"color"`
}

// Point is a control point in mathematical coordinates. In YAML, it is
// written as a sequence [x, y].
type Point struct {
	X, Y float64
}

func (p *Point) UnmarshalYAML(n *yaml.Node) error {
	var xy []float64
	if err := n.Decode(&xy); err != nil {
		return err
	}
	if len(xy) != 2 {
		return fmt.Errorf("line %d: point must have 2 coordinates, got %d", n.Line, len(xy))
	}
	p.X, p.Y = xy[0], xy[1]
	return nil
}

func (p Point) MarshalYAML() (any, error) {
	return []float64{p.X, p.Y}, nil
}

func base() Config {
	return Config{
		PlotHeight: bezier.DefaultPlotHeight,
		Width:      bezier.DefaultPlotHeight,
		Resolution: bezier.DefaultResolution,
		Format:     FormatSVG,
		Scale:      1,
		Style:      render.DefaultStyle(),
	}
}

// Default returns the demo plot: a cubic curve and a curve of degree 6.
func Default() Config {
	cfg := base()
	cfg.Curves = []Curve{
		{
			Name:   "cubic",
			Points: []Point{{50, 250}, {100, 450}, {150, 450}, {250, 250}},
		},
		{
			Name: "sextic",
			Points: []Point{
				{10, 10}, {60, 210}, {110, 210}, {210, 10},
				{250, 50}, {300, 490}, {400, 80},
			},
		},
	}
	return cfg
}

// Parse parses a YAML plot description and validates it.
func Parse(data []byte) (Config, error) {
	cfg := base()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the plot description in the named file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports all problems with the configuration.
func (cfg Config) Validate() error {
	var errs []error
	if cfg.PlotHeight <= 0 {
		errs = append(errs, fmt.Errorf("plot_height must be positive, got %g", cfg.PlotHeight))
	}
	if cfg.Width <= 0 {
		errs = append(errs, fmt.Errorf("width must be positive, got %g", cfg.Width))
	}
	if cfg.Resolution <= 0 {
		errs = append(errs, fmt.Errorf("resolution %d: %w", cfg.Resolution, bezier.ErrInvalidResolution))
	}
	if cfg.Format != FormatSVG && cfg.Format != FormatPNG {
		errs = append(errs, fmt.Errorf("unsupported format %q", cfg.Format))
	}
	if cfg.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %g", cfg.Scale))
	}
	for _, c := range []string{
		cfg.Style.CurveColor,
		cfg.Style.EndHandleColor,
		cfg.Style.InnerHandleColor,
		cfg.Style.MarkerColor,
	} {
		if _, err := render.ParseColor(c); err != nil {
			errs = append(errs, err)
		}
	}
	if cfg.Style.Background != "" {
		if _, err := render.ParseColor(cfg.Style.Background); err != nil {
			errs = append(errs, err)
		}
	}
	for i, c := range cfg.Curves {
		b, err := c.Bezier(cfg.Plot())
		if err != nil {
			errs = append(errs, fmt.Errorf("curve %d (%s): %w", i, c.Name, err))
		} else if b.IsInf() || b.IsNaN() {
			errs = append(errs, fmt.Errorf("curve %d (%s): control points must be finite", i, c.Name))
		}
		if c.Color != "" {
			if _, err := render.ParseColor(c.Color); err != nil {
				errs = append(errs, fmt.Errorf("curve %d (%s): %w", i, c.Name, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Plot returns the plot that control points are converted with.
func (cfg Config) Plot() bezier.Plot {
	return bezier.Plot{Height: cfg.PlotHeight}
}

// View returns the region of the surface to draw. It is the whole Width by
// PlotHeight surface, unless Fit is set and the curves have an extent to fit.
//
// A fitted view encloses the control polygons of all curves, grown by the
// marker radius and half the widest stroke so that nothing drawn at the
// edges is cut off. By the convex hull property, it encloses the curves as
// well.
func (cfg Config) View() (bezier.Rect, error) {
	full := bezier.Rect{X1: cfg.Width, Y1: cfg.PlotHeight}
	if !cfg.Fit || len(cfg.Curves) == 0 {
		return full, nil
	}
	var view bezier.Rect
	for i, c := range cfg.Curves {
		b, err := c.Bezier(cfg.Plot())
		if err != nil {
			return bezier.Rect{}, fmt.Errorf("curve %d (%s): %w", i, c.Name, err)
		}
		if i == 0 {
			view = b.ControlBounds()
		} else {
			view = view.Union(b.ControlBounds())
		}
	}
	margin := max(cfg.Style.MarkerRadius, 0) + max(cfg.Style.CurveWidth, cfg.Style.HandleWidth, 0)/2
	view = view.Inflate(margin, margin)
	if view.Width() <= 0 || view.Height() <= 0 {
		// Nothing has any extent to fit.
		return full, nil
	}
	return view, nil
}

// Bezier returns the curve in the surface coordinates of plot.
func (c Curve) Bezier(plot bezier.Plot) (bezier.Bezier, error) {
	pts := make([]bezier.Point, len(c.Points))
	for i, p := range c.Points {
		pts[i] = bezier.Pt(p.X, p.Y)
	}
	return plot.Curve(pts)
}

// CurveStyle returns the style for drawing c.
func (cfg Config) CurveStyle(c Curve) render.Style {
	style := cfg.Style
	if c.Color != "" {
		style.CurveColor = c.Color
	}
	return style
}
