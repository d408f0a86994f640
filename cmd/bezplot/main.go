// Command bezplot draws Bézier curves and their control handles as SVG or PNG.
//
// With -fit, the output is cropped to the curves' control polygons instead
// of showing the whole plot. -scale magnifies PNG output.
//
// Without -config, it draws a demo plot of a cubic curve and a curve of
// degree 6. See package honnef.co/go/bezier/internal/config for the format
// of plot descriptions.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"honnef.co/go/bezier"
	"honnef.co/go/bezier/internal/config"
	"honnef.co/go/bezier/render"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML plot description (default: demo plot)")
		output     = flag.String("o", "", "output file, - for stdout (default: bezier.svg or bezier.png)")
		format     = flag.String("format", "", "output format, svg or png (overrides the config)")
		resolution = flag.Int("resolution", 0, "number of intervals to sample each curve at (overrides the config)")
		height     = flag.Float64("height", 0, "plot height (overrides the config)")
		fit        = flag.Bool("fit", false, "crop the output to the curves and their handles")
		scale      = flag.Float64("scale", 0, "pixels per unit in PNG output (overrides the config)")
		vv         = flag.Bool("vv", false, "log debug messages")
		v          = flag.Bool("v", false, "log informational messages")
		q          = flag.Bool("q", false, "only log errors")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: levelFromFlags(*vv, *v, *q),
	}))
	bezier.SetLogger(logger)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Error("couldn't load config", "err", err)
			os.Exit(1)
		}
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *resolution != 0 {
		cfg.Resolution = *resolution
	}
	if *height != 0 {
		cfg.PlotHeight = *height
	}
	if *fit {
		cfg.Fit = true
	}
	if *scale != 0 {
		cfg.Scale = *scale
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	out := *output
	if out == "" {
		out = "bezier." + cfg.Format
	}
	if err := plotTo(out, cfg); err != nil {
		logger.Error("couldn't draw plot", "err", err)
		os.Exit(1)
	}
	logger.Info("wrote plot",
		slog.String("file", out),
		slog.String("format", cfg.Format),
		slog.Int("curves", len(cfg.Curves)))
}

// levelFromFlags returns the log level selected by the verbosity flags. They
// are evaluated in the order vv, v, q.
func levelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func plotTo(path string, cfg config.Config) (err error) {
	if path == "-" {
		return plot(os.Stdout, cfg)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return plot(f, cfg)
}

// plot draws every curve of cfg, in order, and writes the result to w.
func plot(w io.Writer, cfg config.Config) error {
	view, err := cfg.View()
	if err != nil {
		return err
	}
	bezier.Logger().Debug("plotting",
		slog.Float64("x", view.X0),
		slog.Float64("y", view.Y0),
		slog.Float64("width", view.Width()),
		slog.Float64("height", view.Height()))

	bw := bufio.NewWriter(w)
	switch cfg.Format {
	case config.FormatSVG:
		s := render.NewSVG(bw, view, cfg.Style)
		if err := drawCurves(s, cfg); err != nil {
			return err
		}
		if err := s.Close(); err != nil {
			return err
		}
	case config.FormatPNG:
		r := render.NewRaster(view, cfg.Scale, cfg.Style)
		if err := drawCurves(r, cfg); err != nil {
			return err
		}
		if err := r.EncodePNG(bw); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q", cfg.Format)
	}
	return bw.Flush()
}

func drawCurves(r render.Renderer, cfg config.Config) error {
	p := cfg.Plot()
	for i, c := range cfg.Curves {
		b, err := c.Bezier(p)
		if err != nil {
			return fmt.Errorf("curve %d (%s): %w", i, c.Name, err)
		}
		if err := render.DrawCurve(r, b, cfg.Resolution, cfg.CurveStyle(c)); err != nil {
			return fmt.Errorf("curve %d (%s): %w", i, c.Name, err)
		}
	}
	return nil
}
