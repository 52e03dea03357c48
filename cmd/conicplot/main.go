// Command conicplot analyzes a second-degree curve, prints the
// principal-axis report and writes a PNG plot.
//
// Usage:
//
//	conicplot -a11 1 -a12 1 -a22 1 -c -10 -out conic.png
//	conicplot -a11 3 -a12 4 -hover 500,200 -explain
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/conic"
	"github.com/gogpu/conic/explain"
	"github.com/gogpu/conic/plot"
	"github.com/gogpu/conic/report"
)

type config struct {
	coeffs  conic.Coefficients
	vp      conic.Viewport
	out     string
	hover   *conic.Point
	explain bool
	verbose bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "conicplot:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("conicplot", flag.ContinueOnError)
	fs.SetOutput(stderr)

	d := conic.DefaultCoefficients
	var (
		a11      = fs.Float64("a11", d.A11, "coefficient of x²")
		a12      = fs.Float64("a12", d.A12, "coefficient of xy")
		a22      = fs.Float64("a22", d.A22, "coefficient of y²")
		b1       = fs.Float64("b1", d.B1, "coefficient of x")
		b2       = fs.Float64("b2", d.B2, "coefficient of y")
		c        = fs.Float64("c", d.C, "constant term")
		width    = fs.Float64("width", 800, "plot width in CSS pixels")
		height   = fs.Float64("height", 600, "plot height in CSS pixels")
		dpr      = fs.Float64("dpr", 1, "device pixel ratio")
		scale    = fs.Float64("scale", conic.DefaultScale, "CSS pixels per unit")
		out      = fs.String("out", "conic.png", "output PNG file (empty to skip)")
		hover    = fs.String("hover", "", "pointer position x,y in device pixels")
		explainF = fs.Bool("explain", false, "ask the text-generation service for an analysis")
		verbose  = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &config{
		coeffs:  conic.Coefficients{A11: *a11, A12: *a12, A22: *a22, B1: *b1, B2: *b2, C: *c},
		vp:      conic.FromCSS(*width, *height, *dpr),
		out:     *out,
		explain: *explainF,
		verbose: *verbose,
	}
	if !cfg.coeffs.IsFinite() {
		return nil, errors.New("coefficients must be finite")
	}
	if *scale <= 0 {
		return nil, fmt.Errorf("invalid -scale %v", *scale)
	}
	cfg.vp.Scale = *scale
	if cfg.vp.Empty() {
		return nil, fmt.Errorf("empty viewport %vx%v", *width, *height)
	}
	if *hover != "" {
		p, err := parsePoint(*hover)
		if err != nil {
			return nil, err
		}
		cfg.hover = &p
	}
	return cfg, nil
}

func parsePoint(s string) (conic.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return conic.Point{}, fmt.Errorf("invalid -hover %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return conic.Point{}, fmt.Errorf("invalid -hover %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return conic.Point{}, fmt.Errorf("invalid -hover %q: %w", s, err)
	}
	return conic.Pt(x, y), nil
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	conic.SetLogger(logger)
	defer conic.SetLogger(nil)

	f := conic.Compute(cfg.coeffs, cfg.vp)

	var h conic.Hover
	if cfg.hover != nil {
		h.Move(*cfg.hover, f)
	}

	if err := report.Write(stdout, f); err != nil {
		return err
	}
	if cfg.hover != nil {
		m := cfg.vp.ToModel(*cfg.hover)
		fmt.Fprintf(stdout, "Pointer (%s, %s): %s\n", report.Number(m.X), report.Number(m.Y), h.Axis())
	}

	if cfg.out != "" {
		pm := plot.Render(f, h.Axis())
		if err := pm.SavePNG(cfg.out); err != nil {
			return fmt.Errorf("save %s: %w", cfg.out, err)
		}
		logger.Info("plot saved", "path", cfg.out, "width", pm.Width(), "height", pm.Height(), "hover", h.Axis())
	}

	if cfg.explain {
		ec, err := explain.Load()
		if err != nil {
			return fmt.Errorf("load explain config: %w", err)
		}
		client := explain.New(*ec, explain.WithLogger(logger))
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, client.Explain(context.Background(), cfg.coeffs))
	}
	return nil
}
