// Package render draws an etchmap Field as a filled contour map of the
// wafer using gonum/plot.
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/geal-ai/etchmap"
)

// Options controls the chart. Levels must be sorted ascending.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Levels []float64
	Size   vg.Length // square canvas edge
}

// OptionsFromConfig converts the YAML plot section to Options.
func OptionsFromConfig(pc etchmap.PlotConfig) (Options, error) {
	levels, err := pc.Levels.Values()
	if err != nil {
		return Options{}, err
	}
	if !(pc.Size > 0) {
		return Options{}, fmt.Errorf("render: size must be positive, got %g", pc.Size)
	}
	return Options{
		Title:  pc.Title,
		XLabel: pc.XLabel,
		YLabel: pc.YLabel,
		Levels: levels,
		Size:   vg.Length(pc.Size) * vg.Inch,
	}, nil
}

// circleSegments is the number of chords used to draw the wafer outline.
const circleSegments = 180

// Plot builds the contour map for f: a heat map, contour lines at
// opts.Levels and the wafer outline.
func Plot(f *etchmap.Field, opts Options) (*plot.Plot, error) {
	if f.Valid() == 0 {
		return nil, fmt.Errorf("render: field has no points inside the wafer")
	}
	g := newFieldGrid(f, opts.Levels)

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	h, err := heatMap(g, opts.Levels)
	if err != nil {
		return nil, err
	}
	p.Add(h)

	if len(opts.Levels) > 0 {
		c := plotter.NewContour(g.sunk(), opts.Levels, colors{color.Black})
		c.Min, c.Max = g.Min(), g.Max()
		for i := range c.LineStyles {
			c.LineStyles[i].Width = vg.Points(0.5)
		}
		p.Add(c)
	}

	r := f.Grid.Radius
	outline, err := plotter.NewLine(circle(r, circleSegments))
	if err != nil {
		return nil, fmt.Errorf("render: wafer outline: %w", err)
	}
	outline.LineStyle.Width = vg.Points(2)
	outline.LineStyle.Color = color.Black
	p.Add(outline)

	// Add widens the axes by half a heat map cell; pin them so the wafer
	// fills the frame.
	p.X.Min, p.X.Max = -r, r
	p.Y.Min, p.Y.Max = -r, r
	return p, nil
}

// Write renders f in the given format (png, svg, pdf, jpg, eps, tif) to w.
func Write(w io.Writer, f *etchmap.Field, opts Options, format string) error {
	p, err := Plot(f, opts)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(opts.Size, opts.Size, format)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: write %s: %w", format, err)
	}
	return nil
}

// Save renders f to path; the extension selects the format.
func Save(path string, f *etchmap.Field, opts Options) error {
	if FormatOf(path) == "" {
		return fmt.Errorf("render: %q has no file extension to pick a format from", path)
	}
	p, err := Plot(f, opts)
	if err != nil {
		return err
	}
	if err := p.Save(opts.Size, opts.Size, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

// FormatOf returns the lower-cased extension of path without the dot.
func FormatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// continuousColors is the palette size for a heat map without bands.
const continuousColors = 11

// heatMap fills the wafer with one colour per interval between adjacent
// levels, so colour steps fall on the contour lines. With fewer than two
// intervals the field is shaded continuously instead.
func heatMap(g *fieldGrid, levels []float64) (*plotter.HeatMap, error) {
	if len(levels) < 3 {
		pal, err := spectralReversed(continuousColors)
		if err != nil {
			return nil, err
		}
		h := plotter.NewHeatMap(g, pal)
		h.Min, h.Max = g.Min(), g.Max()
		return h, nil
	}
	b := newBandGrid(g, levels)
	pal, err := spectralReversed(b.bands())
	if err != nil {
		return nil, err
	}
	h := plotter.NewHeatMap(b, pal)
	h.Min, h.Max = b.Min(), b.Max()
	return h, nil
}

// spectralReversed returns n colours from ColorBrewer "Spectral", reversed
// so low values are blue. The scheme defines 3..11 classes; other counts
// are sampled evenly from the nearest one.
func spectralReversed(n int) (palette.Palette, error) {
	if n < 1 {
		return nil, fmt.Errorf("render: palette: need at least one colour, got %d", n)
	}
	m := max(3, min(11, n))
	p, err := brewer.GetPalette(brewer.TypeAny, "Spectral", m)
	if err != nil {
		return nil, fmt.Errorf("render: palette: %w", err)
	}
	src := p.Colors()
	rev := make(colors, len(src))
	for i, c := range src {
		rev[len(src)-1-i] = c
	}
	if n == len(rev) {
		return rev, nil
	}
	if n == 1 {
		return colors{rev[len(rev)/2]}, nil
	}
	out := make(colors, n)
	for k := range out {
		out[k] = rev[int(math.Round(float64(k*(len(rev)-1))/float64(n-1)))]
	}
	return out, nil
}

// colors is a fixed palette.
type colors []color.Color

func (c colors) Colors() []color.Color { return c }

// circle returns a closed polyline of radius r around the origin.
func circle(r float64, segments int) plotter.XYs {
	pts := make(plotter.XYs, segments+1)
	for k := range pts {
		θ := 2 * math.Pi * float64(k) / float64(segments)
		pts[k].X = r * math.Cos(θ)
		pts[k].Y = r * math.Sin(θ)
	}
	return pts
}
