// Command etchmap renders a wafer etch-rate bullseye map from a line of
// measurements across the wafer diameter.
//
// Usage:
//
//	etchmap [flags] [<x> <y>]
//	etchmap -profile
//
// Examples:
//
//	etchmap
//	etchmap -o bullseye.svg
//	etchmap -config run.yaml -json
//	etchmap -mode mirrored 30 40
//	etchmap -no-plot -json 0 0
//	etchmap -profile
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/geal-ai/etchmap"
	"github.com/geal-ai/etchmap/render"
)

// jsonProfilePoint is one radial profile entry in JSON output.
type jsonProfilePoint struct {
	Radius float64 `json:"radius_mm"`
	Value  float64 `json:"value"`
}

// jsonQuery is the optional point query result.
type jsonQuery struct {
	X     float64  `json:"x_mm"`
	Y     float64  `json:"y_mm"`
	Value *float64 `json:"value,omitempty"`
	Error string   `json:"error,omitempty"`
}

// jsonOutput is the top-level JSON response.
type jsonOutput struct {
	Radius    float64            `json:"radius_mm"`
	Points    int                `json:"points"`
	Mode      string             `json:"mode"`
	Asymmetry float64            `json:"asymmetry"`
	Samples   etchmap.Stats      `json:"samples"`
	Field     etchmap.Stats      `json:"field"`
	Profile   []jsonProfilePoint `json:"profile"`
	Query     *jsonQuery         `json:"query,omitempty"`
	Output    string             `json:"output,omitempty"`
}

func main() {
	cfgPath := flag.String("config", "", "YAML config file (default: built-in RIE lab dataset)")
	out := flag.String("o", "", "Output image; extension picks the format (png, svg, pdf, jpg, eps, tif)")
	radius := flag.Float64("radius", 0, "Wafer radius in mm (overrides config)")
	points := flag.Int("points", 0, "Grid points per axis (overrides config)")
	mode := flag.String("mode", "", "Profile mode: first-half or mirrored (overrides config)")
	asJSON := flag.Bool("json", false, "Output results as JSON")
	showProfile := flag.Bool("profile", false, "Print the radial profile and exit")
	noPlot := flag.Bool("no-plot", false, "Skip writing the image")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 0 && flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "error: a point query needs both x and y")
		usage()
		os.Exit(2)
	}

	cfg := etchmap.DefaultConfig()
	if *cfgPath != "" {
		var err error
		cfg, err = etchmap.LoadConfig(*cfgPath)
		if err != nil {
			fatalf("%v", err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "radius":
			cfg.Radius = *radius
		case "points":
			cfg.Points = *points
		case "mode":
			cfg.Mode = *mode
		case "o":
			cfg.Plot.Output = *out
		}
	})
	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}

	if a := cfg.Samples.Asymmetry(); a > cfg.AsymmetryTolerance {
		fmt.Fprintf(os.Stderr, "warning: samples differ by up to %.4g across the center (tolerance %.4g)", a, cfg.AsymmetryTolerance)
		if cfg.Mode != string(etchmap.Mirrored) {
			fmt.Fprintf(os.Stderr, "; %s mode ignores the second half, consider -mode %s", etchmap.FirstHalf, etchmap.Mirrored)
		}
		fmt.Fprintln(os.Stderr)
	}

	// Report the resolved mode name; Validate has already accepted it.
	if pm, err := etchmap.ParseProfileMode(cfg.Mode); err == nil {
		cfg.Mode = string(pm)
	}
	b, field, err := etchmap.BuildField(cfg)
	if err != nil {
		fatalf("%v", err)
	}
	prof := b.Profile

	if *showProfile {
		printProfile(os.Stdout, prof)
		return
	}

	var query *jsonQuery
	if flag.NArg() == 2 {
		x, err := strconv.ParseFloat(flag.Arg(0), 64)
		if err != nil {
			fatalf("invalid x %q: %v", flag.Arg(0), err)
		}
		y, err := strconv.ParseFloat(flag.Arg(1), 64)
		if err != nil {
			fatalf("invalid y %q: %v", flag.Arg(1), err)
		}
		query = queryPoint(b, x, y)
	}

	written := ""
	if !*noPlot {
		opts, err := render.OptionsFromConfig(cfg.Plot)
		if err != nil {
			fatalf("%v", err)
		}
		if err := render.Save(cfg.Plot.Output, field, opts); err != nil {
			fatalf("%v", err)
		}
		written = cfg.Plot.Output
		fmt.Fprintf(os.Stderr, "wrote %s (%d×%d grid, %d points on wafer)\n",
			written, field.Grid.N, field.Grid.N, field.Valid())
	}

	sampleStats, err := etchmap.SeriesStats(cfg.Samples)
	if err != nil {
		fatalf("%v", err)
	}
	fieldStats, err := field.Stats()
	if err != nil {
		fatalf("%v", err)
	}

	if *asJSON {
		o := jsonOutput{
			Radius:    cfg.Radius,
			Points:    cfg.Points,
			Mode:      cfg.Mode,
			Asymmetry: cfg.Samples.Asymmetry(),
			Samples:   sampleStats,
			Field:     fieldStats,
			Query:     query,
			Output:    written,
		}
		for i := range prof.Radii {
			o.Profile = append(o.Profile, jsonProfilePoint{Radius: prof.Radii[i], Value: prof.Values[i]})
		}
		emitJSON(o)
		return
	}

	printSummary(os.Stdout, cfg, sampleStats, fieldStats)
	if query != nil {
		if query.Value == nil {
			fmt.Printf("  Point    : (%.2f, %.2f) mm  %s\n\n", query.X, query.Y, query.Error)
		} else {
			fmt.Printf("  Point    : (%.2f, %.2f) mm  %.4f\n\n", query.X, query.Y, *query.Value)
		}
	}
}

// queryPoint evaluates the profile exactly at (x, y) rather than at the
// nearest grid point.
func queryPoint(b *etchmap.RadialFieldBuilder, x, y float64) *jsonQuery {
	q := &jsonQuery{X: x, Y: y}
	if v, ok := b.ValueAt(x, y); ok {
		q.Value = &v
	} else {
		q.Error = "outside wafer"
	}
	return q
}

// printSummary displays the run parameters and uniformity figures.
func printSummary(w io.Writer, cfg etchmap.Config, samples, field etchmap.Stats) {
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  Wafer    : radius %.1f mm, %d×%d grid, %s profile\n", cfg.Radius, cfg.Points, cfg.Points, cfg.Mode)
	fmt.Fprintf(w, "  Samples  : %d  (center index %d = %.4f)\n", samples.Count, cfg.Samples.Center(), cfg.Samples[cfg.Samples.Center()])
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  %-8s  %10s  %10s  %10s  %10s  %8s\n", "", "min", "max", "mean", "stddev", "NU %")
	for _, row := range []struct {
		name string
		s    etchmap.Stats
	}{{"samples", samples}, {"wafer", field}} {
		fmt.Fprintf(w, "  %-8s  %10.4f  %10.4f  %10.4f  %10.4f  %8.3f\n",
			row.name, row.s.Min, row.s.Max, row.s.Mean, row.s.StdDev, row.s.NonUniformity)
	}
	fmt.Fprintf(w, "\n")
}

// printProfile lists the radial profile as a two-column table.
func printProfile(w io.Writer, p *etchmap.RadialProfile) {
	fmt.Fprintf(w, "  %10s  %10s\n", "radius mm", "value")
	for i := range p.Radii {
		fmt.Fprintf(w, "  %10.3f  %10.4f\n", p.Radii[i], p.Values[i])
	}
}

// emitJSON writes jsonOutput to stdout as indented JSON.
func emitJSON(out jsonOutput) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fatalf("json encode: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `etchmap — render a wafer etch-rate bullseye map

Usage:
  etchmap [flags] [<x> <y>]
  etchmap -profile

Flags:`)
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, `
Examples:
  etchmap
  etchmap -o bullseye.svg
  etchmap -config run.yaml -json
  etchmap -mode mirrored 30 40
  etchmap -no-plot -json 0 0
  etchmap -profile`)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
