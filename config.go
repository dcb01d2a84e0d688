package etchmap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every input of a map run. Keys absent from a YAML file keep
// the defaults from DefaultConfig.
type Config struct {
	Samples SampleSeries `yaml:"samples"`
	Radius  float64      `yaml:"radius"` // wafer radius, mm
	Points  int          `yaml:"points"` // grid points per axis
	Mode    string       `yaml:"mode"`   // profile mode, see ParseProfileMode
	// AsymmetryTolerance is the largest mirrored-pair difference accepted
	// without a warning.
	AsymmetryTolerance float64    `yaml:"asymmetry_tolerance"`
	Plot               PlotConfig `yaml:"plot"`
}

// PlotConfig carries the rendering knobs.
type PlotConfig struct {
	Title  string     `yaml:"title"`
	XLabel string     `yaml:"xlabel"`
	YLabel string     `yaml:"ylabel"`
	Output string     `yaml:"output"`
	Size   float64    `yaml:"size"` // inches, square canvas
	Levels LevelRange `yaml:"levels"`
}

// LevelRange is an inclusive, evenly stepped set of contour levels.
type LevelRange struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	Step  float64 `yaml:"step"`
}

// maxLevels bounds the contour count so a tiny step can't stall rendering.
const maxLevels = 1000

// Values returns Start, Start+Step, ... up to End inclusive.
func (r LevelRange) Values() ([]float64, error) {
	if !(r.Step > 0) || math.IsInf(r.Step, 0) {
		return nil, fmt.Errorf("levels: step must be positive and finite, got %g", r.Step)
	}
	if math.IsNaN(r.Start) || math.IsNaN(r.End) || r.End < r.Start {
		return nil, fmt.Errorf("levels: need start <= end, got %g..%g", r.Start, r.End)
	}
	span := (r.End - r.Start) / r.Step
	if span >= maxLevels {
		return nil, fmt.Errorf("levels: %g..%g step %g gives more than %d levels",
			r.Start, r.End, r.Step, maxLevels)
	}
	// 1e-9 absorbs float error in (End-Start)/Step so End itself is kept.
	n := int(math.Floor(span+1e-9)) + 1
	out := make([]float64, n)
	for k := range out {
		out[k] = r.Start + float64(k)*r.Step
	}
	return out, nil
}

// DefaultConfig returns the RIE lab run: 300 mm wafer, 100×100 grid,
// contour levels 8.85..9.01 Å/s in 0.02 steps.
func DefaultConfig() Config {
	return Config{
		Samples:            RIELab6.Clone(),
		Radius:             150,
		Points:             100,
		Mode:               string(FirstHalf),
		AsymmetryTolerance: 0.05,
		Plot: PlotConfig{
			Title:  "RIE Etch Rate Distribution (Bullseye Effect)",
			XLabel: "Position (mm)",
			YLabel: "Position (mm)",
			Output: "etchmap.png",
			Size:   6,
			Levels: LevelRange{Start: 8.85, End: 9.01, Step: 0.02},
		},
	}
}

// LoadConfig reads a YAML config file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(raw)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML over DefaultConfig. Unknown keys are rejected.
// An empty document yields the defaults.
func ParseConfig(raw []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the run parameters without building anything.
func (c Config) Validate() error {
	if err := c.Samples.Validate(); err != nil {
		return err
	}
	if !(c.Radius > 0) || math.IsInf(c.Radius, 0) {
		return fmt.Errorf("radius must be positive and finite, got %g", c.Radius)
	}
	if c.Points < 2 {
		return fmt.Errorf("points must be at least 2, got %d", c.Points)
	}
	if _, err := ParseProfileMode(c.Mode); err != nil {
		return err
	}
	if c.AsymmetryTolerance < 0 {
		return fmt.Errorf("asymmetry_tolerance must be >= 0, got %g", c.AsymmetryTolerance)
	}
	if !(c.Plot.Size > 0) {
		return fmt.Errorf("plot.size must be positive, got %g", c.Plot.Size)
	}
	if _, err := c.Plot.Levels.Values(); err != nil {
		return fmt.Errorf("plot.%w", err)
	}
	return nil
}
