package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golife/pkg/core"
	"golife/pkg/sims/conway"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Sim     string
	Rows    int
	Cols    int
	Density float64
	Workers int
	Pattern string
	Seed    int64

	Scale   int
	TPS     int
	Palette string

	Frames      int
	FPS         int
	Out         string
	Generations int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "life",
		Rows:    50,
		Cols:    50,
		Density: 0.5,
		Workers: 1,
		Seed:    time.Now().UnixNano(),
		Scale:   8,
		TPS:     4,
		Palette: "cividis",
		Frames:  24,
		FPS:     15,
		Out:     "GOL.gif",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run ("+strings.Join(core.Names(), ", ")+")")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.Float64Var(&c.Density, "density", c.Density, "probability that a cell starts alive")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands computed in parallel per step")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern (block, blinker, glider) or plaintext .cells file; empty seeds randomly")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.StringVar(&c.Palette, "palette", c.Palette, "colour palette (cividis, mono)")
	fs.IntVar(&c.Frames, "frames", c.Frames, "frames to export")
	fs.IntVar(&c.FPS, "fps", c.FPS, "export frame rate")
	fs.StringVar(&c.Out, "out", c.Out, "export file")
	fs.IntVar(&c.Generations, "generations", c.Generations, "stop after this many generations (0 runs until quit)")
}

// Validate checks values the sim factories would otherwise silently ignore.
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density %v outside [0, 1]", c.Density)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Pattern != "" {
		if _, err := conway.LoadPattern(c.Pattern); err != nil {
			return err
		}
	}
	return nil
}

// SimArgs converts the configuration into the factory key/value map.
func (c *Config) SimArgs() map[string]string {
	args := map[string]string{
		"rows":    strconv.Itoa(c.Rows),
		"cols":    strconv.Itoa(c.Cols),
		"density": strconv.FormatFloat(c.Density, 'g', -1, 64),
		"workers": strconv.Itoa(c.Workers),
	}
	if c.Pattern != "" {
		args["pattern"] = c.Pattern
	}
	return args
}

// BuildSim validates the configuration, constructs the selected sim and
// seeds it.
func BuildSim(c *Config) (core.Sim, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", c.Sim)
	}
	sim := factory(c.SimArgs())
	sim.Reset(c.Seed)
	return sim, nil
}
