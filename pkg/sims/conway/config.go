package conway

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golife/pkg/life"
)

// Config controls the Life simulation.
type Config struct {
	Rows    int
	Cols    int
	Density float64
	Workers int

	// Pattern, when it has cells, replaces random seeding on Reset.
	Pattern life.Pattern
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Rows: 50, Cols: 50, Density: 0.5, Workers: 1}
}

// FromMap populates a Config from a string map. Unparseable values keep
// their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok && v != "" {
		if p, err := LoadPattern(v); err == nil {
			c.Pattern = p
		}
	}
	return c
}

var builtins = map[string]life.Pattern{
	"block":   life.Block,
	"blinker": life.Blinker,
	"glider":  life.Glider,
}

// LoadPattern resolves a built-in pattern name or reads a plaintext pattern
// file from disk.
func LoadPattern(ref string) (life.Pattern, error) {
	if p, ok := builtins[strings.ToLower(ref)]; ok {
		return p, nil
	}
	data, err := os.ReadFile(ref)
	if err != nil {
		return life.Pattern{}, fmt.Errorf("load pattern: %w", err)
	}
	p, err := life.ParsePattern(string(data))
	if err != nil {
		return life.Pattern{}, fmt.Errorf("load pattern %s: %w", ref, err)
	}
	return p, nil
}
