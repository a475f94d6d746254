package ui

import (
	"fmt"

	"golife/pkg/core"
)

// StatusLine formats the HUD text for sim.
func StatusLine(sim core.Sim, paused bool) string {
	line := sim.Name()
	if stats, ok := sim.(core.Stats); ok {
		line = fmt.Sprintf("%s  gen %d  pop %d", line, stats.Generation(), stats.Population())
	}
	if paused {
		line += "  [paused]"
	}
	return line
}
