// Package conway adapts the life engine to the core.Sim contract.
package conway

import (
	"golife/pkg/core"
	"golife/pkg/life"
)

// Life owns the single live generation and the engine that advances it.
type Life struct {
	cfg        Config
	grid       *life.Grid
	engine     *life.Engine
	generation int
	cells      []uint8
}

// New returns a Life simulation with the provided dimensions.
func New(rows, cols int) (*Life, error) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = rows, cols
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Life simulation for cfg with every cell dead.
func NewWithConfig(cfg Config) (*Life, error) {
	grid, err := life.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	l := &Life{
		cfg:    cfg,
		grid:   grid,
		engine: life.NewEngine(life.WithWorkers(cfg.Workers)),
	}
	l.rebuildCells()
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Cols, H: l.cfg.Rows} }

// Cells exposes the current generation as 0/1 values. The slice is reused
// across steps.
func (l *Life) Cells() []uint8 { return l.cells }

// Grid returns the current generation.
func (l *Life) Grid() *life.Grid { return l.grid }

// Generation returns the number of steps since the last reset.
func (l *Life) Generation() int { return l.generation }

// Population returns the number of live cells.
func (l *Life) Population() int { return l.grid.Population() }

// Reset reseeds the board. A configured pattern is stamped at the centre of
// an empty grid; otherwise cells are drawn from the seeded RNG.
func (l *Life) Reset(seed int64) {
	empty, _ := life.New(l.cfg.Rows, l.cfg.Cols)
	if pr, pc := l.cfg.Pattern.Size(); pr > 0 {
		l.grid = empty.Stamp(l.cfg.Pattern, (l.cfg.Rows-pr)/2, (l.cfg.Cols-pc)/2)
	} else {
		empty.RandomizeDensity(core.NewRNG(seed).Source(), l.cfg.Density)
		l.grid = empty
	}
	l.generation = 0
	l.rebuildCells()
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.grid = l.engine.Step(l.grid)
	l.generation++
	l.rebuildCells()
}

func (l *Life) rebuildCells() {
	l.cells = l.grid.AppendCells(l.cells[:0])
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		l, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			// FromMap only yields positive dimensions.
			panic(err)
		}
		return l
	})
}
