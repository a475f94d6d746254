package life

import "golang.org/x/sync/errgroup"

// Engine advances grids by one generation.
type Engine struct {
	workers int
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers splits each step into n row bands computed concurrently.
// Values below 2 keep the sequential loop.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = 1
		}
		e.workers = n
	}
}

// NewEngine constructs an Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Workers returns the number of row bands used per step.
func (e *Engine) Workers() int { return e.workers }

// Step computes the next generation of g into a new grid. g is only read.
func (e *Engine) Step(g *Grid) *Grid {
	if g == nil {
		return nil
	}
	next := &Grid{rows: g.rows, cols: g.cols, cells: make([]State, len(g.cells))}

	workers := min(e.workers, g.rows)
	if workers <= 1 {
		stepRows(g, next, 0, g.rows)
		return next
	}

	var eg errgroup.Group
	band := (g.rows + workers - 1) / workers
	for start := 0; start < g.rows; start += band {
		end := min(start+band, g.rows)
		eg.Go(func() error {
			stepRows(g, next, start, end)
			return nil
		})
	}
	// Bands never fail; Wait only joins them.
	_ = eg.Wait()
	return next
}

// stepRows writes rows [from, to) of dst from src.
func stepRows(src, dst *Grid, from, to int) {
	for r := from; r < to; r++ {
		for c := 0; c < src.cols; c++ {
			idx := r*src.cols + c
			dst.cells[idx] = Next(src.cells[idx], LiveNeighbors(src, r, c))
		}
	}
}

// LiveNeighbors counts the live cells among the eight toroidal neighbours
// of (row, col).
func LiveNeighbors(g *Grid, row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.at(row+dr, col+dc) == Alive {
				n++
			}
		}
	}
	return n
}

// Next applies Conway's rules to a cell in state s with n live neighbours.
func Next(s State, n int) State {
	switch {
	case s == Dead && n == 3:
		return Alive
	case s == Alive && (n == 2 || n == 3):
		return Alive
	default:
		return Dead
	}
}
