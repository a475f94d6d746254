// Package life implements Conway's Game of Life on a toroidal grid.
package life

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	// ErrInvalidDimensions is returned when a grid is built with a
	// non-positive row or column count.
	ErrInvalidDimensions = errors.New("life: invalid grid dimensions")
	// ErrOutOfBounds is returned when a cell outside the grid is queried.
	ErrOutOfBounds = errors.New("life: cell out of bounds")
)

// State is the value held by a single cell.
type State uint8

const (
	Dead  State = 0
	Alive State = 1
)

func (s State) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Grid stores a fixed-size rows×cols board in row-major order.
type Grid struct {
	rows, cols int
	cells      []State
}

// New returns a grid of the given dimensions with every cell dead.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: make([]State, rows*cols)}, nil
}

// FromRows builds a grid from a rectangular row-major slice of states.
func FromRows(rows [][]State) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty rows", ErrInvalidDimensions)
	}
	g, err := New(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, r, len(row), g.cols)
		}
		for c, s := range row {
			if s == Alive {
				g.cells[r*g.cols+c] = Alive
			}
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// CellAt returns the state at (row, col).
func (g *Grid) CellAt(row, col int) (State, error) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Dead, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return g.cells[row*g.cols+col], nil
}

// at reads a cell after wrapping both coordinates onto the torus.
func (g *Grid) at(row, col int) State {
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return g.cells[row*g.cols+col]
}

// Snapshot returns a copy of the current cells, one slice per row.
func (g *Grid) Snapshot() [][]State {
	out := make([][]State, g.rows)
	for r := range out {
		out[r] = append([]State(nil), g.cells[r*g.cols:(r+1)*g.cols]...)
	}
	return out
}

// AppendCells appends the row-major 0/1 encoding of the grid to buf.
func (g *Grid) AppendCells(buf []uint8) []uint8 {
	for _, s := range g.cells {
		buf = append(buf, uint8(s))
	}
	return buf
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, s := range g.cells {
		if s == Alive {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i, s := range g.cells {
		if o.cells[i] != s {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, cells: append([]State(nil), g.cells...)}
}

// Randomize sets every cell alive with probability 0.5. A nil src uses an
// unseeded source.
func (g *Grid) Randomize(src *rand.Rand) {
	g.RandomizeDensity(src, 0.5)
}

// RandomizeDensity sets every cell alive independently with probability p,
// clamped to [0, 1].
func (g *Grid) RandomizeDensity(src *rand.Rand, p float64) {
	if src == nil {
		src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	switch {
	case p < 0:
		p = 0
	case p > 1:
		p = 1
	}
	for i := range g.cells {
		if p == 0.5 {
			g.cells[i] = State(src.IntN(2))
			continue
		}
		g.cells[i] = Dead
		if src.Float64() < p {
			g.cells[i] = Alive
		}
	}
}

// Stamp returns a copy of the grid with the live cells of p written with
// its top-left corner at (row, col). Coordinates wrap around the torus.
func (g *Grid) Stamp(p Pattern, row, col int) *Grid {
	out := g.Clone()
	for r, line := range p.Cells {
		for c, s := range line {
			if s != Alive {
				continue
			}
			rr := ((row+r)%g.rows + g.rows) % g.rows
			cc := ((col+c)%g.cols + g.cols) % g.cols
			out.cells[rr*g.cols+cc] = Alive
		}
	}
	return out
}
