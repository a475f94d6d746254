package life

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
)

// ErrBadPattern is returned when pattern text cannot be parsed.
var ErrBadPattern = errors.New("life: bad pattern")

// Pattern is a rectangular stamp of cells.
type Pattern struct {
	Name  string
	Cells [][]State
}

// Size returns the pattern height and width.
func (p Pattern) Size() (rows, cols int) {
	if len(p.Cells) == 0 {
		return 0, 0
	}
	return len(p.Cells), len(p.Cells[0])
}

var (
	Block   = mustPattern("block", "OO\nOO")
	Blinker = mustPattern("blinker", "OOO")
	Glider  = mustPattern("glider", ".O.\n..O\nOOO")
)

func mustPattern(name, text string) Pattern {
	p, err := ParsePattern(text)
	if err != nil {
		panic(err)
	}
	p.Name = name
	return p
}

// ParsePattern reads the plaintext Life format: lines starting with '!' are
// comments ("!Name: x" sets the name), 'O' or '*' marks a live cell and '.'
// a dead one. Short rows are padded with dead cells.
func ParsePattern(text string) (Pattern, error) {
	var (
		p     Pattern
		lines []string
		width int
	)
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			if name, ok := strings.CutPrefix(line, "!Name:"); ok {
				p.Name = strings.TrimSpace(name)
			}
			continue
		}
		lines = append(lines, line)
		width = max(width, len(line))
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, fmt.Errorf("%w: %v", ErrBadPattern, err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || width == 0 {
		return Pattern{}, fmt.Errorf("%w: no cells", ErrBadPattern)
	}

	p.Cells = make([][]State, len(lines))
	for r, line := range lines {
		row := make([]State, width)
		for c, ch := range []byte(line) {
			switch ch {
			case 'O', 'o', '*':
				row[c] = Alive
			case '.':
			default:
				return Pattern{}, fmt.Errorf("%w: unexpected %q at line %d col %d", ErrBadPattern, ch, r+1, c+1)
			}
		}
		p.Cells[r] = row
	}
	return p, nil
}
