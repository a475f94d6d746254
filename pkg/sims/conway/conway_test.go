package conway

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"golife/pkg/core"
	"golife/pkg/life"
)

func TestBlinkerOscillation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 5, 5
	cfg.Pattern = life.Blinker
	sim, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	sim.Reset(0)

	w := sim.Size().W
	check := func(step int, expects map[[2]int]bool) {
		t.Helper()
		cells := sim.Cells()
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				alive := cells[y*w+x] == 1
				if expects[[2]int{x, y}] != alive {
					t.Fatalf("step %d cell (%d,%d) alive=%v, expected %v", step, x, y, alive, !alive)
				}
			}
		}
	}

	horizontal := map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
	vertical := map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}

	check(0, horizontal)
	sim.Step()
	check(1, vertical)
	sim.Step()
	check(2, horizontal)

	if sim.Generation() != 2 {
		t.Fatalf("generation=%d, expected 2", sim.Generation())
	}
	if sim.Population() != 3 {
		t.Fatalf("population=%d, expected 3", sim.Population())
	}
}

func TestResetDeterministic(t *testing.T) {
	sim, err := New(24, 32)
	if err != nil {
		t.Fatal(err)
	}
	sim.Reset(777)
	initial := append([]uint8(nil), sim.Cells()...)
	sim.Step()
	sim.Step()
	if sim.Generation() != 2 {
		t.Fatalf("generation=%d, expected 2", sim.Generation())
	}

	sim.Reset(777)
	if !slices.Equal(initial, sim.Cells()) {
		t.Fatal("Reset with the same seed is not deterministic")
	}
	if sim.Generation() != 0 {
		t.Fatalf("generation=%d after reset, expected 0", sim.Generation())
	}

	sim.Reset(778)
	if slices.Equal(initial, sim.Cells()) {
		t.Fatal("Reset with a different seed reproduced the same board")
	}
}

func TestStepReplacesGrid(t *testing.T) {
	sim, err := New(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	sim.Reset(5)
	before := sim.Grid()
	snapshot := before.Clone()
	sim.Step()
	if sim.Grid() == before {
		t.Fatal("Step kept the previous grid instance")
	}
	if !before.Equal(snapshot) {
		t.Fatal("Step mutated the previous generation")
	}
	if len(sim.Cells()) != 100 {
		t.Fatalf("cells len=%d, expected 100", len(sim.Cells()))
	}
}

func TestNewRejectsBadDimensions(t *testing.T) {
	if _, err := New(0, 4); err == nil {
		t.Fatal("expected an error for zero rows")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"rows":    "12",
		"cols":    "30",
		"density": "0.25",
		"workers": "4",
		"pattern": "glider",
	})
	if c.Rows != 12 || c.Cols != 30 {
		t.Fatalf("size %dx%d, expected 12x30", c.Rows, c.Cols)
	}
	if c.Density != 0.25 || c.Workers != 4 {
		t.Fatalf("density=%v workers=%d", c.Density, c.Workers)
	}
	if r, _ := c.Pattern.Size(); r != 3 {
		t.Fatalf("glider pattern not resolved: %+v", c.Pattern)
	}

	bad := FromMap(map[string]string{
		"rows":    "-1",
		"cols":    "abc",
		"density": "1.5",
		"workers": "0",
		"pattern": filepath.Join(t.TempDir(), "missing.cells"),
	})
	if bad.Rows != 50 || bad.Cols != 50 || bad.Density != 0.5 || bad.Workers != 1 {
		t.Fatalf("bad values were not ignored: %+v", bad)
	}
	if r, _ := bad.Pattern.Size(); r != 0 {
		t.Fatal("missing pattern file should leave the pattern empty")
	}
}

func TestLoadPatternFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toad.cells")
	if err := os.WriteFile(path, []byte("!Name: Toad\n.OOO\nOOO.\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadPattern(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Toad" {
		t.Fatalf("name=%q, expected Toad", p.Name)
	}
	if r, c := p.Size(); r != 2 || c != 4 {
		t.Fatalf("size %dx%d, expected 2x4", r, c)
	}

	bad := filepath.Join(t.TempDir(), "bad.cells")
	if err := os.WriteFile(bad, []byte("O#O\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPattern(bad); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["life"]
	if !ok {
		t.Fatal("life sim is not registered")
	}
	sim := factory(map[string]string{"rows": "8", "cols": "6"})
	if size := sim.Size(); size.W != 6 || size.H != 8 {
		t.Fatalf("size=%+v, expected 6x8", size)
	}
	if _, ok := sim.(core.Stats); !ok {
		t.Fatal("life sim should report stats")
	}
	if !slices.Contains(core.Names(), "life") {
		t.Fatalf("names=%v", core.Names())
	}
}
