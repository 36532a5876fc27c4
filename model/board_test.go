package model

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
)

func currentGrid(b *Board) *Grid {
	var cp *Grid
	b.View(func(g *Grid) {
		cp = NewGrid(g.width, g.height)
		for r := range g.height {
			copy(cp.cells[r], g.cells[r])
		}
	})
	return cp
}

func TestNewBoardRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		if _, err := NewBoard(dims[0], dims[1]); err == nil {
			t.Fatalf("NewBoard(%d, %d) succeeded", dims[0], dims[1])
		}
	}
}

func TestBoardStepSwapsBuffers(t *testing.T) {
	b, err := NewBoard(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	first, second := b.grids[0], b.grids[1]

	if err := b.Load([]Cell{{2, 1}, {2, 2}, {2, 3}}); err != nil {
		t.Fatal(err)
	}
	if b.Step() {
		t.Fatal("blinker reported stable")
	}
	if b.grids[b.current] != second {
		t.Fatal("scratch grid did not become current")
	}
	if b.Step() {
		t.Fatal("blinker reported stable")
	}
	if b.grids[b.current] != first {
		t.Fatal("buffers did not swap back")
	}
	if b.grids[0] != first || b.grids[1] != second {
		t.Fatal("step reallocated a buffer")
	}
	if b.Generation() != 2 {
		t.Fatalf("generation %d, expected 2", b.Generation())
	}
}

func TestBoardEditsTargetCurrent(t *testing.T) {
	b, _ := NewBoard(4, 4)
	b.Step()

	if _, err := b.Toggle(1, 1); err != nil {
		t.Fatal(err)
	}
	if alive, _ := b.Get(1, 1); !alive {
		t.Fatal("toggled cell not visible in current grid")
	}
	if b.grids[1-b.current].Get(1, 1) {
		t.Fatal("edit reached the scratch grid")
	}
}

func TestBoardOutOfRangeReturnsError(t *testing.T) {
	b, _ := NewBoard(4, 3)
	if _, err := b.Get(3, 0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Get error %v", err)
	}
	if err := b.Set(0, 4, true); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Set error %v", err)
	}
	if _, err := b.Toggle(-1, 0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Toggle error %v", err)
	}
}

func TestBoardToggleTwiceRoundTrips(t *testing.T) {
	b, _ := NewBoard(3, 3)
	before := currentGrid(b)
	b.Toggle(2, 2)
	b.Toggle(2, 2)
	if !currentGrid(b).Equal(before) {
		t.Fatal("double toggle changed the board")
	}
}

func TestBoardLoadReplacesContent(t *testing.T) {
	b, _ := NewBoard(5, 5)
	for r := range 5 {
		for c := range 5 {
			b.Set(r, c, true)
		}
	}

	cells := []Cell{{0, 0}, {4, 4}, {2, 3}}
	if err := b.Load(cells); err != nil {
		t.Fatal(err)
	}

	want := NewGrid(5, 5)
	for _, c := range cells {
		want.Set(c.Row, c.Col, true)
	}
	if !currentGrid(b).Equal(want) {
		t.Fatal("load did not leave exactly the pattern alive")
	}
}

func TestBoardLoadInvalidLeavesGridUntouched(t *testing.T) {
	b, _ := NewBoard(3, 3)
	b.Set(1, 1, true)
	before := currentGrid(b)

	err := b.Load([]Cell{{0, 0}, {3, 3}})
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Load error %v", err)
	}
	if !currentGrid(b).Equal(before) {
		t.Fatal("failed load modified the grid")
	}
}

func TestBoardClearResetsGeneration(t *testing.T) {
	b, _ := NewBoard(4, 4)
	b.Set(0, 0, true)
	b.Step()
	b.Clear()
	if b.Generation() != 0 {
		t.Fatalf("generation %d after clear", b.Generation())
	}
	if n := currentGrid(b).CountLivingCells(); n != 0 {
		t.Fatalf("%d cells alive after clear", n)
	}
	if !b.Step() {
		t.Fatal("cleared board reported a change")
	}
}

func TestBoardParallelWorkers(t *testing.T) {
	seq, _ := NewBoard(20, 15)
	par, _ := NewBoard(20, 15)
	par.SetWorkers(4)

	glider, _ := PresetByName("glider")
	cells, err := glider.Place(15, 20)
	if err != nil {
		t.Fatal(err)
	}
	seq.Load(cells)
	par.Load(cells)

	for i := range 10 {
		if seq.Step() != par.Step() {
			t.Fatalf("step %d: stable flags differ", i)
		}
		if !currentGrid(seq).Equal(currentGrid(par)) {
			t.Fatalf("step %d: boards differ", i)
		}
	}
}

func TestBoardConcurrentEditsAndSteps(t *testing.T) {
	b, _ := NewBoard(16, 16)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for range 200 {
			b.Step()
		}
	}()
	go func() {
		defer wg.Done()
		for i := range 200 {
			b.Toggle(i%16, (i*7)%16)
		}
	}()
	wg.Wait()
	if b.Generation() != 200 {
		t.Fatalf("generation %d, expected 200", b.Generation())
	}
}
