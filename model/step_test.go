package model

import (
	"math/rand/v2"
	"testing"
)

func TestEmptyGridIsStable(t *testing.T) {
	src, dst := NewGrid(8, 6), NewGrid(8, 6)
	if !NextGeneration(src, dst) {
		t.Fatal("empty grid reported a change")
	}
	if n := dst.CountLivingCells(); n != 0 {
		t.Fatalf("%d cells born from nothing", n)
	}
}

func TestIsolatedCellDies(t *testing.T) {
	src := gridFromRows(t,
		".....",
		"..#..",
		".....",
	)
	dst := NewGrid(5, 3)
	if NextGeneration(src, dst) {
		t.Fatal("dying cell reported as stable")
	}
	if n := dst.CountLivingCells(); n != 0 {
		t.Fatalf("%d cells alive, expected 0", n)
	}
}

func TestBlockIsStillLife(t *testing.T) {
	src := gridFromRows(t,
		"....",
		".##.",
		".##.",
		"....",
	)
	dst := NewGrid(4, 4)
	if !NextGeneration(src, dst) {
		t.Fatal("block reported a change")
	}
	if !dst.Equal(src) {
		t.Fatal("block did not survive unchanged")
	}
}

func TestBlockInCornerIsStillLife(t *testing.T) {
	src := gridFromRows(t,
		"##..",
		"##..",
		"....",
	)
	dst := NewGrid(4, 3)
	if !NextGeneration(src, dst) || !dst.Equal(src) {
		t.Fatal("corner block is not a still life")
	}
}

func TestBlinkerNeverReportsStable(t *testing.T) {
	horizontal := gridFromRows(t,
		".....",
		".....",
		".###.",
		".....",
		".....",
	)
	vertical := gridFromRows(t,
		".....",
		"..#..",
		"..#..",
		"..#..",
		".....",
	)

	cur, scratch := gridFromRows(t,
		".....",
		".....",
		".###.",
		".....",
		".....",
	), NewGrid(5, 5)

	for step := 1; step <= 6; step++ {
		if NextGeneration(cur, scratch) {
			t.Fatalf("step %d: blinker reported stable", step)
		}
		cur, scratch = scratch, cur

		want := horizontal
		if step%2 == 1 {
			want = vertical
		}
		if !cur.Equal(want) {
			t.Fatalf("step %d: unexpected blinker phase", step)
		}
	}
}

func TestNextGenerationOverwritesStaleDestination(t *testing.T) {
	src := NewGrid(4, 4)
	dst := gridFromRows(t,
		"####",
		"####",
		"####",
		"####",
	)
	NextGeneration(src, dst)
	if n := dst.CountLivingCells(); n != 0 {
		t.Fatalf("stale destination kept %d cells", n)
	}
}

func TestGliderOnBorderIsNotWrapped(t *testing.T) {
	// A glider heading into the bottom-right corner eventually collapses
	// into a block instead of reappearing at the top-left.
	cur := gridFromRows(t,
		"......",
		"......",
		"......",
		"....#.",
		".....#",
		"...###",
	)
	scratch := NewGrid(6, 6)
	for range 8 {
		NextGeneration(cur, scratch)
		cur, scratch = scratch, cur
		for r := 0; r < 2; r++ {
			for c := 0; c < 2; c++ {
				if cur.Get(r, c) {
					t.Fatalf("cell (%d,%d) alive: glider wrapped around", r, c)
				}
			}
		}
	}

	block := gridFromRows(t,
		"......",
		"......",
		"......",
		"......",
		"....##",
		"....##",
	)
	if !cur.Equal(block) {
		t.Fatal("glider did not settle into a corner block")
	}
	if !NextGeneration(cur, scratch) {
		t.Fatal("corner block reported a change")
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for _, workers := range []int{0, 1, 2, 3, 7, 64} {
		src := NewGrid(37, 23)
		for r := range src.height {
			for c := range src.width {
				src.Set(r, c, rng.IntN(3) == 0)
			}
		}

		seqDst, parDst := NewGrid(37, 23), NewGrid(37, 23)
		seqStable := NextGeneration(src, seqDst)
		parStable := NextGenerationParallel(src, parDst, workers)

		if seqStable != parStable {
			t.Fatalf("workers=%d: stable flag %v, sequential %v", workers, parStable, seqStable)
		}
		if !seqDst.Equal(parDst) {
			t.Fatalf("workers=%d: parallel result differs from sequential", workers)
		}
	}
}

func TestParallelReportsStableBlock(t *testing.T) {
	src := gridFromRows(t,
		"......",
		".##...",
		".##...",
		"......",
		"......",
	)
	if !NextGenerationParallel(src, NewGrid(6, 5), 4) {
		t.Fatal("block reported a change")
	}
}

func TestMismatchedGridsPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched dimensions")
		}
	}()
	NextGeneration(NewGrid(3, 3), NewGrid(4, 3))
}
