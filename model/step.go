package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

func mustMatch(src, dst *Grid) {
	if src == dst {
		panic(errors.New("[NextGeneration] source and destination must be distinct grids"))
	}
	if src.width != dst.width || src.height != dst.height {
		panic(errors.Errorf("[NextGeneration] dimension mismatch: %dx%d vs %dx%d",
			src.width, src.height, dst.width, dst.height))
	}
}

// stepRows writes rows [startRow, endRow) of the next generation into dst and
// reports whether any of them changed
func stepRows(src, dst *Grid, startRow, endRow int) (changed bool) {
	for row := startRow; row < endRow; row++ {
		srcRow, dstRow := src.cells[row], dst.cells[row]
		for col := range src.width {
			next := rules.ApplyConwayRules(src.CountNeighbors(row, col), srcRow[col])
			dstRow[col] = next
			if next != srcRow[col] {
				changed = true
			}
		}
	}
	return
}

// NextGeneration computes the generation after src into dst, overwriting every
// cell of dst. It returns true when no cell changed, i.e. src is a fixed point.
func NextGeneration(src, dst *Grid) (stable bool) {
	mustMatch(src, dst)
	return !stepRows(src, dst, 0, src.height)
}

// NextGenerationParallel calculates the next generation like NextGeneration,
// splitting the rows into bands evaluated concurrently. workers <= 0 uses one
// worker per CPU.
func NextGenerationParallel(src, dst *Grid, workers int) (stable bool) {
	mustMatch(src, dst)

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, src.height)

	var (
		eg            errgroup.Group
		changed       = make([]bool, workers)
		rowsPerWorker = (src.height + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, src.height)
		)
		if startRow >= src.height {
			break
		}

		eg.Go(func() error {
			changed[i] = stepRows(src, dst, startRow, endRow)
			return nil
		})
	}

	// Workers never fail; Wait is only the join point
	_ = eg.Wait()

	for _, c := range changed {
		if c {
			return false
		}
	}
	return true
}
