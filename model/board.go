package model

import (
	"sync"

	"github.com/pkg/errors"
)

// Cell addresses one grid position
type Cell struct {
	Row int
	Col int
}

// Board owns the two equally sized grids used for double buffering. One is
// current, the other is scratch space for the next generation; Step swaps
// their roles by flipping an index so no grid is ever copied or reallocated.
//
// All edits go to the current grid. A single mutex guards the index and every
// read or write, so input and stepping may run on different goroutines.
type Board struct {
	mu         sync.Mutex
	grids      [2]*Grid
	current    int
	workers    int
	generation int
}

// NewBoard allocates both buffers with the given dimensions, all cells dead
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("[NewBoard] invalid dimensions %dx%d", width, height)
	}
	return &Board{
		grids: [2]*Grid{NewGrid(width, height), NewGrid(width, height)},
	}, nil
}

// SetWorkers selects the stepper: n > 1 splits each step across n goroutines,
// anything else steps sequentially
func (b *Board) SetWorkers(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.workers = n
}

// GetWidth returns the width of both buffers
func (b *Board) GetWidth() int {
	return b.grids[0].width
}

// GetHeight returns the height of both buffers
func (b *Board) GetHeight() int {
	return b.grids[0].height
}

// Generation returns the number of steps since construction or the last Clear/Load
func (b *Board) Generation() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.generation
}

func (b *Board) cur() *Grid {
	return b.grids[b.current]
}

func (b *Board) checkBounds(op string, row, col int) error {
	if !b.cur().InBounds(row, col) {
		return errors.Wrapf(ErrOutOfRange, "[%s] (%d, %d) outside %dx%d board",
			op, row, col, b.GetWidth(), b.GetHeight())
	}
	return nil
}

// Get returns the state of a cell of the current grid
func (b *Board) Get(row, col int) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkBounds("Board.Get", row, col); err != nil {
		return false, err
	}
	return b.cur().Get(row, col), nil
}

// Set writes a cell of the current grid
func (b *Board) Set(row, col int, alive bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkBounds("Board.Set", row, col); err != nil {
		return err
	}
	b.cur().Set(row, col, alive)
	return nil
}

// Toggle flips a cell of the current grid and returns its new state
func (b *Board) Toggle(row, col int) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkBounds("Board.Toggle", row, col); err != nil {
		return false, err
	}
	return b.cur().Toggle(row, col), nil
}

// Clear kills every cell of the current grid
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cur().Clear()
	b.generation = 0
}

// Load clears the current grid and sets the listed cells alive. Every cell is
// validated first; on error the grid is left untouched.
func (b *Board) Load(cells []Cell) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, c := range cells {
		if err := b.checkBounds("Board.Load", c.Row, c.Col); err != nil {
			return err
		}
	}

	g := b.cur()
	g.Clear()
	for _, c := range cells {
		g.Set(c.Row, c.Col, true)
	}
	b.generation = 0
	return nil
}

// Step computes the next generation into the scratch grid and makes it current.
// It returns true when no cell changed.
func (b *Board) Step() (stable bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	src, dst := b.grids[b.current], b.grids[1-b.current]
	if b.workers > 1 {
		stable = NextGenerationParallel(src, dst, b.workers)
	} else {
		stable = NextGeneration(src, dst)
	}
	b.swap()
	b.generation++
	return stable
}

// swap exchanges the roles of the two grids. Callers hold mu.
func (b *Board) swap() {
	b.current = 1 - b.current
}

// View runs fn on the current grid while holding the lock. fn must not keep
// a reference to the grid or modify it.
func (b *Board) View(fn func(g *Grid)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn(b.cur())
}
