package model

import (
	"github.com/pkg/errors"
)

// ErrOutOfRange is returned (or panicked with) when a coordinate falls outside the grid
var ErrOutOfRange = errors.New("coordinate out of range")

// Grid represents the game board as a dense row-major matrix of cells.
// Coordinates are (row, col) with 0 <= row < height and 0 <= col < width.
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a new grid with the specified dimensions, all cells dead
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(errors.Errorf("[NewGrid] invalid dimensions %dx%d", width, height))
	}
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// InBounds reports whether (row, col) addresses a cell of the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

func (g *Grid) mustBeInBounds(op string, row, col int) {
	if !g.InBounds(row, col) {
		panic(errors.Wrapf(ErrOutOfRange, "[%s] (%d, %d) outside %dx%d grid", op, row, col, g.width, g.height))
	}
}

// Get returns the state of a cell. Out-of-range coordinates panic.
func (g *Grid) Get(row, col int) bool {
	g.mustBeInBounds("Grid.Get", row, col)
	return g.cells[row][col]
}

// Set sets a cell to alive (true) or dead (false). Out-of-range coordinates panic.
func (g *Grid) Set(row, col int, alive bool) {
	g.mustBeInBounds("Grid.Set", row, col)
	g.cells[row][col] = alive
}

// Toggle flips a cell and returns its new state
func (g *Grid) Toggle(row, col int) bool {
	g.mustBeInBounds("Grid.Toggle", row, col)
	g.cells[row][col] = !g.cells[row][col]
	return g.cells[row][col]
}

// Clear clears all cells
func (g *Grid) Clear() {
	for row := range g.height {
		clear(g.cells[row])
	}
}

// CountNeighbors counts the living cells in the Moore neighborhood of (row, col).
// Positions outside the grid are skipped; there is no wraparound.
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0

	// Clip the 3x3 window to the grid once instead of testing every position
	minRow := max(0, row-1)
	maxRow := min(g.height-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.width-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c] {
				count++
			}
		}
	}

	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := range g.height {
		for col := range g.width {
			if g.cells[row][col] {
				count++
			}
		}
	}
	return
}

// Equal reports whether both grids have the same dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for row := range g.height {
		for col := range g.width {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// Bounds is the smallest rectangle containing every living cell
type Bounds struct {
	MinRow, MaxRow, MinCol, MaxCol int
	Valid                          bool
}

// Area returns the number of cells inside the bounds, 0 when there are none
func (b Bounds) Area() int {
	if !b.Valid {
		return 0
	}
	return (b.MaxRow - b.MinRow + 1) * (b.MaxCol - b.MinCol + 1)
}

// BoundingBox calculates the bounding box of living cells
func (g *Grid) BoundingBox() (b Bounds) {
	for row := range g.height {
		for col := range g.width {
			if !g.cells[row][col] {
				continue
			}
			if !b.Valid {
				b = Bounds{MinRow: row, MaxRow: row, MinCol: col, MaxCol: col, Valid: true}
				continue
			}
			b.MinRow = min(b.MinRow, row)
			b.MaxRow = max(b.MaxRow, row)
			b.MinCol = min(b.MinCol, col)
			b.MaxCol = max(b.MaxCol, col)
		}
	}
	return
}
