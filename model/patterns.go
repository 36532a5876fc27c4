package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// ErrPatternTooLarge is returned when a pattern cannot fit on the grid at all
var ErrPatternTooLarge = errors.New("pattern larger than grid")

// Pattern is a named preset: the cells to set alive after clearing the grid
type Pattern struct {
	Name  string
	Cells []Cell
}

// presets are laid out for the default 60x65 board, roughly around its centre
var presets = []Pattern{
	{
		Name:  "glider",
		Cells: []Cell{
			{29, 31},
			{30, 32},
			{31, 30}, {31, 31}, {31, 32},
		},
	},
	{
		Name:  "spaceship",
		Cells: []Cell{
			{25, 30}, {25, 33},
			{26, 34},
			{27, 30}, {27, 34},
			{28, 31}, {28, 32}, {28, 33}, {28, 34},
		},
	},
	{
		Name:  "glider-base",
		Cells: []Cell{
			{26, 31}, {26, 32}, {26, 33}, {26, 34},
			{28, 29}, {28, 30}, {28, 31}, {28, 32}, {28, 33}, {28, 34}, {28, 35}, {28, 36},
			{30, 28}, {30, 29}, {30, 30}, {30, 31}, {30, 32}, {30, 33}, {30, 34}, {30, 35}, {30, 36}, {30, 37},
			{32, 29}, {32, 30}, {32, 31}, {32, 32}, {32, 33}, {32, 34}, {32, 35}, {32, 36},
			{34, 31}, {34, 32}, {34, 33}, {34, 34},
		},
	},
	{
		Name:  "pentapole",
		Cells: []Cell{
			{26, 28}, {26, 29},
			{27, 28},
			{28, 29}, {28, 31},
			{30, 31}, {30, 33},
			{32, 33}, {32, 35},
			{33, 34}, {33, 35},
		},
	},
	{
		Name:  "phoenix",
		Cells: []Cell{
			{26, 31},
			{27, 31}, {27, 33},
			{28, 29},
			{29, 34}, {29, 35},
			{30, 28}, {30, 29},
			{31, 34},
			{32, 30}, {32, 32},
			{33, 32},
		},
	},
	{
		Name:  "clock",
		Cells: []Cell{
			{24, 32}, {24, 33},
			{25, 32}, {25, 33},
			{27, 30}, {27, 31}, {27, 32}, {27, 33},
			{28, 26}, {28, 27}, {28, 29}, {28, 32}, {28, 34},
			{29, 26}, {29, 27}, {29, 29}, {29, 31}, {29, 34},
			{30, 29}, {30, 31}, {30, 34}, {30, 36}, {30, 37},
			{31, 29}, {31, 34}, {31, 36}, {31, 37},
			{32, 30}, {32, 31}, {32, 32}, {32, 33},
			{34, 30}, {34, 31},
			{35, 30}, {35, 31},
		},
	},
	{
		Name:  "diamond",
		Cells: []Cell{
			{23, 31},
			{24, 30}, {24, 32},
			{25, 29}, {25, 31}, {25, 33},
			{26, 29}, {26, 33},
			{27, 27}, {27, 28}, {27, 31}, {27, 34}, {27, 35},
			{28, 26}, {28, 31}, {28, 36},
			{29, 25}, {29, 27}, {29, 29}, {29, 30}, {29, 32}, {29, 33}, {29, 35}, {29, 37},
			{30, 26}, {30, 31}, {30, 36},
			{31, 27}, {31, 28}, {31, 31}, {31, 34}, {31, 35},
			{32, 29}, {32, 33},
			{33, 29}, {33, 31}, {33, 33},
			{34, 30}, {34, 32},
			{35, 31},
		},
	},
	{
		Name:  "star",
		Cells: []Cell{
			{24, 31},
			{25, 30}, {25, 31}, {25, 32},
			{26, 28}, {26, 29}, {26, 30}, {26, 32}, {26, 33}, {26, 34},
			{27, 28}, {27, 34},
			{28, 27}, {28, 28}, {28, 34}, {28, 35},
			{29, 26}, {29, 27}, {29, 35}, {29, 36},
			{30, 27}, {30, 28}, {30, 34}, {30, 35},
			{31, 28}, {31, 34},
			{32, 28}, {32, 29}, {32, 30}, {32, 32}, {32, 33}, {32, 34},
			{33, 30}, {33, 31}, {33, 32},
			{34, 31},
		},
	},
	{
		Name:  "galaxy",
		Cells: []Cell{
			{25, 27}, {25, 28}, {25, 29}, {25, 30}, {25, 31}, {25, 32}, {25, 34}, {25, 35},
			{26, 27}, {26, 28}, {26, 29}, {26, 30}, {26, 31}, {26, 32}, {26, 34}, {26, 35},
			{27, 34}, {27, 35},
			{28, 27}, {28, 28}, {28, 34}, {28, 35},
			{29, 27}, {29, 28}, {29, 34}, {29, 35},
			{30, 27}, {30, 28}, {30, 34}, {30, 35},
			{31, 27}, {31, 28},
			{32, 27}, {32, 28}, {32, 30}, {32, 31}, {32, 32}, {32, 33}, {32, 34}, {32, 35},
			{33, 27}, {33, 28}, {33, 30}, {33, 31}, {33, 32}, {33, 33}, {33, 34}, {33, 35},
		},
	},
	{
		Name:  "tumbler",
		Cells: []Cell{
			{26, 29}, {26, 30}, {26, 32}, {26, 33},
			{28, 30}, {28, 32},
			{29, 27}, {29, 28}, {29, 30}, {29, 32}, {29, 34}, {29, 35},
			{30, 27}, {30, 28}, {30, 29}, {30, 33}, {30, 34}, {30, 35},
		},
	},
	{
		Name:  "lily",
		Cells: []Cell{
			{24, 31},
			{25, 30}, {25, 32},
			{26, 29}, {26, 31}, {26, 33},
			{27, 29}, {27, 31}, {27, 33},
			{28, 26}, {28, 27}, {28, 29}, {28, 30}, {28, 31}, {28, 32}, {28, 33}, {28, 35}, {28, 36},
			{29, 26}, {29, 28}, {29, 34}, {29, 36},
			{30, 29}, {30, 30}, {30, 31}, {30, 32}, {30, 33},
			{32, 31},
			{33, 30}, {33, 32},
			{34, 31},
		},
	},
	{
		Name:  "r2d2",
		Cells: []Cell{
			{24, 31}, {24, 32},
			{25, 31}, {25, 32},
			{27, 29}, {27, 30}, {27, 31}, {27, 32}, {27, 33}, {27, 34},
			{28, 28}, {28, 35},
			{29, 28}, {29, 29}, {29, 32}, {29, 33}, {29, 34}, {29, 35},
			{31, 28}, {31, 29}, {31, 30}, {31, 31}, {31, 32}, {31, 33}, {31, 34}, {31, 35},
			{32, 28}, {32, 35},
			{33, 31}, {33, 32},
			{34, 31}, {34, 32},
		},
	},
}

// Presets returns the built-in pattern catalog in menu order
func Presets() []Pattern {
	out := make([]Pattern, len(presets))
	copy(out, presets)
	return out
}

// PresetByName looks up a built-in pattern
func PresetByName(name string) (Pattern, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}

// PresetNames lists the catalog names in menu order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for _, p := range presets {
		names = append(names, p.Name)
	}
	return names
}

func (p Pattern) bounds() (b Bounds) {
	for i, c := range p.Cells {
		if i == 0 {
			b = Bounds{MinRow: c.Row, MaxRow: c.Row, MinCol: c.Col, MaxCol: c.Col, Valid: true}
			continue
		}
		b.MinRow = min(b.MinRow, c.Row)
		b.MaxRow = max(b.MaxRow, c.Row)
		b.MinCol = min(b.MinCol, c.Col)
		b.MaxCol = max(b.MaxCol, c.Col)
	}
	return
}

// Place returns the pattern's cells for a grid of the given size. Cells that
// already fit are returned unchanged; otherwise the pattern is moved so its
// bounding box sits in the middle of the grid.
func (p Pattern) Place(height, width int) ([]Cell, error) {
	b := p.bounds()
	if !b.Valid {
		return nil, nil
	}
	rows, cols := b.MaxRow-b.MinRow+1, b.MaxCol-b.MinCol+1
	if rows > height || cols > width {
		return nil, errors.Wrapf(ErrPatternTooLarge, "[Pattern.Place] %q needs %dx%d, grid is %dx%d",
			p.Name, cols, rows, width, height)
	}

	cells := make([]Cell, len(p.Cells))
	if b.MinRow >= 0 && b.MinCol >= 0 && b.MaxRow < height && b.MaxCol < width {
		copy(cells, p.Cells)
		return cells, nil
	}

	dRow := (height-rows)/2 - b.MinRow
	dCol := (width-cols)/2 - b.MinCol
	for i, c := range p.Cells {
		cells[i] = Cell{Row: c.Row + dRow, Col: c.Col + dCol}
	}
	return cells, nil
}

// PresetCycler steps through a pattern catalog for front ends that load
// presets with next/previous controls
type PresetCycler struct {
	presets []Pattern
	index   int
	started bool
}

// NewPresetCycler returns a cycler not yet positioned on any pattern. The
// first Load picks the first pattern for a forward move and the last one for
// a backward move.
func NewPresetCycler(presets []Pattern) *PresetCycler {
	return &PresetCycler{presets: presets}
}

// Load moves delta entries through the catalog, wrapping at either end, loads
// that pattern onto the board and returns its name
func (p *PresetCycler) Load(b *Board, delta int) (string, error) {
	if len(p.presets) == 0 {
		return "", nil
	}
	n := len(p.presets)
	switch {
	case p.started:
		p.index = ((p.index+delta)%n + n) % n
	case delta < 0:
		p.index = ((n+delta)%n + n) % n
	default:
		p.index = (max(delta, 1) - 1) % n
	}
	p.started = true
	pattern := p.presets[p.index]

	cells, err := pattern.Place(b.GetHeight(), b.GetWidth())
	if err != nil {
		return "", err
	}
	if err = b.Load(cells); err != nil {
		return "", err
	}
	return pattern.Name, nil
}

// RandomCells picks each cell of a height x width grid with probability
// density. The same seed always yields the same cells.
func RandomCells(height, width int, density float64, seed int64) []Cell {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	var cells []Cell
	for row := range height {
		for col := range width {
			if rng.Float64() < density {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}
