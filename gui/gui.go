//go:build ebiten

package gui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Game adapts a board and its playback to the ebiten.Game interface
type Game struct {
	board    *model.Board
	playback *model.Playback
	presets  *model.PresetCycler

	image  *ebiten.Image
	pixels []byte
	scale  int

	last    time.Time
	message string
}

// New constructs a Game drawing each cell as a scale x scale square
func New(board *model.Board, playback *model.Playback, presets []model.Pattern, scale int) *Game {
	w, h := board.GetWidth(), board.GetHeight()
	return &Game{
		board:    board,
		playback: playback,
		presets:  model.NewPresetCycler(presets),
		image:    ebiten.NewImage(w, h),
		pixels:   make([]byte, w*h*4),
		scale:    scale,
	}
}

// Run opens the window and blocks until it is closed
func Run(board *model.Board, playback *model.Playback, presets []model.Pattern, scale int) error {
	game := New(board, playback, presets, scale)

	ebiten.SetWindowTitle("go-life")
	ebiten.SetWindowSize(board.GetWidth()*scale, board.GetHeight()*scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[gui.Run] game loop failed")
	}
	return nil
}

// Update handles input and advances the playback
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.playback.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !g.playback.Running() {
		g.message = stepMessage(g.board.Step())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.board.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.playback.Faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.playback.Slower()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		delta := 1
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			delta = -1
		}
		name, err := g.presets.Load(g.board, delta)
		g.message = name
		if err != nil {
			g.message = err.Error()
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if row, col, ok := cellAt(x, y, g.scale, g.board); ok {
			if _, err := g.board.Toggle(row, col); err != nil {
				g.message = err.Error()
			}
		}
	}

	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	if stepped, stable := g.playback.Advance(g.board, now.Sub(g.last)); stepped && stable {
		g.message = fmt.Sprintf("stable after %d generations", g.board.Generation())
	}
	g.last = now
	return nil
}

// Draw renders the current generation and a status line
func (g *Game) Draw(screen *ebiten.Image) {
	g.board.View(func(grid *model.Grid) {
		fillGridRGBA(g.pixels, grid, colorAlive, colorDead)
	})
	g.image.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.image, op)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s | speed %d | gen %d | %s",
		g.playback.State(), g.playback.Speed(), g.board.Generation(), g.message))
}

// Layout returns the logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.board.GetWidth() * g.scale, g.board.GetHeight() * g.scale
}
