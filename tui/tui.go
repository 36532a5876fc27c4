// Package tui is an interactive terminal front end for a model.Board built on
// tcell. Each cell is drawn two columns wide; clicking a cell toggles it and
// the keyboard drives playback:
//
//	space    start/stop
//	n        single step while stopped
//	c        clear
//	+ =      faster
//	-        slower
//	p P      load next/previous preset
//	q Esc    quit
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

const (
	cellWidth     = 2
	frameInterval = time.Second / 30
)

var (
	styleAlive  = tcell.StyleDefault.Background(tcell.ColorWhite)
	styleDead   = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Host wires a tcell screen to a board and its playback state
type Host struct {
	screen   tcell.Screen
	board    *model.Board
	playback *model.Playback
	presets  *model.PresetCycler

	buttons tcell.ButtonMask
	message string
}

// New returns a Host. The screen must already be initialised.
func New(screen tcell.Screen, board *model.Board, playback *model.Playback, presets []model.Pattern) *Host {
	return &Host{
		screen:   screen,
		board:    board,
		playback: playback,
		presets:  model.NewPresetCycler(presets),
	}
}

// Run processes input and advances the playback until quit or ctx is done
func (h *Host) Run(ctx context.Context) error {
	h.screen.EnableMouse()
	h.screen.HideCursor()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "[tui.Run] stopped")
		case ev := <-events:
			if h.HandleEvent(ev) {
				return nil
			}
			h.Draw()
		case now := <-ticker.C:
			if stepped, stable := h.playback.Advance(h.board, now.Sub(last)); stepped && stable {
				h.message = fmt.Sprintf("stable after %d generations", h.board.Generation())
			}
			last = now
			h.Draw()
		}
	}
}

// HandleEvent applies one input event and reports whether the user asked to quit
func (h *Host) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return false
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	h.message = ""
	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		h.playback.Toggle()
	case 'n':
		if !h.playback.Running() && h.board.Step() {
			h.message = "stable"
		}
	case 'c':
		h.board.Clear()
	case '+', '=':
		h.playback.Faster()
	case '-':
		h.playback.Slower()
	case 'p':
		h.loadPreset(1)
	case 'P':
		h.loadPreset(-1)
	}
	return false
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && h.buttons&tcell.Button1 == 0
	h.buttons = buttons
	if !pressed {
		return
	}

	x, y := ev.Position()
	row, col := y, x/cellWidth
	if row >= h.board.GetHeight() || col >= h.board.GetWidth() {
		return
	}
	if _, err := h.board.Toggle(row, col); err != nil {
		h.message = err.Error()
	}
}

func (h *Host) loadPreset(delta int) {
	name, err := h.presets.Load(h.board, delta)
	if err != nil {
		h.message = err.Error()
		return
	}
	h.message = name
}

// Draw renders the board and a status line below it
func (h *Host) Draw() {
	h.screen.Clear()
	living := 0
	h.board.View(func(g *model.Grid) {
		living = g.CountLivingCells()
		for row := range g.GetHeight() {
			for col := range g.GetWidth() {
				style := styleDead
				if g.Get(row, col) {
					style = styleAlive
				}
				for i := range cellWidth {
					h.screen.SetContent(col*cellWidth+i, row, ' ', nil, style)
				}
			}
		}
	})

	status := fmt.Sprintf("%s | speed %d | gen %d | alive %d | %s",
		h.playback.State(), h.playback.Speed(), h.board.Generation(), living, h.message)
	h.drawText(0, h.board.GetHeight(), status)
	h.drawText(0, h.board.GetHeight()+1, "space run/stop  n step  c clear  +/- speed  p/P preset  q quit")
	h.screen.Show()
}

func (h *Host) drawText(x, y int, text string) {
	for _, r := range text {
		h.screen.SetContent(x, y, r, nil, styleStatus)
		x++
	}
}
