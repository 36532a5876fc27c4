// Package gui is a windowed front end for a model.Board built on ebiten.
// The window is only available when building with the ebiten tag; otherwise
// Run reports ErrNoGUI.
package gui

import (
	"image/color"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag
var ErrNoGUI = errors.New("gui support not compiled in")

var (
	colorAlive = color.RGBA{R: 0x36, G: 0x65, B: 0xa9, A: 0xff}
	colorDead  = color.RGBA{R: 0xeb, G: 0xf1, B: 0xfb, A: 0xff}
)

// fillGridRGBA converts the grid into one RGBA pixel per cell in buf, which
// must hold 4*width*height bytes
func fillGridRGBA(buf []byte, g *model.Grid, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	width := g.GetWidth()
	for row := range g.GetHeight() {
		for col := range width {
			base := (row*width + col) * 4
			if g.Get(row, col) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}

// cellAt maps a cursor position in screen pixels to a cell
func cellAt(x, y, scale int, b *model.Board) (row, col int, ok bool) {
	if x < 0 || y < 0 || scale <= 0 {
		return 0, 0, false
	}
	row, col = y/scale, x/scale
	if row >= b.GetHeight() || col >= b.GetWidth() {
		return 0, 0, false
	}
	return row, col, true
}

// stepMessage is the status text after a manual single step
func stepMessage(stable bool) string {
	if stable {
		return "stable"
	}
	return ""
}
