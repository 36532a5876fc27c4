package model

import (
	"bufio"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders the current grid of the board
func (r *TerminalRenderer) Display(b *Board) error {
	w := bufio.NewWriter(r.Out)
	b.View(func(g *Grid) {
		for row := range g.height {
			for col := range g.width {
				if g.cells[row][col] {
					w.WriteString(gridPosBlock)
				} else {
					w.WriteString(gridPosEmpty)
				}
			}
			w.WriteByte('\n')
		}
	})
	return errors.Wrap(w.Flush(), "[TerminalRenderer.Display] failed to write grid")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Clear] failed to clear terminal")
	}
	return nil
}
