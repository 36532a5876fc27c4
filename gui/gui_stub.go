//go:build !ebiten

package gui

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Run reports that the binary was built without the ebiten tag
func Run(*model.Board, *model.Playback, []model.Pattern, int) error {
	return errors.Wrap(ErrNoGUI, "[gui.Run] rebuild with -tags ebiten")
}
