//go:build !ebiten

package gui

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

func TestRunWithoutTag(t *testing.T) {
	b, _ := model.NewBoard(4, 4)
	if err := Run(b, model.NewPlayback(), nil, 10); !errors.Is(err, ErrNoGUI) {
		t.Fatalf("error %v, expected ErrNoGUI", err)
	}
}
