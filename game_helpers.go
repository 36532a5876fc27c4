package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/tui"
	"github.com/sheikhrachel/go-life/utils"
)

// initializeGame sets up the board and playback state
func initializeGame(config utils.Config) (*model.Board, *model.Playback, error) {
	board, err := model.NewBoard(config.Width, config.Height)
	if err != nil {
		return nil, nil, err
	}
	board.SetWorkers(config.Workers)

	if err = seedBoard(board, config); err != nil {
		return nil, nil, err
	}

	playback := model.NewPlayback()
	if err = playback.SetSpeed(config.Speed); err != nil {
		return nil, nil, err
	}
	if config.Autostart {
		playback.Start()
	}
	return board, playback, nil
}

// seedBoard loads the configured preset, or a random fill when a density is set
func seedBoard(board *model.Board, config utils.Config) error {
	switch {
	case config.Pattern != "":
		pattern, ok := model.PresetByName(config.Pattern)
		if !ok {
			return errors.Errorf("[seedBoard] unknown pattern %q", config.Pattern)
		}
		cells, err := pattern.Place(board.GetHeight(), board.GetWidth())
		if err != nil {
			return err
		}
		return board.Load(cells)
	case config.RandomDensity > 0:
		seed := config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return board.Load(model.RandomCells(board.GetHeight(), board.GetWidth(), config.RandomDensity, seed))
	}
	return nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, board *model.Board, playback *model.Playback) {
	living := 0
	board.View(func(g *model.Grid) { living = g.CountLivingCells() })

	fmt.Printf("Workers: %d | Speed: %d (%v per generation)\n",
		config.Workers, playback.Speed(), playback.Delay())
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		board.GetWidth(), board.GetHeight(), living)
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// updateGameState updates the stats and returns status information
func updateGameState(
	board *model.Board,
	lastFrameTime time.Time,
	stats *utils.Stats,
	stable bool,
) (int, float64, string) {
	var livingCells int
	board.View(func(g *model.Grid) { livingCells = g.CountLivingCells() })
	density := float64(livingCells) / float64(board.GetWidth()*board.GetHeight()) * 100

	stats.Update(board.Generation(), livingCells, time.Since(lastFrameTime), stable)

	status := "Active"
	if stable {
		status = fmt.Sprintf("Stable (%d)", stats.StableAt)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status
}

// displayGameStatus shows the current game status
func displayGameStatus(
	livingCells int,
	density float64,
	status string,
	board *model.Board,
	playback *model.Playback,
	stats *utils.Stats,
) {
	var bbox int
	board.View(func(g *model.Grid) { bbox = g.BoundingBox().Area() })

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | Bounding box: %d cells\n",
		board.Generation(), livingCells, density, status, bbox)
	fmt.Printf("Speed: %d | Performance: %.1f gen/sec | Avg Pop: %.1f | Peak: %d | Runtime: %.1fs\n",
		playback.Speed(), stats.GenerationsPerSecond, stats.AveragePopulation, stats.PeakPopulation,
		stats.Runtime().Seconds())
	fmt.Println()
}

// runTerminal renders every frame to stdout until the board stops changing,
// the generation limit is hit or ctx is cancelled
func runTerminal(ctx context.Context, config utils.Config, board *model.Board, playback *model.Playback) error {
	displayGameInfo(config, board, playback)

	var (
		renderer      = model.NewTerminalRenderer()
		stats         = utils.NewStats()
		stable        = false
		lastFrameTime = time.Now()
	)
	playback.Start()

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				board.Generation(), stats.Runtime().Seconds())
			return nil
		default:
		}

		frameStart := time.Now()
		if err := renderer.Clear(); err != nil {
			log.Println(err)
		}

		livingCells, density, status := updateGameState(board, lastFrameTime, stats, stable)
		lastFrameTime = frameStart

		displayGameStatus(livingCells, density, status, board, playback, stats)
		if err := renderer.Display(board); err != nil {
			return err
		}

		if !playback.Running() {
			fmt.Printf("\n🏁 No cell changed in generation %d, stopping\n", board.Generation())
			return nil
		}
		if config.MaxGenerations > 0 && board.Generation() >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return nil
		}

		// Wait before next frame
		select {
		case <-ctx.Done():
		case <-time.After(config.FrameRate):
		}
		if _, s := playback.Advance(board, config.FrameRate); s {
			stable = true
		}
	}
}

// runTUI runs the interactive tcell front end
func runTUI(ctx context.Context, board *model.Board, playback *model.Playback) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[runTUI] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[runTUI] failed to initialize screen")
	}
	defer screen.Fini()

	err = tui.New(screen, board, playback, model.Presets()).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
