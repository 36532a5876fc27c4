package utils

import (
	"encoding/json"
	"flag"
	"os"
	"slices"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

const (
	HostTerminal = "terminal"
	HostTUI      = "tui"
	HostGUI      = "gui"
)

var hosts = []string{HostTerminal, HostTUI, HostGUI}

// Config holds the configuration for the game
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	Speed          int           `json:"speed"`
	Workers        int           `json:"workers"`
	Host           string        `json:"host"`
	Pattern        string        `json:"pattern"`
	RandomDensity  float64       `json:"random_density"`
	Seed           int64         `json:"seed"`
	MaxGenerations int           `json:"max_generations"`
	FrameRate      time.Duration `json:"frame_rate"`
	Scale          int           `json:"scale"`
	Autostart      bool          `json:"autostart"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          65,
		Height:         60,
		Speed:          model.DefaultSpeed,
		Workers:        0, // Sequential stepping
		Host:           HostTUI,
		FrameRate:      150 * time.Millisecond,
		Scale:          10,
		MaxGenerations: 0,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet so flags override
// whatever was loaded from file
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Speed, "speed", c.Speed, "initial speed level (0-9)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per step (0 or 1 steps sequentially)")
	fs.StringVar(&c.Host, "host", c.Host, "front end: terminal, tui or gui")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "preset pattern to load at start")
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "fraction of cells seeded alive at random")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fill (0 uses the clock)")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "terminal host: stop after this many generations (0 = no limit)")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "terminal host: time between frames")
	fs.IntVar(&c.Scale, "scale", c.Scale, "gui host: pixels per cell")
	fs.BoolVar(&c.Autostart, "autostart", c.Autostart, "start running immediately")
}

// Validate checks the configuration before the board is built
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Speed < model.MinSpeed || c.Speed > model.MaxSpeed {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] speed %d not in [%d, %d]", c.Speed, model.MinSpeed, model.MaxSpeed)
	}
	if !slices.Contains(hosts, c.Host) {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown host %q", c.Host)
	}
	if c.Pattern != "" {
		if _, ok := model.PresetByName(c.Pattern); !ok {
			return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown pattern %q", c.Pattern)
		}
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] density %v not in [0, 1]", c.RandomDensity)
	}
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers must not be negative, got %d", c.Workers)
	}
	if c.FrameRate <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame rate must be positive, got %v", c.FrameRate)
	}
	if c.Scale <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] scale must be positive, got %d", c.Scale)
	}
	return nil
}
