package model

import (
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidSpeed is returned for speed levels outside [MinSpeed, MaxSpeed]
var ErrInvalidSpeed = errors.New("invalid speed")

const (
	MinSpeed     = 0
	MaxSpeed     = 9
	DefaultSpeed = 5
)

// stepDelays maps a speed level to the minimum time between generations.
// Level 0 is effectively paused.
var stepDelays = [MaxSpeed + 1]time.Duration{
	100000 * time.Second,
	5 * time.Second,
	2 * time.Second,
	1 * time.Second,
	500 * time.Millisecond,
	400 * time.Millisecond,
	300 * time.Millisecond,
	200 * time.Millisecond,
	100 * time.Millisecond,
	0,
}

// State is the run state of a simulation
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Playback holds the run/stop flag and speed level driven by the input layer,
// and decides when the board advances. It is not safe for concurrent use.
type Playback struct {
	state State
	speed int
	timer time.Duration
}

// NewPlayback returns a stopped Playback at the default speed
func NewPlayback() *Playback {
	return &Playback{state: Stopped, speed: DefaultSpeed}
}

// State returns the current run state
func (p *Playback) State() State { return p.state }

// Running reports whether generations are being advanced
func (p *Playback) Running() bool { return p.state == Running }

// Start switches to Running
func (p *Playback) Start() { p.state = Running }

// Stop switches to Stopped
func (p *Playback) Stop() { p.state = Stopped }

// Toggle flips between Running and Stopped
func (p *Playback) Toggle() {
	if p.state == Running {
		p.state = Stopped
		return
	}
	p.state = Running
}

// Speed returns the current speed level
func (p *Playback) Speed() int { return p.speed }

// SetSpeed sets the speed level
func (p *Playback) SetSpeed(level int) error {
	if level < MinSpeed || level > MaxSpeed {
		return errors.Wrapf(ErrInvalidSpeed, "[Playback.SetSpeed] %d not in [%d, %d]", level, MinSpeed, MaxSpeed)
	}
	p.speed = level
	return nil
}

// Faster raises the speed level by one, saturating at MaxSpeed
func (p *Playback) Faster() {
	if p.speed < MaxSpeed {
		p.speed++
	}
}

// Slower lowers the speed level by one, saturating at MinSpeed
func (p *Playback) Slower() {
	if p.speed > MinSpeed {
		p.speed--
	}
}

// Delay returns the time between generations at the current speed
func (p *Playback) Delay() time.Duration {
	return stepDelays[p.speed]
}

// Advance accounts for elapsed frame time. Once more than Delay has passed the
// timer resets and, if Running, the board is stepped. A stable step stops
// playback.
func (p *Playback) Advance(b *Board, elapsed time.Duration) (stepped, stable bool) {
	p.timer += elapsed
	if p.timer <= p.Delay() {
		return false, false
	}
	p.timer = 0

	if p.state != Running {
		return false, false
	}
	stable = b.Step()
	if stable {
		p.state = Stopped
	}
	return true, stable
}
