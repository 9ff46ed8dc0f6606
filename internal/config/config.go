// Package config provides YAML-based configuration loading for the console
// and its three games.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains all tunables of the console.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Menu     MenuConfig     `yaml:"menu"`
	GameOver GameOverConfig `yaml:"game_over"`
	Tone     ToneConfig     `yaml:"tone"`
	Snake    SnakeConfig    `yaml:"snake"`
	Flappy   FlappyConfig   `yaml:"flappy"`
	Bounce   BounceConfig   `yaml:"bounce"`
}

// InputConfig defines how raw controls become input frames.
type InputConfig struct {
	AnalogLow  int `yaml:"analog_low"`  // Joystick readings below this are negative
	AnalogHigh int `yaml:"analog_high"` // Joystick readings above this are positive
	HoldMS     int `yaml:"hold_ms"`     // How long a key press counts as a held button
	PollMS     int `yaml:"poll_ms"`     // Session poll cadence
}

// MenuConfig defines the menu debounce windows.
type MenuConfig struct {
	MoveCooldownMS    int `yaml:"move_cooldown_ms"`
	ConfirmCooldownMS int `yaml:"confirm_cooldown_ms"`
}

// GameOverConfig defines the Game-Over screen behaviour.
type GameOverConfig struct {
	ConfirmCooldownMS int `yaml:"confirm_cooldown_ms"`
	TimeoutMS         int `yaml:"timeout_ms"` // 0 waits for confirm forever
}

// ToneConfig defines the buzzer pulse.
type ToneConfig struct {
	DurationMS  int `yaml:"duration_ms"`
	FrequencyHz int `yaml:"frequency_hz"`
}

// SnakeConfig defines the grid game.
type SnakeConfig struct {
	CellSize    int       `yaml:"cell_size"`
	Capacity    int       `yaml:"capacity"`
	IntervalMS  int       `yaml:"interval_ms"`
	Start       PointYAML `yaml:"start"`
	StartLength int       `yaml:"start_length"`
}

// PointYAML is a grid coordinate in config files.
type PointYAML struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// FlappyConfig defines the obstacle-avoider.
type FlappyConfig struct {
	FrameMS     int `yaml:"frame_ms"`
	Gravity     int `yaml:"gravity"`
	FlapImpulse int `yaml:"flap_impulse"`
	BirdX       int `yaml:"bird_x"`
	BirdSize    int `yaml:"bird_size"`
	PipeWidth   int `yaml:"pipe_width"`
	PipeStep    int `yaml:"pipe_step"`
	RecycleX    int `yaml:"recycle_x"`   // Pipe is recycled once its x drops below this
	ProximityX  int `yaml:"proximity_x"` // Pipe x below this is level with the bird
	GapHeight   int `yaml:"gap_height"`
	GapMargin   int `yaml:"gap_margin"`
}

// BounceConfig defines the bouncing-ball game.
type BounceConfig struct {
	FrameMS  int `yaml:"frame_ms"`
	Speed    int `yaml:"speed"`
	BallSize int `yaml:"ball_size"`
}

// Grid returns the snake grid size in cells.
func (c SnakeConfig) Grid() (w, h int) {
	return core.ScreenWidth / c.CellSize, core.ScreenHeight / c.CellSize
}

// Thresholds returns the analog joystick bands.
func (c InputConfig) Thresholds() core.AnalogThresholds {
	return core.AnalogThresholds{Low: c.AnalogLow, High: c.AnalogHigh}
}

// Hold returns the key latch duration.
func (c InputConfig) Hold() time.Duration {
	return time.Duration(c.HoldMS) * time.Millisecond
}

// Poll returns the session poll interval.
func (c InputConfig) Poll() time.Duration {
	return time.Duration(c.PollMS) * time.Millisecond
}

// Duration returns the buzzer pulse duration.
func (c ToneConfig) Duration() time.Duration {
	return time.Duration(c.DurationMS) * time.Millisecond
}

// Validate checks the invariants the engines rely on.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
		}
	}

	check(c.Input.AnalogLow >= 0 && c.Input.AnalogLow < c.Input.AnalogHigh && c.Input.AnalogHigh <= core.AnalogMax,
		"input: analog thresholds must satisfy 0 <= low < high <= %d", core.AnalogMax)
	check(c.Input.PollMS > 0, "input: poll_ms must be positive")
	check(c.Input.HoldMS >= 0, "input: hold_ms must not be negative")
	check(c.Menu.MoveCooldownMS >= 0 && c.Menu.ConfirmCooldownMS >= 0, "menu: cooldowns must not be negative")
	check(c.GameOver.ConfirmCooldownMS >= 0, "game_over: confirm_cooldown_ms must not be negative")
	check(c.GameOver.TimeoutMS >= 0, "game_over: timeout_ms must not be negative")
	check(c.Tone.DurationMS > 0 && c.Tone.FrequencyHz > 0, "tone: duration_ms and frequency_hz must be positive")

	s := c.Snake
	check(s.CellSize > 0 && core.ScreenWidth%max(s.CellSize, 1) == 0 && core.ScreenHeight%max(s.CellSize, 1) == 0,
		"snake: cell_size %d must divide %dx%d", s.CellSize, core.ScreenWidth, core.ScreenHeight)
	check(s.IntervalMS > 0, "snake: interval_ms must be positive")
	check(s.StartLength >= 1 && s.StartLength <= s.Capacity,
		"snake: start_length %d must be within 1..capacity (%d)", s.StartLength, s.Capacity)
	if s.CellSize > 0 {
		gw, gh := s.Grid()
		tail := s.Start.X - (s.StartLength - 1)
		check(tail >= 0 && s.Start.X < gw && s.Start.Y >= 0 && s.Start.Y < gh,
			"snake: start body must lie inside the %dx%d grid", gw, gh)
	}

	f := c.Flappy
	check(f.FrameMS > 0, "flappy: frame_ms must be positive")
	check(f.Gravity > 0, "flappy: gravity must be positive (downward)")
	check(f.FlapImpulse < 0, "flappy: flap_impulse must be negative (upward)")
	check(f.PipeStep > 0 && f.PipeWidth > 0 && f.BirdSize > 0, "flappy: pipe_step, pipe_width and bird_size must be positive")
	check(f.RecycleX < 0, "flappy: recycle_x must be left of the screen")
	check(f.GapHeight > 0 && f.GapMargin >= 0 && f.GapMargin < core.ScreenHeight-f.GapHeight-f.GapMargin,
		"flappy: gap_height %d with margin %d does not fit in %d pixels", f.GapHeight, f.GapMargin, core.ScreenHeight)

	b := c.Bounce
	check(b.FrameMS > 0, "bounce: frame_ms must be positive")
	check(b.Speed > 0, "bounce: speed must be positive")
	check(b.BallSize > 0 && b.BallSize < core.ScreenHeight/2, "bounce: ball_size must be positive and fit the screen")

	return errors.Join(errs...)
}
