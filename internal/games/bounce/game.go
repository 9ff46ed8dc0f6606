// Package bounce implements the bouncing-ball game. The ball reflects off
// the top and bottom of the screen; the player steers it horizontally and
// loses when it touches a side.
package bounce

import (
	"fmt"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// Label is drawn in the corner while the game runs.
const Label = "Bounce Ball!"

// Game implements the Bounce game logic.
type Game struct {
	cfg      config.BounceConfig
	pos      core.Point // Top-left of the ball
	vel      core.Point // Pixels per tick
	bounces  int
	tick     uint64
	gameOver bool
}

// New creates a Bounce game. Call Reset before stepping it.
func New(cfg config.BounceConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("bounce", "Bounce Ball", 2, func(d registry.Deps) registry.Game {
		return New(d.Config.Bounce)
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "bounce"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bounce Ball"
}

// Interval returns the frame interval in milliseconds.
func (g *Game) Interval() int64 {
	return int64(g.cfg.FrameMS)
}

// Reset centres the ball moving down and to the right.
func (g *Game) Reset() {
	g.pos = core.Point{X: core.ScreenWidth / 2, Y: core.ScreenHeight / 2}
	g.vel = core.Point{X: g.cfg.Speed, Y: g.cfg.Speed}
	g.bounces = 0
	g.tick = 0
	g.gameOver = false
}

// Sample does nothing: steering is read when a frame is stepped.
func (g *Game) Sample(core.InputFrame) {}

// Step advances the ball one frame. A horizontal input sets the direction
// of travel; without input the previous direction is kept.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	switch in.X() {
	case core.AxisNegative:
		g.vel.X = -g.cfg.Speed
	case core.AxisPositive:
		g.vel.X = g.cfg.Speed
	}

	g.pos = g.pos.Add(g.vel)

	// Reflect only while heading into the wall, so a ball that is still
	// past the bound on the next frame does not flip back.
	maxY := core.ScreenHeight - g.cfg.BallSize
	if (g.pos.Y <= 0 && g.vel.Y < 0) || (g.pos.Y >= maxY && g.vel.Y > 0) {
		g.vel.Y = -g.vel.Y
		g.bounces++
	}

	if g.pos.X <= 0 || g.pos.X >= core.ScreenWidth-g.cfg.BallSize {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// Render draws the ball and the label.
func (g *Game) Render(dst core.Display) {
	dst.Clear()
	dst.FillRect(g.pos.X, g.pos.Y, g.cfg.BallSize, g.cfg.BallSize)
	dst.DrawText(0, 0, Label)
}

// State returns the current game state. The score counts wall bounces.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.bounces,
		GameOver: g.gameOver,
	}
}

// Snapshot captures the game state for tests and debugging.
type Snapshot struct {
	Tick     uint64
	Pos      core.Point
	Vel      core.Point
	Bounces  int
	GameOver bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Pos:      g.pos,
		Vel:      g.vel,
		Bounces:  g.bounces,
		GameOver: g.gameOver,
	}
}

// DebugState returns a one-line summary of the game state.
func (g *Game) DebugState() string {
	return fmt.Sprintf("tick=%d pos=%v vel=%v bounces=%d game_over=%v",
		g.tick, g.pos, g.vel, g.bounces, g.gameOver)
}
