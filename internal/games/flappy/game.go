// Package flappy implements the side-scrolling obstacle-avoider.
// The bird falls under gravity, a flap kicks it upward, and a pipe with a
// random gap scrolls in from the right.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg      config.FlappyConfig
	birdY    int          // Bird vertical position (top of its box)
	velocity int          // Pixels per tick, positive is down
	pipes    *PipeManager // Obstacle manager
	score    int          // Pipes survived
	tick     uint64
	gameOver bool
}

// New creates a Flappy Bird game. Call Reset before stepping it.
func New(cfg config.FlappyConfig, rng core.RNG) *Game {
	return &Game{
		cfg:   cfg,
		pipes: NewPipeManager(cfg, rng),
	}
}

func init() {
	registry.Register("flappy", "Flappy Bird", 1, func(d registry.Deps) registry.Game {
		return New(d.Config.Flappy, d.RNG)
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Interval returns the frame interval in milliseconds.
func (g *Game) Interval() int64 {
	return int64(g.cfg.FrameMS)
}

// Reset initializes or restarts the game.
func (g *Game) Reset() {
	g.birdY = core.ScreenHeight / 2
	g.velocity = 0
	g.score = 0
	g.tick = 0
	g.gameOver = false
	g.pipes.Reset()
}

// Sample does nothing: the flap button is read when a frame is stepped.
func (g *Game) Sample(core.InputFrame) {}

// Step advances the game by one frame. The action button flaps.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// A bird already resting on a bound has hit it.
	if g.outOfBounds() {
		g.gameOver = true
		return core.StepResult{State: g.State()}
	}

	g.tick++

	if in.Confirm() {
		g.velocity = g.cfg.FlapImpulse
	}
	g.velocity += g.cfg.Gravity
	g.birdY += g.velocity

	if g.pipes.Update() {
		g.score++
	}

	pipe := g.pipes.Pipe()
	if g.outOfBounds() || (pipe.X < g.cfg.ProximityX && !pipe.InGap(g.birdY)) {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// outOfBounds reports whether the bird touches the top or bottom bound.
func (g *Game) outOfBounds() bool {
	return g.birdY <= 0 || g.birdY >= core.ScreenHeight
}

// Render draws the bird, both halves of the pipe and the score.
func (g *Game) Render(dst core.Display) {
	dst.Clear()

	dst.FillRect(g.cfg.BirdX, g.birdY, g.cfg.BirdSize, g.cfg.BirdSize)

	pipe := g.pipes.Pipe()
	pipe.TopRect(g.cfg.PipeWidth).Fill(dst)
	pipe.BottomRect(g.cfg.PipeWidth, core.ScreenHeight).Fill(dst)

	dst.DrawText(0, 0, fmt.Sprintf("Score: %d", g.score))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// DebugState returns a one-line summary of the game state.
func (g *Game) DebugState() string {
	pipe := g.pipes.Pipe()
	return fmt.Sprintf("tick=%d bird_y=%d velocity=%d pipe_x=%d gap_y=%d score=%d game_over=%v",
		g.tick, g.birdY, g.velocity, pipe.X, pipe.GapY, g.score, g.gameOver)
}
