// Package snake implements the grid snake game: a head-first chain of cells
// that moves one cell per interval, grows on food and ends on a wall or on
// itself.
package snake

import (
	"fmt"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// Movement directions as unit vectors.
var (
	DirRight = core.Point{X: 1}
	DirDown  = core.Point{Y: 1}
	DirLeft  = core.Point{X: -1}
	DirUp    = core.Point{Y: -1}
)

// Game implements the Snake game.
type Game struct {
	cfg  config.SnakeConfig
	rng  core.RNG
	grid core.Rect

	// Snake state
	cells   []core.Point // Fixed capacity, head at index 0
	length  int          // Occupied prefix of cells
	heading core.Point   // Direction of the next move
	moved   core.Point   // Direction of the last move made

	food     core.Point
	score    int
	tick     uint64
	gameOver bool
}

// New creates a Snake game. Call Reset before stepping it.
func New(cfg config.SnakeConfig, rng core.RNG) *Game {
	gw, gh := cfg.Grid()
	return &Game{
		cfg:   cfg,
		rng:   rng,
		grid:  core.NewRect(0, 0, gw, gh),
		cells: make([]core.Point, cfg.Capacity),
	}
}

func init() {
	registry.Register("snake", "Snake", 0, func(d registry.Deps) registry.Game {
		return New(d.Config.Snake, d.RNG)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Interval returns the movement interval in milliseconds.
func (g *Game) Interval() int64 {
	return int64(g.cfg.IntervalMS)
}

// Reset lays the snake out horizontally behind its start cell, heading right.
func (g *Game) Reset() {
	clear(g.cells)
	g.length = g.cfg.StartLength
	for i := range g.length {
		g.cells[i] = core.Point{X: g.cfg.Start.X - i, Y: g.cfg.Start.Y}
	}
	g.heading = DirRight
	g.moved = DirRight
	g.score = 0
	g.tick = 0
	g.gameOver = false
	g.spawnFood()
}

// spawnFood places food on a uniformly random grid cell. The body is not
// excluded, so food can appear under the snake.
func (g *Game) spawnFood() {
	g.food = core.Point{
		X: g.rng.IntRange(0, g.grid.W),
		Y: g.rng.IntRange(0, g.grid.H),
	}
}

// Sample buffers a direction change between moves.
func (g *Game) Sample(in core.InputFrame) {
	g.Steer(in)
}

// Steer adopts a requested direction only on the axis the snake is not
// already moving along, judged against the last move actually made. A
// reversal, or two quick turns that add up to one, is ignored.
// The horizontal axis is read first; when both axes qualify the vertical wins.
func (g *Game) Steer(in core.InputFrame) {
	if g.gameOver {
		return
	}
	if x := in.X(); x != core.AxisNeutral && g.moved.X == 0 {
		g.heading = core.Point{X: int(x)}
	}
	if y := in.Y(); y != core.AxisNeutral && g.moved.Y == 0 {
		g.heading = core.Point{Y: int(y)}
	}
}

// Step steers by in and moves the snake one cell.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.Steer(in)
	g.tick++

	next := g.cells[0].Add(g.heading)
	if !g.grid.Contains(next) || g.occupies(next) {
		// Terminal: the body is left exactly as it was.
		g.gameOver = true
		return core.StepResult{State: g.State()}
	}
	g.moved = g.heading

	// Shift toward the tail. The slot just past the tail receives the old
	// tail so that growing keeps it; at capacity the old tail falls off.
	last := min(g.length, len(g.cells)-1)
	copy(g.cells[1:last+1], g.cells[:last])
	g.cells[0] = next

	if next == g.food {
		g.score++
		if g.length < len(g.cells) {
			g.length++
		}
		g.spawnFood()
	}

	return core.StepResult{State: g.State()}
}

// occupies reports whether p is any occupied cell, tail included.
func (g *Game) occupies(p core.Point) bool {
	for _, c := range g.cells[:g.length] {
		if c == p {
			return true
		}
	}
	return false
}

// Render draws food and every occupied cell.
func (g *Game) Render(dst core.Display) {
	dst.Clear()

	cs := g.cfg.CellSize
	dst.FillRect(g.food.X*cs, g.food.Y*cs, cs, cs)
	for _, c := range g.cells[:g.length] {
		dst.FillRect(c.X*cs, c.Y*cs, cs, cs)
	}
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
	return fmt.Sprintf("tick=%d score=%d len=%d heading=%v head=%v food=%v game_over=%v",
		g.tick, g.score, g.length, g.heading, g.cells[0], g.food, g.gameOver)
}
