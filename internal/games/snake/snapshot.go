package snake

import "github.com/vovakirdan/pocket-arcade/internal/core"

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick     uint64
	Score    int
	Length   int
	Head     core.Point
	Heading  core.Point
	Food     core.Point
	GameOver bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Length:   g.length,
		Head:     g.cells[0],
		Heading:  g.heading,
		Food:     g.food,
		GameOver: g.gameOver,
	}
}
