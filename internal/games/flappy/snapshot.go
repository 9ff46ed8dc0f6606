package flappy

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick     uint64
	BirdY    int
	Velocity int
	Pipe     Pipe
	Score    int
	GameOver bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		BirdY:    g.birdY,
		Velocity: g.velocity,
		Pipe:     g.pipes.Pipe(),
		Score:    g.score,
		GameOver: g.gameOver,
	}
}
