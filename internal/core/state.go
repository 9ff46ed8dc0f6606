package core

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the session.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has terminated
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
