package session

// Mode is the top-level state of the console. Exactly one is active.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlayingSnake
	ModePlayingFlappy
	ModePlayingBounce
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModePlayingSnake:
		return "PlayingSnake"
	case ModePlayingFlappy:
		return "PlayingFlappy"
	case ModePlayingBounce:
		return "PlayingBounce"
	case ModeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Playing reports whether a game engine is active in this mode.
func (m Mode) Playing() bool {
	return m == ModePlayingSnake || m == ModePlayingFlappy || m == ModePlayingBounce
}

// playingMode maps a registered game ID to its Playing mode.
func playingMode(gameID string) (Mode, bool) {
	switch gameID {
	case "snake":
		return ModePlayingSnake, true
	case "flappy":
		return ModePlayingFlappy, true
	case "bounce":
		return ModePlayingBounce, true
	default:
		return ModeMenu, false
	}
}
