package session

import (
	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

const (
	gameOverTitle  = "GAME OVER!"
	gameOverPrompt = "Press Btn..."
)

// gameOverOutcome says how the Game-Over wait ended.
type gameOverOutcome int

const (
	gameOverWaiting gameOverOutcome = iota
	gameOverConfirmed
	gameOverTimedOut
)

// gameOver is the Game-Over sub-state. The supervisor polls it once per tick
// until it reports an outcome.
type gameOver struct {
	cfg     config.GameOverConfig
	entered int64
	drawn   bool
}

func newGameOver(cfg config.GameOverConfig, now int64) *gameOver {
	return &gameOver{cfg: cfg, entered: now}
}

// poll checks for confirm. Confirm is only armed once the cooldown since
// entering has passed, so a button still held from play does not skip the
// screen.
func (g *gameOver) poll(in core.InputFrame, now int64) gameOverOutcome {
	elapsed := now - g.entered
	if elapsed >= int64(g.cfg.ConfirmCooldownMS) && in.Confirm() {
		return gameOverConfirmed
	}
	if g.cfg.TimeoutMS > 0 && elapsed >= int64(g.cfg.TimeoutMS) {
		return gameOverTimedOut
	}
	return gameOverWaiting
}

// render draws the fixed screen. It only draws once per visit.
func (g *gameOver) render(dst core.Display) {
	if g.drawn {
		return
	}
	dst.Clear()
	dst.DrawText(20, 25, gameOverTitle)
	dst.DrawText(10, 40, gameOverPrompt)
	dst.Present()
	g.drawn = true
}
