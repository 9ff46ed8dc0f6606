// Package session implements the top-level state machine of the console:
// the menu, the active game and the Game-Over screen. A Supervisor is
// single-threaded; the platform calls Tick once per poll and never from two
// goroutines at once.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// Options are the collaborators of a Supervisor. Nil fields get defaults:
// the system clock, a silent tone, an entropy-seeded RNG and a discarding
// logger. Display is required.
type Options struct {
	Config  config.Config
	Display core.Display
	Clock   core.Clock
	Tone    core.Tone
	RNG     core.RNG
	Logger  *log.Logger
}

// phase is the payload of the current mode. Only the active phase holds
// state, so a game and the Game-Over screen can never be live together.
type phase interface {
	mode() Mode
}

type menuPhase struct{}

func (menuPhase) mode() Mode { return ModeMenu }

type playPhase struct {
	m    Mode
	game registry.Game
	gate core.Gate
}

func (p *playPhase) mode() Mode { return p.m }

type overPhase struct {
	screen *gameOver
}

func (overPhase) mode() Mode { return ModeGameOver }

// debugStater is implemented by engines that can summarise their state.
type debugStater interface {
	DebugState() string
}

// Result describes the last finished run.
type Result struct {
	GameID string
	Score  int
}

// Supervisor dispatches each tick to the menu, the active game or the
// Game-Over screen.
type Supervisor struct {
	cfg     config.Config
	display core.Display
	clock   core.Clock
	tone    core.Tone
	rng     core.RNG
	log     *log.Logger

	menu  *Menu
	phase phase
	last  Result
	runs  int
}

// New creates a supervisor in Menu mode.
func New(opts Options) *Supervisor {
	if opts.Clock == nil {
		opts.Clock = core.NewSystemClock()
	}
	if opts.Tone == nil {
		opts.Tone = core.NopTone{}
	}
	if opts.RNG == nil {
		opts.RNG = core.NewRandom(core.EntropySeed())
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	menu := NewMenu(registry.List(), opts.Config.Menu)
	opts.Logger.Debug("menu ready", "games", menu.Len())

	return &Supervisor{
		cfg:     opts.Config,
		display: opts.Display,
		clock:   opts.Clock,
		tone:    opts.Tone,
		rng:     opts.RNG,
		log:     opts.Logger,
		menu:    menu,
		phase:   menuPhase{},
	}
}

// Mode returns the active mode.
func (s *Supervisor) Mode() Mode {
	return s.phase.mode()
}

// Menu returns the menu controller.
func (s *Supervisor) Menu() *Menu {
	return s.menu
}

// Active returns the running game, or nil outside the Playing modes.
func (s *Supervisor) Active() registry.Game {
	if p, ok := s.phase.(*playPhase); ok {
		return p.game
	}
	return nil
}

// LastResult returns the outcome of the most recent finished run.
func (s *Supervisor) LastResult() Result {
	return s.last
}

// Runs returns how many games have been started.
func (s *Supervisor) Runs() int {
	return s.runs
}

// Tick runs one poll of the state machine.
func (s *Supervisor) Tick(in core.InputFrame) {
	now := s.clock.Millis()

	switch p := s.phase.(type) {
	case menuPhase:
		s.tickMenu(in, now)
	case *playPhase:
		s.tickPlay(p, in, now)
	case overPhase:
		s.tickGameOver(p, in, now)
	}
}

func (s *Supervisor) tickMenu(in core.InputFrame, now int64) {
	switch s.menu.HandleInput(in, now) {
	case MenuMoved:
		s.tone.Beep()
		s.log.Debug("menu selection", "index", s.menu.Selected(), "game", s.menu.SelectedGame().Title)
	case MenuConfirmed:
		s.tone.Beep()
		if s.start(s.menu.SelectedGame().ID, now) {
			return
		}
	}

	s.menu.Render(s.display)
	s.display.Present()
}

// start creates a fresh engine and switches to its Playing mode.
func (s *Supervisor) start(id string, now int64) bool {
	mode, ok := playingMode(id)
	if !ok {
		s.log.Error("no playing mode for game", "game", id)
		return false
	}
	game, err := registry.Create(id, registry.Deps{Config: s.cfg, RNG: s.rng})
	if err != nil {
		s.log.Error("could not start game", "error", err)
		return false
	}

	game.Reset()
	game.Render(s.display)
	s.display.Present()

	s.phase = &playPhase{m: mode, game: game, gate: core.NewGate(game.Interval(), now)}
	s.runs++
	s.log.Info("game started", "game", id, "mode", mode)
	return true
}

func (s *Supervisor) tickPlay(p *playPhase, in core.InputFrame, now int64) {
	p.game.Sample(in)
	if !p.gate.Due(now) {
		return
	}

	res := p.game.Step(in)
	if res.State.GameOver {
		s.last = Result{GameID: p.game.ID(), Score: res.State.Score}
		s.log.Info("game over", "game", s.last.GameID, "score", s.last.Score)
		if d, ok := p.game.(debugStater); ok {
			s.log.Debug("final state", "game", s.last.GameID, "state", d.DebugState())
		}
		over := overPhase{screen: newGameOver(s.cfg.GameOver, now)}
		s.phase = over
		over.screen.render(s.display)
		return
	}

	p.game.Render(s.display)
	s.display.Present()
}

func (s *Supervisor) tickGameOver(p overPhase, in core.InputFrame, now int64) {
	p.screen.render(s.display)

	switch p.screen.poll(in, now) {
	case gameOverConfirmed:
		s.tone.Beep()
		s.menu.Hold(now, s.cfg.GameOver.ConfirmCooldownMS)
	case gameOverTimedOut:
		s.log.Debug("game over screen timed out")
	default:
		return
	}

	s.phase = menuPhase{}
	s.log.Info("back to menu")
	s.menu.Render(s.display)
	s.display.Present()
}
