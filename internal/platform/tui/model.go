package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/session"
)

// Options configure one console.
type Options struct {
	Config        config.Config
	Seed          int64 // 0 draws a seed from the clock
	Tone          core.Tone
	Logger        *log.Logger
	ScreenshotDir string
}

// Model is the Bubble Tea model of one console. It owns a supervisor and
// the framebuffer the supervisor draws into.
type Model struct {
	sup      *session.Supervisor
	fb       *core.Framebuffer
	clock    core.Clock
	keys     KeyMap
	theme    Theme
	help     help.Model
	latch    *Latch
	poll     time.Duration
	shotDir  string
	log      *log.Logger
	width    int
	height   int
	notice   string
	quitting bool
}

// NewModel creates a console in Menu mode.
func NewModel(opts Options) Model {
	return newModel(opts, core.NewSystemClock())
}

func newModel(opts Options, clock core.Clock) Model {
	seed := opts.Seed
	if seed == 0 {
		seed = core.EntropySeed()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	dir := opts.ScreenshotDir
	if dir == "" {
		dir = ScreenshotDir()
	}

	fb := core.NewFramebuffer()
	sup := session.New(session.Options{
		Config:  opts.Config,
		Display: fb,
		Clock:   clock,
		Tone:    opts.Tone,
		RNG:     core.NewRandom(seed),
		Logger:  logger,
	})
	logger.Debug("console ready", "seed", seed)

	return Model{
		sup:     sup,
		fb:      fb,
		clock:   clock,
		keys:    DefaultKeyMap(),
		theme:   DefaultTheme(),
		help:    help.New(),
		latch:   NewLatch(opts.Config.Input.Hold()),
		poll:    opts.Config.Input.Poll(),
		shotDir: dir,
		log:     logger,
	}
}

// Supervisor returns the state machine driven by this console.
func (m Model) Supervisor() *session.Supervisor {
	return m.sup
}

// Init starts the poll loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.poll)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.sup.Tick(m.latch.Frame(m.clock.Millis()))
		return m, tickCmd(m.poll)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.log.Info("console closed", "runs", m.sup.Runs(), "frames", m.fb.Frames())
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.notice = m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.notice = "frame copied"
		if err := CopyFrame(m.fb); err != nil {
			m.log.Warn("copy failed", "error", err)
			m.notice = "copy failed"
		}
		return m, nil
	}

	m.latch.Press(m.keys.Action(msg), m.clock.Millis())
	return m, nil
}

// saveScreenshot writes a PNG of the current frame and returns a notice.
func (m Model) saveScreenshot() string {
	label := "menu"
	if g := m.sup.Active(); g != nil {
		label = g.ID()
	}
	path := ScreenshotPath(m.shotDir, label, time.Now())
	if err := SavePNG(m.fb, path, m.statusLine()); err != nil {
		m.log.Warn("screenshot failed", "error", err)
		return "screenshot failed"
	}
	m.log.Info("screenshot saved", "path", path)
	return "saved " + path
}

// statusLine describes the current mode.
func (m Model) statusLine() string {
	switch mode := m.sup.Mode(); {
	case mode == session.ModeMenu:
		return "select a game"
	case mode.Playing():
		g := m.sup.Active()
		return fmt.Sprintf("%s  score %d", g.Title(), g.State().Score)
	default:
		res := m.sup.LastResult()
		return fmt.Sprintf("game over  %s  score %d  run %d", res.GameID, res.Score, m.sup.Runs())
	}
}

// View renders the console.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width > 0 {
		if err := CheckSize(m.width, m.height); err != nil {
			return m.theme.Warn.Render(fmt.Sprintf("Terminal too small: %dx%d, need %dx%d.",
				m.width, m.height, MinWidth, MinHeight))
		}
	}

	status := m.theme.Status.Render(m.statusLine())
	if m.notice != "" {
		status += "  " + m.theme.Notice.Render(m.notice)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderPanel(m.fb, m.theme),
		status,
		m.help.View(m.keys),
	)
}

// CheckTerminal verifies that fd is a terminal large enough for the panel.
func CheckTerminal(fd int) error {
	if !term.IsTerminal(fd) {
		return fmt.Errorf("tui: output is not a terminal: %w", core.ErrDisplayInit)
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("tui: %w: read terminal size: %w", core.ErrDisplayInit, err)
	}
	return CheckSize(w, h)
}

// Run starts the console in the current terminal and blocks until it quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
