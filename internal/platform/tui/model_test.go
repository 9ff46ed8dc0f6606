package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/bounce"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/snake"
	"github.com/vovakirdan/pocket-arcade/internal/session"
)

func newTestModel(t *testing.T) (Model, *core.ManualClock) {
	t.Helper()
	clock := &core.ManualClock{}
	m := newModel(Options{
		Config:        config.Default(),
		Seed:          1,
		ScreenshotDir: t.TempDir(),
	}, clock)
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelTicksSupervisor(t *testing.T) {
	m, clock := newTestModel(t)

	if m.Init() == nil {
		t.Fatal("Init should schedule the first poll")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("each tick should schedule the next one")
	}
	if m.Supervisor().Menu().Selected() != 1 {
		t.Fatalf("selected = %d, expected 1", m.Supervisor().Menu().Selected())
	}

	// The latched key is released before the move cooldown ends.
	clock.Advance(200)
	m, _ = update(t, m, TickMsg(time.Now()))
	if m.Supervisor().Menu().Selected() != 1 {
		t.Fatalf("released key moved the selection")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg(time.Now()))
	if m.Supervisor().Mode() != session.ModePlayingFlappy {
		t.Errorf("mode = %v, expected PlayingFlappy", m.Supervisor().Mode())
	}
	if !strings.Contains(m.statusLine(), "Flappy Bird") {
		t.Errorf("status = %q", m.statusLine())
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, TickMsg(time.Now()))

	view := m.View()
	if !strings.Contains(view, "╭") || !strings.Contains(view, "select a game") {
		t.Errorf("view is missing the panel or status:\n%s", view)
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should include the help footer")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("small terminals should get a resize hint")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: MinWidth, Height: MinHeight})
	if strings.Contains(m.View(), "Terminal too small") {
		t.Error("minimum size should show the console")
	}
}

func TestModelQuit(t *testing.T) {
	var buf bytes.Buffer
	m := newModel(Options{
		Config:        config.Default(),
		Seed:          1,
		Logger:        log.New(&buf),
		ScreenshotDir: t.TempDir(),
	}, &core.ManualClock{})
	m, _ = update(t, m, TickMsg(time.Now()))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
	if out := buf.String(); !strings.Contains(out, "console closed") || !strings.Contains(out, "frames=1") {
		t.Errorf("quit should log the session totals, got %q", out)
	}
}

func TestModelScreenshot(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, TickMsg(time.Now()))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.HasPrefix(m.notice, "saved ") {
		t.Fatalf("notice = %q", m.notice)
	}

	matches, err := filepath.Glob(filepath.Join(m.shotDir, "menu_*.png"))
	if err != nil || len(matches) != 1 {
		t.Errorf("expected one menu screenshot, found %v (%v)", matches, err)
	}
}
