package session

import (
	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

const (
	menuLineHeight = 13
	menuMarker     = "> "
	menuBlank      = "  "
)

// MenuEvent is the outcome of one menu poll.
type MenuEvent int

const (
	MenuIdle MenuEvent = iota
	MenuMoved
	MenuConfirmed
)

// Menu owns the selected-game index. Selection wraps in both directions.
//
// The input source has no edge detection, so every accepted event starts a
// cooldown during which further input is ignored.
type Menu struct {
	games    []registry.GameInfo
	selected int
	cfg      config.MenuConfig
	until    int64 // Input is ignored while now < until
}

// NewMenu creates a menu over the given games, in order.
func NewMenu(games []registry.GameInfo, cfg config.MenuConfig) *Menu {
	return &Menu{games: games, cfg: cfg}
}

// Len returns the number of entries.
func (m *Menu) Len() int {
	return len(m.games)
}

// Selected returns the selected index.
func (m *Menu) Selected() int {
	return m.selected
}

// SelectedGame returns the selected entry.
func (m *Menu) SelectedGame() registry.GameInfo {
	return m.games[m.selected]
}

// Next moves the selection forward, wrapping to the first entry.
func (m *Menu) Next() {
	if len(m.games) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.games)
}

// Prev moves the selection back, wrapping to the last entry.
func (m *Menu) Prev() {
	if len(m.games) == 0 {
		return
	}
	m.selected = (m.selected - 1 + len(m.games)) % len(m.games)
}

// Hold ignores input until now+ms.
func (m *Menu) Hold(now int64, ms int) {
	m.until = now + int64(ms)
}

// HandleInput consumes one poll. A vertical deflection takes precedence
// over confirm when both are present.
func (m *Menu) HandleInput(in core.InputFrame, now int64) MenuEvent {
	if now < m.until || len(m.games) == 0 {
		return MenuIdle
	}

	switch in.Y() {
	case core.AxisNegative:
		m.Prev()
		m.Hold(now, m.cfg.MoveCooldownMS)
		return MenuMoved
	case core.AxisPositive:
		m.Next()
		m.Hold(now, m.cfg.MoveCooldownMS)
		return MenuMoved
	}

	if in.Confirm() {
		m.Hold(now, m.cfg.ConfirmCooldownMS)
		return MenuConfirmed
	}
	return MenuIdle
}

// Render draws one line per game with a marker on the selection.
func (m *Menu) Render(dst core.Display) {
	dst.Clear()
	for i, g := range m.games {
		prefix := menuBlank
		if i == m.selected {
			prefix = menuMarker
		}
		dst.DrawText(0, i*menuLineHeight, prefix+g.Title)
	}
}
