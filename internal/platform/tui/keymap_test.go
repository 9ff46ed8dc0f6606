package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runeKey('s'), core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestLatchHoldsForHoldTime(t *testing.T) {
	l := NewLatch(120 * time.Millisecond)

	l.Press(core.ActionConfirm, 1000)
	if !l.Frame(1000).Confirm() || !l.Frame(1119).Confirm() {
		t.Error("a press should be held for the hold time")
	}
	if l.Frame(1120).Confirm() {
		t.Error("a press should be released after the hold time")
	}
}

func TestLatchRepeatExtends(t *testing.T) {
	l := NewLatch(120 * time.Millisecond)

	// Key auto-repeat keeps the button down.
	for now := int64(0); now <= 300; now += 50 {
		l.Press(core.ActionUp, now)
	}
	if l.Frame(400).Y() != core.AxisNegative {
		t.Error("repeated presses should keep the direction held")
	}
	if l.Frame(420).Y() != core.AxisNeutral {
		t.Error("direction should be released once repeats stop")
	}
}

func TestLatchOppositeReleases(t *testing.T) {
	l := NewLatch(120 * time.Millisecond)

	l.Press(core.ActionLeft, 0)
	l.Press(core.ActionRight, 10)
	if l.Frame(20).X() != core.AxisPositive {
		t.Errorf("X = %v, expected the latest direction to win", l.Frame(20).X())
	}

	l.Press(core.ActionUp, 30)
	f := l.Frame(40)
	if f.X() != core.AxisPositive || f.Y() != core.AxisNegative {
		t.Error("perpendicular directions should be held together")
	}
}

func TestLatchIgnoresQuitAndNone(t *testing.T) {
	l := NewLatch(120 * time.Millisecond)
	l.Press(core.ActionQuit, 0)
	l.Press(core.ActionNone, 0)
	if len(l.Frame(0).Actions) != 0 {
		t.Error("quit and none should not be latched")
	}
}
