package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles of the console chrome around the display.
type Theme struct {
	Panel  lipgloss.Style // Border around the 128x64 display
	Status lipgloss.Style // Mode and score line
	Notice lipgloss.Style // Screenshot and clipboard results
	Warn   lipgloss.Style // Resize hint
}

// DefaultTheme returns a monochrome theme: white pixels on the terminal
// background, grey chrome.
func DefaultTheme() Theme {
	return Theme{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("15")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		Notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")),
		Warn: lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")).
			Bold(true),
	}
}
