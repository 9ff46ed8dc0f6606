package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Panel layout: two pixel rows per text row, plus border, status and help.
const (
	PanelWidth  = core.ScreenWidth + 2
	PanelHeight = core.ScreenHeight/2 + 2
	MinWidth    = PanelWidth
	MinHeight   = PanelHeight + 2
)

// halfBlocks is indexed by top | bottom<<1.
var halfBlocks = [4]rune{' ', '▀', '▄', '█'}

// RenderFrame converts the presented frame to text, packing two pixel rows
// into each line with half-block characters.
func RenderFrame(fb *core.Framebuffer) string {
	var sb strings.Builder
	sb.Grow((fb.Width()*3 + 1) * fb.Height() / 2)

	for y := 0; y < fb.Height(); y += 2 {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range fb.Width() {
			i := 0
			if fb.Pixel(x, y) {
				i |= 1
			}
			if fb.Pixel(x, y+1) {
				i |= 2
			}
			sb.WriteRune(halfBlocks[i])
		}
	}
	return sb.String()
}

// RenderPanel draws the frame inside the theme's panel.
func RenderPanel(fb *core.Framebuffer, theme Theme) string {
	return theme.Panel.Render(RenderFrame(fb))
}

// CheckSize reports whether a terminal of w x h cells can show the panel.
func CheckSize(w, h int) error {
	if w < MinWidth || h < MinHeight {
		return fmt.Errorf("tui: terminal is %dx%d, need at least %dx%d: %w",
			w, h, MinWidth, MinHeight, core.ErrDisplayInit)
	}
	return nil
}
