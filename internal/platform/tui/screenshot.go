package tui

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Screenshot layout, in output pixels.
const (
	ShotScale   = 4
	shotCaption = 24
	shotFontPt  = 14
)

// ScreenshotDir returns the default screenshot directory, ~/.arcade/screenshots.
func ScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".arcade", "screenshots")
}

// ScreenshotPath returns a timestamped file name in dir.
func ScreenshotPath(dir, label string, at time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.png", label, at.Format("20060102_150405")))
}

// SavePNG writes the presented frame to path, scaled up, with caption
// printed below it. An empty caption leaves no caption strip.
func SavePNG(fb *core.Framebuffer, path, caption string) error {
	w := fb.Width() * ShotScale
	h := fb.Height() * ShotScale
	if caption != "" {
		h += shotCaption
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(color.Black)
	dc.Clear()

	dc.SetColor(color.White)
	for y := range fb.Height() {
		for x := range fb.Width() {
			if fb.Pixel(x, y) {
				dc.DrawRectangle(float64(x*ShotScale), float64(y*ShotScale), ShotScale, ShotScale)
			}
		}
	}
	dc.Fill()

	if caption != "" {
		ttf, err := truetype.Parse(gomono.TTF)
		if err != nil {
			return fmt.Errorf("tui: parse caption font: %w", err)
		}
		dc.SetFontFace(truetype.NewFace(ttf, &truetype.Options{
			Size:    shotFontPt,
			DPI:     72,
			Hinting: font.HintingFull,
		}))
		dc.SetColor(color.Gray{Y: 0xa0})
		dc.DrawStringAnchored(caption, float64(w)/2, float64(h-shotCaption/2), 0.5, 0.5)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("tui: create screenshot directory: %w", err)
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("tui: save screenshot: %w", err)
	}
	return nil
}

// CopyFrame puts the presented frame on the system clipboard as text.
func CopyFrame(fb *core.Framebuffer) error {
	if err := clipboard.WriteAll(RenderFrame(fb)); err != nil {
		return fmt.Errorf("tui: copy frame: %w", err)
	}
	return nil
}
