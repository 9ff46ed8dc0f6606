// Package window runs the console in a desktop window with Ebitengine. The
// window reads the keyboard and the first standard-layout gamepad, whose left
// stick is treated like the analog joystick of the handheld.
package window

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/session"
	"github.com/vovakirdan/pocket-arcade/internal/tone"
)

// Title is the window title.
const Title = "Pocket Arcade"

// Options configure the window.
type Options struct {
	Config config.Config
	Seed   int64 // 0 draws a seed from the clock
	Scale  int   // Window pixels per display pixel
	Mute   bool
	Tone   core.Tone // Played along with the speaker, may be nil
	Logger *log.Logger
}

// Game implements ebiten.Game around a supervisor.
type Game struct {
	sup        *session.Supervisor
	fb         *core.Framebuffer
	thresholds core.AnalogThresholds
	pixels     []byte
	pads       []ebiten.GamepadID
	input      func() core.InputFrame
	started    bool // Set by the first Update
	log        *log.Logger
}

// NewGame creates the window game in Menu mode.
func NewGame(opts Options) *Game {
	seed := opts.Seed
	if seed == 0 {
		seed = core.EntropySeed()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var tones tone.Multi
	if !opts.Mute {
		tones = append(tones, NewSpeaker(opts.Config.Tone, logger))
	}
	if opts.Tone != nil {
		tones = append(tones, opts.Tone)
	}

	fb := core.NewFramebuffer()
	g := &Game{
		sup: session.New(session.Options{
			Config:  opts.Config,
			Display: fb,
			Tone:    tones,
			RNG:     core.NewRandom(seed),
			Logger:  logger,
		}),
		fb:         fb,
		thresholds: opts.Config.Input.Thresholds(),
		pixels:     make([]byte, core.ScreenWidth*core.ScreenHeight*4),
		log:        logger,
	}
	g.input = g.poll
	return g
}

// Update polls the controls and runs one supervisor tick.
func (g *Game) Update() error {
	g.started = true
	in := g.input()
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	g.sup.Tick(in)
	return nil
}

// Draw copies the presented frame to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	fillRGBA(g.pixels, g.fb)
	screen.WritePixels(g.pixels)
}

// Layout fixes the logical screen at the display resolution.
func (g *Game) Layout(_, _ int) (int, int) {
	return core.ScreenWidth, core.ScreenHeight
}

// fillRGBA expands the monochrome frame into RGBA pixels.
func fillRGBA(dst []byte, fb *core.Framebuffer) {
	for y := range fb.Height() {
		for x := range fb.Width() {
			var v byte
			if fb.Pixel(x, y) {
				v = 0xff
			}
			i := (y*fb.Width() + x) * 4
			dst[i], dst[i+1], dst[i+2], dst[i+3] = v, v, v, 0xff
		}
	}
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	scale := max(opts.Scale, 1)
	ebiten.SetWindowSize(core.ScreenWidth*scale, core.ScreenHeight*scale)
	ebiten.SetWindowTitle(Title)
	ebiten.SetTPS(1000 / max(opts.Config.Input.PollMS, 1))

	g := NewGame(opts)
	g.log.Info("window opened", "scale", scale)

	return g.runError(ebiten.RunGame(g))
}

// runError classifies the result of RunGame. Only a window that never
// reached its first update failed to initialise the display.
func (g *Game) runError(err error) error {
	switch {
	case err == nil, errors.Is(err, ebiten.Termination):
		return nil
	case !g.started:
		return fmt.Errorf("window: %w: %w", core.ErrDisplayInit, err)
	default:
		g.log.Error("window stopped", "error", err)
		return fmt.Errorf("window: %w", err)
	}
}
