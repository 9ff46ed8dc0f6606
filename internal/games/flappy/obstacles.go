package flappy

import (
	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Pipe is the vertical obstacle pair with a gap for the bird to pass through.
type Pipe struct {
	X         int // Horizontal position (left edge)
	GapY      int // Y position where gap starts (top of gap)
	GapHeight int // Height of the passable gap
}

// TopRect returns the rectangle of the pipe above the gap.
func (p Pipe) TopRect(pipeWidth int) core.Rect {
	return core.NewRect(p.X, 0, pipeWidth, p.GapY)
}

// BottomRect returns the rectangle of the pipe below the gap.
func (p Pipe) BottomRect(pipeWidth, screenH int) core.Rect {
	bottomY := p.GapY + p.GapHeight
	return core.NewRect(p.X, bottomY, pipeWidth, screenH-bottomY)
}

// InGap reports whether a bird at y is inside the gap, edges included.
func (p Pipe) InGap(y int) bool {
	return y >= p.GapY && y <= p.GapY+p.GapHeight
}

// PipeManager moves the single pipe and recycles it once it has left the
// screen.
type PipeManager struct {
	pipe Pipe
	rng  core.RNG
	cfg  config.FlappyConfig
}

// NewPipeManager creates a pipe manager drawing gap positions from rng.
func NewPipeManager(cfg config.FlappyConfig, rng core.RNG) *PipeManager {
	pm := &PipeManager{
		rng: rng,
		cfg: cfg,
	}
	pm.Reset()
	return pm
}

// Reset puts the pipe at the right edge with a fresh gap.
func (pm *PipeManager) Reset() {
	pm.pipe = Pipe{
		X:         core.ScreenWidth,
		GapHeight: pm.cfg.GapHeight,
	}
	pm.placeGap()
}

// placeGap draws the gap top uniformly from [margin, height-gap-margin).
func (pm *PipeManager) placeGap() {
	margin := pm.cfg.GapMargin
	pm.pipe.GapY = pm.rng.IntRange(margin, core.ScreenHeight-pm.pipe.GapHeight-margin)
}

// Update moves the pipe left by one step. It returns true when the pipe was
// recycled to the right edge this call, which happens once per pass.
func (pm *PipeManager) Update() bool {
	pm.pipe.X -= pm.cfg.PipeStep
	if pm.pipe.X >= pm.cfg.RecycleX {
		return false
	}
	pm.pipe.X = core.ScreenWidth
	pm.placeGap()
	return true
}

// Pipe returns the current pipe.
func (pm *PipeManager) Pipe() Pipe {
	return pm.pipe
}
