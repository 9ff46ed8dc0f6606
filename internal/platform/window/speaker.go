package window

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/tone"
)

// Speaker plays the buzzer pulse through the system audio device.
type Speaker struct {
	player *audio.Player
	log    *log.Logger
}

// NewSpeaker prepares the pulse. Ebitengine allows one audio context per
// process, so an existing one is reused.
func NewSpeaker(cfg config.ToneConfig, logger *log.Logger) *Speaker {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(tone.SampleRate)
	}
	logger.Debug("speaker ready", "pulse", cfg.Duration(), "frequency", cfg.FrequencyHz)
	return &Speaker{
		player: ctx.NewPlayerFromBytes(tone.StereoPCM16(tone.Pulse(cfg))),
		log:    logger,
	}
}

// Beep restarts the pulse without waiting for it to finish.
func (s *Speaker) Beep() {
	if err := s.player.SetPosition(0); err != nil {
		s.log.Warn("cannot rewind beep", "error", err)
	}
	s.player.Play()
}
