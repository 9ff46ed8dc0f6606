package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/tone"
)

// newLogger opens the log destination: the --log-file if set, otherwise
// fallback. A nil fallback discards logs.
func newLogger(path string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}
	if w == nil {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	})
	return logger, closeFn, nil
}

// newTone combines the platform tone with the --tone-wav recorder.
func newTone(cfg config.Config, platform core.Tone) (core.Tone, func(), error) {
	if flagToneWAV == "" {
		return platform, func() {}, nil
	}

	rec, err := tone.CreateRecorder(flagToneWAV, cfg.Tone)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := rec.Close(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	if platform == nil {
		return rec, closeFn, nil
	}
	return tone.Multi{platform, rec}, closeFn, nil
}
