package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/platform/window"
)

var (
	flagScale int
	flagMute  bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Start the console in a desktop window",
	Long: `Opens the console in a desktop window.

Besides the keyboard, the first connected gamepad is read: its left stick
acts as the analog joystick, the d-pad as buttons and the bottom face button
as the action button. Esc or Q closes the window.

Examples:
  arcade window
  arcade window --scale 8 --mute`,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 5, "Window pixels per display pixel")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Do not play beeps through the speakers")
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	recorder, closeTone, err := newTone(cfg, nil)
	if err != nil {
		return err
	}
	defer closeTone()

	if err := window.Run(window.Options{
		Config: cfg,
		Seed:   flagSeed,
		Scale:  flagScale,
		Mute:   flagMute,
		Tone:   recorder,
		Logger: logger,
	}); err != nil {
		logger.Error("window failed", "error", err)
		return err
	}
	return nil
}
