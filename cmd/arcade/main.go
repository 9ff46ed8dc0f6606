// arcade is a pocket handheld console with three games (Snake, Flappy Bird
// and Bounce Ball) on a 128x64 monochrome display, emulated in the terminal
// or a desktop window.
//
// Usage:
//
//	arcade                   - Start the console in this terminal
//	arcade window            - Start the console in a desktop window
//	arcade serve             - Start SSH server for remote play
//	arcade list              - List available games
//	arcade config            - Print the default configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a specific configuration file
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
//	--tone-wav <path>    - Record every beep to a WAV file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/pocket-arcade/internal/games/bounce"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/snake"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/platform/tui"
	"github.com/vovakirdan/pocket-arcade/internal/tone"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
	flagToneWAV  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Pocket Arcade - a 128x64 handheld in your terminal",
	Long: `Pocket Arcade emulates a small handheld console: a menu and three
games drawn on a 128x64 monochrome display.

Controls:
  Up/Down (W/S)      - Move the menu selection, steer
  Left/Right (A/D)   - Steer
  Enter/Space        - Button: start, flap, continue
  Ctrl+S             - Save a PNG screenshot
  Ctrl+Y             - Copy the frame to the clipboard
  Q/Ctrl+C           - Quit

Examples:
  arcade
  arcade --seed 42
  arcade --config ./arcade.yaml --tone-wav beeps.wav
  arcade window --scale 6
  arcade serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runConsole,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagToneWAV, "tone-wav", "", "Record every beep to this WAV file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConsole(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// The console owns the screen, so logs only go to a file.
	logger, closeLog, err := newLogger(flagLogFile, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := tui.CheckTerminal(int(os.Stdout.Fd())); err != nil {
		logger.Error("display init failed", "error", err)
		return err
	}

	beeper, closeTone, err := newTone(cfg, tone.NewBell(os.Stderr))
	if err != nil {
		return err
	}
	defer closeTone()

	return tui.Run(tui.Options{
		Config: cfg,
		Seed:   flagSeed,
		Tone:   beeper,
		Logger: logger,
	})
}
