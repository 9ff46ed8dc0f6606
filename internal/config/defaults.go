package config

import (
	_ "embed"
)

//go:embed defaults/arcade.yaml
var defaultYAML []byte

// Default returns the built-in configuration, matching defaults/arcade.yaml.
func Default() Config {
	return Config{
		Input: InputConfig{
			AnalogLow:  1000,
			AnalogHigh: 3000,
			HoldMS:     120,
			PollMS:     10,
		},
		Menu: MenuConfig{
			MoveCooldownMS:    200,
			ConfirmCooldownMS: 300,
		},
		GameOver: GameOverConfig{
			ConfirmCooldownMS: 300,
			TimeoutMS:         0,
		},
		Tone: ToneConfig{
			DurationMS:  80,
			FrequencyHz: 2000,
		},
		Snake: SnakeConfig{
			CellSize:    4,
			Capacity:    100,
			IntervalMS:  150,
			Start:       PointYAML{X: 10, Y: 10},
			StartLength: 3,
		},
		Flappy: FlappyConfig{
			FrameMS:     40,
			Gravity:     1,
			FlapImpulse: -4,
			BirdX:       15,
			BirdSize:    5,
			PipeWidth:   10,
			PipeStep:    2,
			RecycleX:    -10,
			ProximityX:  20,
			GapHeight:   20,
			GapMargin:   10,
		},
		Bounce: BounceConfig{
			FrameMS:  40,
			Speed:    2,
			BallSize: 5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
