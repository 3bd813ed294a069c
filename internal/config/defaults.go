package config

import (
	_ "embed"
)

//go:embed defaults/brickout.yaml
var defaultBrickoutYAML []byte

// DefaultBrickoutConfig returns the built-in configuration.
// It mirrors defaults/brickout.yaml and is used when that file cannot be parsed.
func DefaultBrickoutConfig() BrickoutConfig {
	return BrickoutConfig{
		Bricks: BrickoutBricks{
			Rows:         5,
			Columns:      9,
			MaxWidth:     7,
			TopOffset:    2,
			PointsPerHit: 10,
		},
		Paddle: BrickoutPaddle{
			Width:        11,
			KeyStep:      2.0,
			BottomOffset: 1,
		},
		Ball: BrickoutBall{
			Speed:          0.3,
			MaxBounceAngle: 60,
			LaunchAngle:    20,
		},
		Gameplay: BrickoutGameplay{
			Lives: 3,
		},
		WinAnimation: BrickoutAnimation{
			AngularFrequency: 6.0,
			Damping:          0.35,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBrickoutYAML
}
