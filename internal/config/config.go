// Package config provides YAML-based game configuration loading and
// difficulty presets for brickout.
package config

import (
	"fmt"
	"strings"
)

// BrickoutConfig contains all tunable parameters of the game.
type BrickoutConfig struct {
	Bricks       BrickoutBricks    `yaml:"bricks"`
	Paddle       BrickoutPaddle    `yaml:"paddle"`
	Ball         BrickoutBall      `yaml:"ball"`
	Gameplay     BrickoutGameplay  `yaml:"gameplay"`
	WinAnimation BrickoutAnimation `yaml:"win_animation"`
}

// BrickoutBricks defines the brick grid.
type BrickoutBricks struct {
	Rows         int `yaml:"rows"`
	Columns      int `yaml:"columns"`
	MaxWidth     int `yaml:"max_width"`      // Widest a brick may get, in cells
	TopOffset    int `yaml:"top_offset"`     // Empty rows between the ceiling and the first brick row
	PointsPerHit int `yaml:"points_per_hit"` // Awarded on every hit regardless of tier
}

// BrickoutPaddle defines the paddle.
type BrickoutPaddle struct {
	Width        int     `yaml:"width"`
	KeyStep      float64 `yaml:"key_step"`      // Cells moved per arrow key press
	BottomOffset int     `yaml:"bottom_offset"` // Rows between the paddle and the playfield bottom
}

// BrickoutBall defines ball motion.
type BrickoutBall struct {
	Speed          float64 `yaml:"speed"`            // Cells per tick
	MaxBounceAngle float64 `yaml:"max_bounce_angle"` // Degrees from vertical at the paddle edge
	LaunchAngle    float64 `yaml:"launch_angle"`     // Degrees from vertical when served
}

// BrickoutGameplay defines round rules.
type BrickoutGameplay struct {
	Lives int `yaml:"lives"`
}

// BrickoutAnimation configures the spring behind the win banner.
type BrickoutAnimation struct {
	AngularFrequency float64 `yaml:"angular_frequency"`
	Damping          float64 `yaml:"damping"`
}

// Validate reports the first setting that would make the game unplayable.
func (c BrickoutConfig) Validate() error {
	switch {
	case c.Bricks.Rows <= 0:
		return fmt.Errorf("bricks.rows must be positive, got %d", c.Bricks.Rows)
	case c.Bricks.Columns <= 0:
		return fmt.Errorf("bricks.columns must be positive, got %d", c.Bricks.Columns)
	case c.Bricks.MaxWidth <= 0:
		return fmt.Errorf("bricks.max_width must be positive, got %d", c.Bricks.MaxWidth)
	case c.Bricks.TopOffset < 0:
		return fmt.Errorf("bricks.top_offset must not be negative, got %d", c.Bricks.TopOffset)
	case c.Bricks.PointsPerHit < 0:
		return fmt.Errorf("bricks.points_per_hit must not be negative, got %d", c.Bricks.PointsPerHit)
	case c.Paddle.Width <= 0:
		return fmt.Errorf("paddle.width must be positive, got %d", c.Paddle.Width)
	case c.Paddle.KeyStep <= 0:
		return fmt.Errorf("paddle.key_step must be positive, got %g", c.Paddle.KeyStep)
	case c.Paddle.BottomOffset < 0:
		return fmt.Errorf("paddle.bottom_offset must not be negative, got %d", c.Paddle.BottomOffset)
	case c.Ball.Speed <= 0:
		return fmt.Errorf("ball.speed must be positive, got %g", c.Ball.Speed)
	case c.Ball.MaxBounceAngle <= 0 || c.Ball.MaxBounceAngle >= 90:
		return fmt.Errorf("ball.max_bounce_angle must be in (0, 90), got %g", c.Ball.MaxBounceAngle)
	case c.Ball.LaunchAngle < 0 || c.Ball.LaunchAngle >= 90:
		return fmt.Errorf("ball.launch_angle must be in [0, 90), got %g", c.Ball.LaunchAngle)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("gameplay.lives must be positive, got %d", c.Gameplay.Lives)
	case c.WinAnimation.AngularFrequency <= 0:
		return fmt.Errorf("win_animation.angular_frequency must be positive, got %g", c.WinAnimation.AngularFrequency)
	case c.WinAnimation.Damping < 0:
		return fmt.Errorf("win_animation.damping must not be negative, got %g", c.WinAnimation.Damping)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. The empty string means
// "no preset" and is not an error.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyBrickoutPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyBrickoutPreset(cfg *BrickoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width += 4
		cfg.Ball.Speed *= 0.75
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = max(cfg.Paddle.Width-3, 3)
		cfg.Ball.Speed *= 1.4
	}
}
