package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickout/internal/config"
	"github.com/vovakirdan/brickout/internal/core"
	"github.com/vovakirdan/brickout/internal/games/brickout"
	"github.com/vovakirdan/brickout/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play brickout",
	Long: `Start a game of brickout.

Controls:
  Left/A, Right/D  - Move the paddle
  Mouse drag       - Move the paddle
  Space/Click      - Launch the ball, dismiss the lose prompt
  P/Esc            - Pause
  R                - New game (after a win)
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, wider paddle, slower ball
  normal - Values from the config file
  hard   - 2 lives, narrower paddle, faster ball`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil { //#nosec G115 -- fd fits in int
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("starting",
		"size", fmt.Sprintf("%dx%d", width, height),
		"fps", flagFPS,
		"difficulty", flagDifficulty,
		"lives", gameCfg.Gameplay.Lives,
	)

	game := brickout.New(
		brickout.WithConfig(gameCfg),
		brickout.WithLogger(logger),
	)

	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("exited", "score", game.State().Score)
	return nil
}

// loadGameConfig loads the config file and applies the difficulty flag.
func loadGameConfig() (config.BrickoutConfig, error) {
	if flagFPS <= 0 {
		return config.BrickoutConfig{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.BrickoutConfig{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.BrickoutConfig{}, err
	}
	config.ApplyBrickoutPreset(&cfg, preset)
	return cfg, nil
}
