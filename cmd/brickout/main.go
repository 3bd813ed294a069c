// brickout is a brick-breaking arcade game for the terminal.
//
// Usage:
//
//	brickout                 - Play (same as "brickout play")
//	brickout play            - Play
//	brickout config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible brick layouts
//	--config <path>       - Load a custom config YAML
//	--difficulty <name>   - Apply a preset: easy, normal, hard
//	--log-file <path>     - Write logs to a file (the game owns the terminal)
//	--log-level <level>   - debug, info, warn, error (default: info)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("brickout failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickout",
	Short: "Brickout - break bricks in your terminal",
	Long: `Brickout is a terminal brick-breaking game. Bounce the ball off the
paddle, break every brick, and don't let the ball fall past the paddle.

Tougher bricks take more hits: green 1, yellow 2, blue 3, red 4, purple 5.

Examples:
  brickout
  brickout --difficulty hard
  brickout --seed 42 --log-file brickout.log --log-level debug
  brickout config --default > ~/.brickout/brickout.yaml`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
