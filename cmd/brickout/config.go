package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickout/internal/config"
)

var flagDefaultConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration brickout would play with, after the config
search (--config, ~/.brickout/brickout.yaml, ./configs/brickout.yaml) and
the --difficulty preset are applied.

Use --default to print the built-in defaults instead, e.g. as a starting
point for a custom config file.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the built-in default configuration")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaultConfig {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
