package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/brickout/internal/config"
)

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brickout.log")

	logger, closeLog, err := newLogger(path, "debug")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Debug("hello", "n", 1)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello") || !strings.Contains(string(data), "brickout") {
		t.Errorf("log file = %q", data)
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	if _, _, err := newLogger("", "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestConfigCommandDefault(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "--default"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		flagDefaultConfig = false
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out.String() != string(config.DefaultYAML()) {
		t.Errorf("config --default output differs from embedded defaults")
	}
}

func TestConfigCommandAppliesDifficulty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "--difficulty", "hard"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		flagDifficulty = ""
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	cfg, err := config.Parse(out.Bytes())
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if cfg.Gameplay.Lives != 2 {
		t.Errorf("lives = %d, want 2 for hard", cfg.Gameplay.Lives)
	}
}

func TestLoadGameConfigRejectsBadDifficulty(t *testing.T) {
	flagDifficulty = "nightmare"
	t.Cleanup(func() { flagDifficulty = "" })

	if _, err := loadGameConfig(); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}
