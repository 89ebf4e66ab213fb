package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/drills/internal/model"
)

func writeConfig(t *testing.T, body string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "drills", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestConfigFileAppliesWithoutFlags(t *testing.T) {
	writeConfig(t, "[maths]\ndifficulty = \"hard\"\nfeedback-delay-ms = 200\n[typing]\nauto-indent = false\n")
	cmd := newRootCmd()
	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	cfg, err := loadAppConfig(cmd, "")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Maths.Difficulty != model.Hard {
		t.Fatalf("expected hard, got %s", cfg.Maths.Difficulty)
	}
	if cfg.Maths.FeedbackDelay != 200*time.Millisecond {
		t.Fatalf("expected 200ms delay, got %s", cfg.Maths.FeedbackDelay)
	}
	if cfg.Typing.AutoIndent {
		t.Fatalf("expected auto-indent disabled by config")
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	writeConfig(t, "[maths]\ndifficulty = \"hard\"\n")
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--difficulty", "medium"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	cfg, err := loadAppConfig(cmd, "")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Maths.Difficulty != model.Medium {
		t.Fatalf("expected medium, got %s", cfg.Maths.Difficulty)
	}
}

func TestForcedViewWins(t *testing.T) {
	writeConfig(t, "[app]\nstart-view = \"maths\"\n")
	cmd := newRootCmd()
	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	cfg, err := loadAppConfig(cmd, model.ViewTyping)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StartView != model.ViewTyping {
		t.Fatalf("expected typing, got %s", cfg.StartView)
	}
}

func TestValidateConfigRejectsBadValues(t *testing.T) {
	base := appConfig{
		StartView: model.ViewMaths,
		Maths:     model.MathsConfig{Difficulty: model.Easy},
	}
	if err := validateConfig(base); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
	cases := map[string]func(*appConfig){
		"view":       func(c *appConfig) { c.StartView = "chess" },
		"difficulty": func(c *appConfig) { c.Maths.Difficulty = "insane" },
		"category":   func(c *appConfig) { c.Maths.Category = "modulo" },
		"delay":      func(c *appConfig) { c.Maths.FeedbackDelay = -time.Second },
	}
	for name, mutate := range cases {
		cfg := base
		mutate(&cfg)
		if err := validateConfig(cfg); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
