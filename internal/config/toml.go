// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	App    AppConfig    `toml:"app"`
	Maths  MathsConfig  `toml:"maths"`
	Typing TypingConfig `toml:"typing"`
}

// AppConfig maps shell settings.
type AppConfig struct {
	StartView *string `toml:"start-view"`
}

// MathsConfig maps maths game settings.
type MathsConfig struct {
	Difficulty      *string `toml:"difficulty"`
	Category        *string `toml:"category"`
	RetryIncorrect  *bool   `toml:"retry-incorrect"`
	FeedbackDelayMs *int    `toml:"feedback-delay-ms"`
}

// TypingConfig maps typing tool settings.
type TypingConfig struct {
	Category    *string `toml:"category"`
	AutoIndent  *bool   `toml:"auto-indent"`
	SnippetsDir *string `toml:"snippets-dir"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
