// Package config provides the TOML configuration file and XDG path
// helpers.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. All fields are
// pointers so an absent key is distinguishable from a zero value.
type FileConfig struct {
	Defaults DefaultsConfig `toml:"defaults"`
	AI       AIConfig       `toml:"ai"`
}

// DefaultsConfig maps the [defaults] section: pre-filled values for
// the setup screen and the play command flags.
type DefaultsConfig struct {
	Operations    *[]string `toml:"operations"`
	Tables        *[]int    `toml:"tables"`
	Count         *int      `toml:"count"`
	RepeatOnError *bool     `toml:"repeat-on-error"`
	Choices       *bool     `toml:"choices"`
}

// AIConfig maps the [ai] section: which narrative backend to use and
// how to reach it.
type AIConfig struct {
	Provider *string `toml:"provider"`
	APIKey   *string `toml:"api-key"`
	Model    *string `toml:"model"`
	BaseURL  *string `toml:"base-url"`
}

// LoadConfig reads a TOML config from the given path. Missing file is
// not an error.
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
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
