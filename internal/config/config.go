package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Bindings maps the five gestures to global hotkey combos, in
// golang.design/x/hotkey syntax ("ctrl+alt+s"). StatusAlt is the
// alternate chord for the laptop keyboard-layout convention; it triggers
// the same full status report.
type Bindings struct {
	Status     string `yaml:"status"`
	StatusAlt  string `yaml:"status_alt"`
	Line       string `yaml:"line"`
	Page       string `yaml:"page"`
	Candidates string `yaml:"candidates"`
	Scan       string `yaml:"scan"`
}

// Speech configures the synthesizer used for spoken messages.
type Speech struct {
	// Command is the synthesizer binary ("say", "spd-say", ...).
	// Empty selects the platform default.
	Command string `yaml:"command"`
}

// Config is the user configuration, read from
// ~/.config/duxburyinfo/config.yaml.
type Config struct {
	Bindings Bindings `yaml:"bindings"`
	Speech   Speech   `yaml:"speech"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Bindings: Bindings{
			Status:     "ctrl+alt+s",
			StatusAlt:  "ctrl+alt+0",
			Line:       "ctrl+alt+l",
			Page:       "ctrl+alt+p",
			Candidates: "ctrl+alt+c",
			Scan:       "ctrl+alt+d",
		},
	}
}

// Path returns the config file location.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "duxburyinfo", "config.yaml"), nil
}

// Load reads the config file, layering it over the defaults. A missing
// file is not an error: the defaults apply unchanged.
func Load() (*Config, error) {
	cfg := Default()
	path, err := Path()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
