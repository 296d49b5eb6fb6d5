package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const fileName = "dropnote.yaml"

// Config is the complete configuration structure.
type Config struct {
	// Terminal is the preferred terminal's bundle identifier. Empty means
	// first installed catalog entry.
	Terminal string        `yaml:"terminal"`
	Launch   LaunchConfig  `yaml:"launch"`
	Note     NoteConfig    `yaml:"note"`
	History  HistoryConfig `yaml:"history"`
	LogLevel string        `yaml:"log_level"`
}

// LaunchConfig tunes the generic fallback timing. These are empirical
// delays, not correctness guarantees.
type LaunchConfig struct {
	ActivationTimeoutMS int `yaml:"activation_timeout_ms"`
	KeystrokeDelayMS    int `yaml:"keystroke_delay_ms"`
}

// NoteConfig controls Markdown note creation.
type NoteConfig struct {
	Extension string `yaml:"extension"`
	Template  string `yaml:"template"`
}

// HistoryConfig controls the launch-attempt log.
type HistoryConfig struct {
	Disabled bool   `yaml:"disabled"`
	Path     string `yaml:"path"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Launch: LaunchConfig{
			ActivationTimeoutMS: 2000,
			KeystrokeDelayMS:    500,
		},
		Note: NoteConfig{
			Extension: ".md",
			Template:  "# {{title}}\n\n{{date}}\n",
		},
		LogLevel: "info",
	}
}

// ActivationTimeout returns the bounded wait for generic activation.
func (c *Config) ActivationTimeout() time.Duration {
	if c.Launch.ActivationTimeoutMS <= 0 {
		return 2 * time.Second
	}
	return time.Duration(c.Launch.ActivationTimeoutMS) * time.Millisecond
}

// KeystrokeDelay returns the pause before keystroke injection.
func (c *Config) KeystrokeDelay() time.Duration {
	if c.Launch.KeystrokeDelayMS <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(c.Launch.KeystrokeDelayMS) * time.Millisecond
}

// Load reads the configuration. With an empty path it searches the usual
// locations; a missing file is not an error, defaults apply.
func Load(configPath string) (*Config, error) {
	configFile := configPath
	if configFile == "" {
		found, err := FindConfigFile()
		if err != nil {
			return Default(), nil
		}
		configFile = found
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// FindConfigFile searches for dropnote.yaml in the current directory, up to
// five parent directories, then ~/.dropnote/config.yaml.
func FindConfigFile() (string, error) {
	cwd, err := os.Getwd()
	if err == nil {
		current := cwd
		for i := 0; i < 6; i++ {
			configPath := filepath.Join(current, fileName)
			if _, err := os.Stat(configPath); err == nil {
				return configPath, nil
			}
			parent := filepath.Dir(current)
			if parent == current {
				break
			}
			current = parent
		}
	}

	home, err := homedir.Dir()
	if err == nil {
		configPath := filepath.Join(home, ".dropnote", "config.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", fmt.Errorf("%s not found in current directory, parent directories, or ~/.dropnote/config.yaml", fileName)
}
