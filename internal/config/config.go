// Package config loads the optional HCL settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/rpsls/internal/display"
)

// Config represents the complete game configuration
type Config struct {
	Player  PlayerSettings
	Display DisplaySettings
	Log     LogSettings
	Random  RandomSettings
}

// PlayerSettings contains player-specific settings
type PlayerSettings struct {
	// Name is used when the name prompt is answered with a blank line
	Name string `hcl:"name,optional"`
}

// DisplaySettings controls terminal output
type DisplaySettings struct {
	Theme    string `hcl:"theme,optional"`
	Progress *bool  `hcl:"progress,optional"`
}

// LogSettings controls the diagnostic log
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// RandomSettings controls the computer's choices
type RandomSettings struct {
	Seed *int64 `hcl:"seed,optional"`
}

// file mirrors Config with every block optional
type file struct {
	Player  *PlayerSettings  `hcl:"player,block"`
	Display *DisplaySettings `hcl:"display,block"`
	Log     *LogSettings     `hcl:"log,block"`
	Random  *RandomSettings  `hcl:"random,block"`
}

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Default returns the default configuration
func Default() *Config {
	progress := true
	return &Config{
		Display: DisplaySettings{
			Theme:    display.ThemeDefault,
			Progress: &progress,
		},
		Log: LogSettings{
			Level: "warn",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	diags = gohcl.DecodeBody(f.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.merge(raw)
	return cfg, nil
}

func (c *Config) merge(raw file) {
	if raw.Player != nil && raw.Player.Name != "" {
		c.Player.Name = raw.Player.Name
	}
	if raw.Display != nil {
		if raw.Display.Theme != "" {
			c.Display.Theme = raw.Display.Theme
		}
		if raw.Display.Progress != nil {
			c.Display.Progress = raw.Display.Progress
		}
	}
	if raw.Log != nil {
		if raw.Log.Level != "" {
			c.Log.Level = raw.Log.Level
		}
		if raw.Log.File != "" {
			c.Log.File = raw.Log.File
		}
	}
	if raw.Random != nil && raw.Random.Seed != nil {
		c.Random.Seed = raw.Random.Seed
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !slices.Contains(validLogLevels, c.Log.Level) {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	if !slices.Contains(display.Themes, c.Display.Theme) {
		return fmt.Errorf("invalid theme: %s", c.Display.Theme)
	}
	return nil
}

// ShowProgress reports whether the progress bar is enabled
func (c *Config) ShowProgress() bool {
	return c.Display.Progress == nil || *c.Display.Progress
}
