// Package config loads the optional tenpin.hcl file
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/tenpin/internal/bowling"
	"github.com/lox/tenpin/internal/scorer"
	"github.com/lox/tenpin/internal/simulator"
)

// DefaultFile is the config file read when none is named
const DefaultFile = "tenpin.hcl"

// Config represents the complete tenpin configuration
type Config struct {
	Match      *MatchSettings      `hcl:"match,block"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
	UI         *UISettings         `hcl:"ui,block"`
}

// MatchSettings seeds the roster of a new match
type MatchSettings struct {
	Players []string `hcl:"players,optional"`
}

// SimulationSettings are defaults for tenpin simulate
type SimulationSettings struct {
	Players int    `hcl:"players,optional"`
	Profile string `hcl:"profile,optional"`
	Seed    int64  `hcl:"seed,optional"`
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
	Theme    string `hcl:"theme,optional"`
	NoColor  bool   `hcl:"no_color,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Match: &MatchSettings{},
		Simulation: &SimulationSettings{
			Players: 4,
			Profile: simulator.DefaultProfile,
		},
		UI: &UISettings{
			LogLevel: "warn",
			LogFile:  "tenpin.log",
			Theme:    "default",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults fills blocks and values the file left out
func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Match == nil {
		c.Match = defaults.Match
	}
	if c.Simulation == nil {
		c.Simulation = defaults.Simulation
	}
	if c.UI == nil {
		c.UI = defaults.UI
	}

	if c.Simulation.Players == 0 {
		c.Simulation.Players = defaults.Simulation.Players
	}
	if c.Simulation.Profile == "" {
		c.Simulation.Profile = defaults.Simulation.Profile
	}
	if c.UI.LogLevel == "" {
		c.UI.LogLevel = defaults.UI.LogLevel
	}
	if c.UI.LogFile == "" {
		c.UI.LogFile = defaults.UI.LogFile
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if len(c.Match.Players) > bowling.MaxPlayers {
		return fmt.Errorf("at most %d players can be listed, got %d", bowling.MaxPlayers, len(c.Match.Players))
	}
	seen := make(map[string]bool, len(c.Match.Players))
	for _, name := range c.Match.Players {
		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("player names cannot be empty")
		}
		if len([]rune(name)) > scorer.MaxNameLength {
			return fmt.Errorf("player name %q is longer than %d characters", name, scorer.MaxNameLength)
		}
		if seen[name] {
			return fmt.Errorf("player %q is listed twice", name)
		}
		seen[name] = true
	}

	if c.Simulation.Players < 1 || c.Simulation.Players > bowling.MaxPlayers {
		return fmt.Errorf("simulation players must be between 1 and %d", bowling.MaxPlayers)
	}
	if _, err := simulator.LookupProfile(c.Simulation.Profile); err != nil {
		return err
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	validThemes := map[string]bool{
		"default": true,
		"dark":    true,
		"light":   true,
	}
	if !validThemes[c.UI.Theme] {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}

	return nil
}
