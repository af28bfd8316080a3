package main

import (
	"fmt"

	"github.com/lox/tenpin/cmd/tenpin/shared"
	"github.com/lox/tenpin/internal/config"
)

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"tenpin.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level: debug, info, warn or error (overrides config)"`
	NoColor  bool   `help:"Disable colour output"`
}

// load reads the config file and applies flag overrides
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if g.LogLevel != "" {
		cfg.UI.LogLevel = g.LogLevel
	}
	if g.NoColor {
		cfg.UI.NoColor = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	shared.ConfigureColor(cfg.UI.NoColor)
	return cfg, nil
}
