package main

import (
	"fmt"

	"github.com/lox/tenpin/cmd/tenpin/shared"
	"github.com/lox/tenpin/internal/scorer"
	"github.com/lox/tenpin/internal/tui"
)

type PlayCmd struct {
	Players []string `short:"p" name:"player" help:"Seat a player before the match starts (repeatable)"`
	LogFile string   `help:"Log file path (overrides config)"`
	Theme   string   `help:"Colour theme: default, dark or light (overrides config)"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if c.LogFile != "" {
		cfg.UI.LogFile = c.LogFile
	}
	if c.Theme != "" {
		cfg.UI.Theme = c.Theme
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logFile, err := shared.OpenLogFile(cfg.UI.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()

	logger := shared.SetupLogger(cfg.UI.LogLevel, logFile)
	logger.Info("Starting tenpin", "version", version, "config", g.Config)

	session := scorer.NewSession(logger)

	players := cfg.Match.Players
	if len(c.Players) > 0 {
		players = c.Players
	}
	for _, name := range players {
		if err := session.AddPlayer(name); err != nil {
			return fmt.Errorf("seating %q: %w", name, err)
		}
	}

	return tui.Run(session, logger, tui.Options{Theme: cfg.UI.Theme})
}
