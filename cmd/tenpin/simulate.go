package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/tenpin/cmd/tenpin/shared"
	"github.com/lox/tenpin/internal/config"
	"github.com/lox/tenpin/internal/simulator"
)

type SimulateCmd struct {
	Players int      `short:"n" help:"Number of simulated players (overrides config)"`
	Names   []string `name:"name" help:"Name a simulated player (repeatable)"`
	Seed    int64    `help:"Random seed (overrides config, 0 picks one)"`
	Profile string   `help:"Skill profile: gutter, novice, league or pro (overrides config)"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}

	sc := c.simulation(cfg, shared.SetupLogger(cfg.UI.LogLevel, os.Stderr))
	if sc.Seed == 0 {
		sc.Seed = time.Now().UnixNano()
	}

	result, err := simulator.New(sc).Run()
	if err != nil {
		return err
	}
	return simulator.PrintSummary(os.Stdout, result)
}

// simulation applies the flags over the configured simulation settings.
// Without -n, naming more players than configured seats all of them.
func (c *SimulateCmd) simulation(cfg *config.Config, logger *log.Logger) simulator.Config {
	sc := simulator.Config{
		Players: cfg.Simulation.Players,
		Names:   c.Names,
		Seed:    cfg.Simulation.Seed,
		Profile: cfg.Simulation.Profile,
		Logger:  logger,
	}
	switch {
	case c.Players != 0:
		sc.Players = c.Players
	case len(c.Names) > sc.Players:
		sc.Players = len(c.Names)
	}
	if c.Seed != 0 {
		sc.Seed = c.Seed
	}
	if c.Profile != "" {
		sc.Profile = c.Profile
	}
	return sc
}
