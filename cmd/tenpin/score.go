package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lox/tenpin/cmd/tenpin/shared"
	"github.com/lox/tenpin/internal/bowling"
	"github.com/lox/tenpin/internal/scorer"
	"github.com/lox/tenpin/internal/tui"
)

type ScoreCmd struct {
	Players []string `short:"p" name:"player" required:"" help:"Player in turn order (repeatable)"`
	Rolls   []string `arg:"" optional:"" help:"Rolls in turn order: pin counts or X / - notation"`
}

func (c *ScoreCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	logger := shared.SetupLogger(cfg.UI.LogLevel, os.Stderr)
	return c.score(scorer.NewSession(logger), cfg.UI.Theme, os.Stdout)
}

// score replays the rolls and writes the scoreboard to w. Rolls recorded
// before a rejected one are still shown.
func (c *ScoreCmd) score(session *scorer.Session, theme string, w io.Writer) error {
	for _, name := range c.Players {
		if err := session.AddPlayer(name); err != nil {
			return err
		}
	}

	rolls, err := bowling.ParseRolls(strings.Join(c.Rolls, " "))
	if err != nil {
		return err
	}
	_, bowlErr := session.BowlAll(rolls)

	match := session.Match()
	fmt.Fprintln(w, tui.RenderScoreboard(match, tui.ThemeByName(theme)))
	if leaders := match.Leaders(); len(leaders) > 0 {
		fmt.Fprintf(w, "Leading: %s\n", strings.Join(leaders, ", "))
	}
	if winner, ok := session.Winner(); ok {
		fmt.Fprintln(w, winner)
	}
	return bowlErr
}
