// Package scorer drives a bowling match on behalf of a front-end: it applies
// the rules a scorer's desk enforces on top of the engine (name limits, a
// roster that locks once bowling starts, confirmation before discarding a
// match) and announces the winners once the last game is finished.
package scorer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/tenpin/internal/bowling"
)

// MaxNameLength is the longest player name the scoreboard can show
const MaxNameLength = 10

var (
	ErrNameTooLong     = errors.New("player name too long")
	ErrRosterLocked    = errors.New("roster is locked")
	ErrMatchInProgress = errors.New("match in progress")
)

// Session wraps a match with the scorer's desk rules
type Session struct {
	match  *bowling.Match
	logger *log.Logger

	begun    bool
	declared bool
	winner   string
	pending  bool
}

// NewSession creates a session around a fresh match
func NewSession(logger *log.Logger, opts ...bowling.Option) *Session {
	s := &Session{
		match:  bowling.NewMatch(opts...),
		logger: logger.WithPrefix("scorer"),
	}
	s.match.SubscribeEvents(bowling.SubscriberFunc(s.onEvent))
	return s
}

// Match returns the underlying match for read access and subscriptions
func (s *Session) Match() *bowling.Match {
	return s.match
}

// Begun reports whether a ball has been bowled in the current match
func (s *Session) Begun() bool {
	return s.begun
}

// AddPlayer seats a player. Names are trimmed and must be 1 to MaxNameLength
// characters. Players cannot join once the first ball is bowled.
func (s *Session) AddPlayer(name string) error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return fmt.Errorf("%w: player name is empty", bowling.ErrValidation)
	case len([]rune(name)) > MaxNameLength:
		return fmt.Errorf("%w: %q is longer than %d characters", ErrNameTooLong, name, MaxNameLength)
	case s.begun:
		return fmt.Errorf("%w: cannot add %q after the first ball", ErrRosterLocked, name)
	}

	if err := s.match.AddPlayer(name); err != nil {
		s.logger.Warn("Player rejected", "player", name, "error", err)
		return err
	}
	s.logger.Info("Player added", "player", name, "match", s.match.ID())
	return nil
}

// Bowl records a ball for the current player. It reports whether that
// player's game is finished.
func (s *Session) Bowl(pins int) (bool, error) {
	player, _ := s.match.CurrentPlayer()

	finished, err := s.match.AddScore(pins)
	if err != nil {
		s.logger.Warn("Ball rejected", "player", player, "pins", pins, "error", err)
		return false, err
	}

	if !s.begun {
		s.begun = true
		s.logger.Debug("Roster locked", "players", len(s.match.Players()))
	}
	s.logger.Debug("Ball recorded", "player", player, "pins", pins, "finished", finished)
	return finished, nil
}

// BowlAll records each ball in order and stops at the first rejected one. It
// returns how many balls were recorded.
func (s *Session) BowlAll(rolls []int) (int, error) {
	for i, pins := range rolls {
		if _, err := s.Bowl(pins); err != nil {
			return i, fmt.Errorf("ball %d: %w", i+1, err)
		}
	}
	return len(rolls), nil
}

// NewMatch clears the match for a new one. An unfinished match with players
// seated is only discarded when force is set.
func (s *Session) NewMatch(force bool) error {
	if s.inProgress() && !force {
		return fmt.Errorf("%w: use force to discard it", ErrMatchInProgress)
	}

	s.match.Clear()
	s.begun = false
	s.declared = false
	s.winner = ""
	s.pending = false
	s.logger.Info("New match", "match", s.match.ID())
	return nil
}

// Quit checks that the session may be left. An unfinished match with players
// seated is only abandoned when force is set.
func (s *Session) Quit(force bool) error {
	if s.inProgress() && !force {
		return fmt.Errorf("%w: use force to leave it", ErrMatchInProgress)
	}
	s.logger.Info("Leaving", "match", s.match.ID(), "finished", s.match.IsFinished())
	return nil
}

func (s *Session) inProgress() bool {
	return len(s.match.Players()) > 0 && !s.match.IsFinished()
}

// Winner returns the winners' announcement the first time it is asked for
// after the match finishes
func (s *Session) Winner() (string, bool) {
	if !s.pending {
		return "", false
	}
	s.pending = false
	return s.winner, true
}

func (s *Session) onEvent(e bowling.Event) {
	finished, ok := e.(bowling.GameFinishedEvent)
	if !ok || !finished.MatchFinished || s.declared {
		return
	}

	s.declared = true
	s.winner = WinnerMessage(s.match.Leaders())
	s.pending = true
	s.logger.Info("Match finished", "match", finished.MatchID, "winners", s.match.Leaders(), "total", finished.Total)
}

// WinnerMessage congratulates one or more winners:
// "Congratulations, Alice, Bob and Carol, you won!"
func WinnerMessage(winners []string) string {
	var names string
	switch n := len(winners); n {
	case 0:
		names = "everyone"
	case 1:
		names = winners[0]
	default:
		names = strings.Join(winners[:n-1], ", ") + " and " + winners[n-1]
	}
	return fmt.Sprintf("Congratulations, %s, you won!", names)
}
