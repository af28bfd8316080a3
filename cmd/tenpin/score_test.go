package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/tenpin/internal/bowling"
	"github.com/lox/tenpin/internal/scorer"
)

func testSession() *scorer.Session {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	return scorer.NewSession(logger, bowling.WithIDGenerator(func() string { return "m1" }))
}

func TestScoreCmd(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	t.Run("complete match", func(t *testing.T) {
		cmd := &ScoreCmd{
			Players: []string{"Alice", "Bob"},
			Rolls:   []string{"X", "9-", "X", "9-", "X", "9-", "X", "9-", "X", "9-", "X", "9-", "X", "9-", "X", "9-", "X", "9-", "XXX", "9-"},
		}

		var out bytes.Buffer
		require.NoError(t, cmd.score(testSession(), "default", &out))

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		assert.Contains(t, lines[2], "Alice     *")
		assert.True(t, strings.HasSuffix(lines[2], "  300"), lines[2])
		assert.True(t, strings.HasSuffix(lines[4], "   90"), lines[4])
		assert.Equal(t, "Leading: Alice", lines[len(lines)-2])
		assert.Equal(t, "Congratulations, Alice, you won!", lines[len(lines)-1])
	})

	t.Run("partial rolls show the board so far", func(t *testing.T) {
		cmd := &ScoreCmd{Players: []string{"Alice"}, Rolls: []string{"7", "2", "5", "9"}}

		var out bytes.Buffer
		err := cmd.score(testSession(), "default", &out)
		require.ErrorIs(t, err, bowling.ErrRule)
		assert.Contains(t, out.String(), "│7 2│5  │")
		assert.Contains(t, out.String(), "Leading: Alice")
	})

	t.Run("bad notation", func(t *testing.T) {
		cmd := &ScoreCmd{Players: []string{"Alice"}, Rolls: []string{"7?"}}
		err := cmd.score(testSession(), "default", &bytes.Buffer{})
		require.ErrorIs(t, err, bowling.ErrValidation)
	})

	t.Run("bad player name", func(t *testing.T) {
		cmd := &ScoreCmd{Players: []string{"Bartholomew"}}
		err := cmd.score(testSession(), "default", &bytes.Buffer{})
		require.ErrorIs(t, err, scorer.ErrNameTooLong)
	})
}
