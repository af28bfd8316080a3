package simulator

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/tenpin/internal/bowling"
	"github.com/lox/tenpin/internal/scorer"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

func TestNew(t *testing.T) {
	config := Config{Players: 4, Seed: 12345, Profile: "pro", Logger: quietLogger()}

	sim := New(config)
	require.NotNil(t, sim)
	assert.Equal(t, config, sim.config)
}

func TestRunFinishesEveryGame(t *testing.T) {
	for _, profile := range ProfileNames() {
		t.Run(profile, func(t *testing.T) {
			result, err := RunSimulation(4, profile, 42, quietLogger())
			require.NoError(t, err)

			require.Len(t, result.Standings, 4)
			require.Len(t, result.Frames, 4)
			for _, st := range result.Standings {
				assert.True(t, st.Finished, "%s finished", st.Player)
				assert.GreaterOrEqual(t, st.Total, 0)
				assert.LessOrEqual(t, st.Total, 300)
			}

			// Between 11 and 21 balls per game
			assert.GreaterOrEqual(t, result.Balls, 4*11)
			assert.LessOrEqual(t, result.Balls, 4*21)

			assert.NotEmpty(t, result.Winners)
			assert.Equal(t, scorer.WinnerMessage(result.Winners), result.Announcement)
		})
	}
}

func TestGutterProfile(t *testing.T) {
	result, err := New(Config{Names: []string{"Alice", "Bob"}, Profile: "gutter", Seed: 1}).Run()
	require.NoError(t, err)

	assert.Equal(t, 40, result.Balls)
	assert.Equal(t, []string{"Alice", "Bob"}, result.Winners)
	for _, st := range result.Standings {
		assert.Zero(t, st.Total)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	config := Config{Players: 3, Seed: 99, Profile: "league", Logger: quietLogger()}

	first, err := New(config).Run()
	require.NoError(t, err)
	second, err := New(config).Run()
	require.NoError(t, err)

	if diff := cmp.Diff(first.Frames, second.Frames); diff != "" {
		t.Errorf("same seed bowled different frames (-first +second):\n%s", diff)
	}
	assert.Equal(t, first.Standings, second.Standings)
	assert.Equal(t, first.Balls, second.Balls)

	other, err := New(Config{Players: 3, Seed: 100, Profile: "league"}).Run()
	require.NoError(t, err)
	assert.NotEqual(t, first.Frames, other.Frames)
}

func TestPlayerNames(t *testing.T) {
	t.Run("generated names are unique and short", func(t *testing.T) {
		names, err := New(Config{Players: bowling.MaxPlayers, Seed: 7}).playerNames()
		require.NoError(t, err)
		require.Len(t, names, bowling.MaxPlayers)

		seen := map[string]bool{}
		for _, n := range names {
			assert.False(t, seen[n], "duplicate %s", n)
			assert.LessOrEqual(t, len([]rune(n)), scorer.MaxNameLength)
			seen[n] = true
		}
	})

	t.Run("given names come first", func(t *testing.T) {
		names, err := New(Config{Players: 3, Names: []string{"Alice"}, Seed: 7}).playerNames()
		require.NoError(t, err)
		assert.Len(t, names, 3)
		assert.Equal(t, "Alice", names[0])
	})

	t.Run("player count limits", func(t *testing.T) {
		_, err := New(Config{Players: 7}).playerNames()
		assert.Error(t, err)
		_, err = New(Config{}).playerNames()
		assert.Error(t, err)
		_, err = New(Config{Players: 1, Names: []string{"A", "B"}}).playerNames()
		assert.Error(t, err)
	})

	t.Run("names too long for the scoreboard", func(t *testing.T) {
		_, err := New(Config{Names: []string{"Bartholomew"}}).Run()
		require.ErrorIs(t, err, scorer.ErrNameTooLong)
	})
}

func TestProfiles(t *testing.T) {
	_, err := LookupProfile("bogus")
	assert.Error(t, err)

	p, err := LookupProfile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultProfile, p.Name)

	p, err = LookupProfile("PRO")
	require.NoError(t, err)
	assert.Equal(t, "pro", p.Name)

	assert.Equal(t, []string{"gutter", "league", "novice", "pro"}, ProfileNames())

	rng := newRand(5)
	for i := 0; i < 500; i++ {
		for _, standing := range []int{1, 4, 10} {
			pins := p.Pins(rng, standing, standing == bowling.TotalPins)
			require.GreaterOrEqual(t, pins, 0)
			require.LessOrEqual(t, pins, standing)
		}
	}
}

func TestPrintSummary(t *testing.T) {
	result := &Result{
		MatchID: "0000000000e008000000000000",
		Profile: "pro",
		Seed:    3,
		Balls:   24,
		Standings: []bowling.Standing{
			{Player: "Alice", Total: 300, Finished: true, Leader: true},
			{Player: "Bob", Total: 90, Finished: true},
		},
		Announcement: "Congratulations, Alice, you won!",
	}

	var buf bytes.Buffer
	require.NoError(t, PrintSummary(&buf, result))
	assert.Equal(t, "Match 0000000000e008000000000000 (pro profile, seed 3, 24 balls)\n"+
		"* 1. Alice      300\n"+
		"  2. Bob         90\n"+
		"Congratulations, Alice, you won!\n", buf.String())

	assert.Error(t, PrintSummary(&buf, nil))
}
