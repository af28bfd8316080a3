package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/tenpin/internal/config"
	"github.com/lox/tenpin/internal/simulator"
)

func TestSimulateCmdSettings(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})

	t.Run("config defaults", func(t *testing.T) {
		sc := (&SimulateCmd{}).simulation(config.Default(), logger)
		assert.Equal(t, 4, sc.Players)
		assert.Equal(t, simulator.DefaultProfile, sc.Profile)
		assert.Zero(t, sc.Seed)
	})

	t.Run("flags override config", func(t *testing.T) {
		cmd := &SimulateCmd{Players: 2, Seed: 7, Profile: "pro"}
		sc := cmd.simulation(config.Default(), logger)
		assert.Equal(t, 2, sc.Players)
		assert.Equal(t, int64(7), sc.Seed)
		assert.Equal(t, "pro", sc.Profile)
	})

	t.Run("names beyond the configured players seat everyone", func(t *testing.T) {
		cmd := &SimulateCmd{Names: []string{"Ann", "Ben", "Cat", "Dan", "Eve"}, Seed: 1}
		sc := cmd.simulation(config.Default(), logger)
		assert.Equal(t, 5, sc.Players)

		result, err := simulator.New(sc).Run()
		require.NoError(t, err)
		assert.Len(t, result.Standings, 5)
	})

	t.Run("fewer names than players", func(t *testing.T) {
		cmd := &SimulateCmd{Names: []string{"Ann"}}
		sc := cmd.simulation(config.Default(), logger)
		assert.Equal(t, 4, sc.Players)
	})
}
