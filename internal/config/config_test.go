package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
match {
  players = ["Alice", "Bob"]
}

simulation {
  players = 3
  profile = "pro"
  seed    = 42
}

ui {
  log_level = "debug"
  theme     = "dark"
  no_color  = true
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"Alice", "Bob"}, cfg.Match.Players)
	assert.Equal(t, SimulationSettings{Players: 3, Profile: "pro", Seed: 42}, *cfg.Simulation)
	assert.Equal(t, "debug", cfg.UI.LogLevel)
	assert.Equal(t, "tenpin.log", cfg.UI.LogFile, "default kept")
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.True(t, cfg.UI.NoColor)
}

func TestLoadPartialFile(t *testing.T) {
	path := writeConfig(t, `
ui {
  log_file = "/tmp/bowling.log"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Empty(t, cfg.Match.Players)
	assert.Equal(t, 4, cfg.Simulation.Players)
	assert.Equal(t, "league", cfg.Simulation.Profile)
	assert.Equal(t, "warn", cfg.UI.LogLevel)
	assert.Equal(t, "/tmp/bowling.log", cfg.UI.LogFile)
}

func TestLoadErrors(t *testing.T) {
	t.Run("syntax", func(t *testing.T) {
		_, err := Load(writeConfig(t, `ui {`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("unknown attribute", func(t *testing.T) {
		_, err := Load(writeConfig(t, `ui { colour = "red" }`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"too many players", func(c *Config) {
			c.Match.Players = []string{"A", "B", "C", "D", "E", "F", "G"}
		}, "at most 6 players"},
		{"long name", func(c *Config) { c.Match.Players = []string{"Bartholomew"} }, "longer than 10"},
		{"blank name", func(c *Config) { c.Match.Players = []string{" "} }, "empty"},
		{"duplicate name", func(c *Config) { c.Match.Players = []string{"Al", "Al"} }, "twice"},
		{"simulation players", func(c *Config) { c.Simulation.Players = 0 }, "simulation players"},
		{"profile", func(c *Config) { c.Simulation.Profile = "robot" }, "unknown profile"},
		{"log level", func(c *Config) { c.UI.LogLevel = "loud" }, "invalid log level"},
		{"theme", func(c *Config) { c.UI.Theme = "neon" }, "invalid theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
