package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := initConfig()
		assert.Equal(t, 24, cfg.Rows)
		assert.Equal(t, 24, cfg.Cols)
		assert.Equal(t, 4, cfg.PursuitInterval)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.InDelta(t, 0.8, cfg.RewardProb, 1e-9)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		t.Setenv("MAZE_ROWS", "7")
		t.Setenv("MAZE_SEED", "99")
		t.Setenv("REWARD_PROB", "0.25")
		t.Setenv("LOG_LEVEL", "debug")

		cfg := initConfig()
		assert.Equal(t, 7, cfg.Rows)
		assert.Equal(t, int64(99), cfg.Seed)
		assert.InDelta(t, 0.25, cfg.RewardProb, 1e-9)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("Malformed values fall back", func(t *testing.T) {
		t.Setenv("MAZE_COLS", "wide")
		t.Setenv("REWARD_PROB", "often")

		cfg := initConfig()
		assert.Equal(t, 24, cfg.Cols)
		assert.InDelta(t, 0.8, cfg.RewardProb, 1e-9)
	})
}
