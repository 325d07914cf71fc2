package config_test

import (
	"testing"

	"github.com/plus3/tavernbrawl/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "saved_cards.json", cfg.SaveFile)
	assert.Equal(t, "assets", cfg.AssetsDir)
	assert.Equal(t, 5, cfg.FinalStage)
	assert.Equal(t, 1200, cfg.ScreenWidth)
	assert.False(t, cfg.Debug)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TAVERN_SAVE_FILE", "/tmp/deck.json")
	t.Setenv("TAVERN_SEED", "42")
	t.Setenv("TAVERN_FINAL_STAGE", "3")
	t.Setenv("TAVERN_DEBUG", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/deck.json", cfg.SaveFile)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 3, cfg.Battle().FinalStage)
	assert.True(t, cfg.Debug)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("TAVERN_FINAL_STAGE", "0")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadRejectsMalformed(t *testing.T) {
	t.Setenv("TAVERN_PLAYER_HEALTH", "lots")
	_, err := config.Load()
	assert.ErrorContains(t, err, "parse env")
}

func TestValidateMeleeRange(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	cfg.MinMelee, cfg.MaxMelee = 5, 2
	assert.Error(t, cfg.Validate())
}
