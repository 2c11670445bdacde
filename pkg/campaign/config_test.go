package campaign_test

import (
	"testing"

	"github.com/aretw0/graft/pkg/campaign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromMap_Defaults(t *testing.T) {
	cfg, err := campaign.ConfigFromMap(map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, campaign.DefaultConfig(), cfg)
}

func TestConfigFromMap_Overrides(t *testing.T) {
	cfg, err := campaign.ConfigFromMap(map[string]any{
		"runs":            50,
		"seed":            42,
		"shrink_attempts": 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Runs)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 10, cfg.ShrinkAttempts)
}

func TestConfigFromMap_WeaklyTyped(t *testing.T) {
	// YAML frontends often hand over numbers as strings.
	cfg, err := campaign.ConfigFromMap(map[string]any{
		"runs": "250",
		"seed": "7",
	})
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Runs)
	assert.Equal(t, uint64(7), cfg.Seed)
}

func TestConfigFromMap_RejectsUnknownKeys(t *testing.T) {
	_, err := campaign.ConfigFromMap(map[string]any{"run": 10})
	assert.Error(t, err)
}

func TestConfig_Options(t *testing.T) {
	cfg := campaign.Config{Runs: 3, Seed: 99, ShrinkAttempts: 1}
	opts := cfg.Options()
	assert.Len(t, opts, 3)
}
