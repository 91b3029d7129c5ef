package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DRYSPOT_TRANSITION", "DRYSPOT_ADDR", "DRYSPOT_NO_CACHE", "DRYSPOT_OUTPUT"} {
		t.Setenv(key, "")
	}
}

func TestLoad_defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 150*time.Millisecond, cfg.Transition)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr)
	assert.False(t, cfg.NoCache)
	assert.Equal(t, "text", cfg.Output)
}

func TestLoad_overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DRYSPOT_TRANSITION", "0s")
	t.Setenv("DRYSPOT_ADDR", ":9090")
	t.Setenv("DRYSPOT_NO_CACHE", "true")
	t.Setenv("DRYSPOT_OUTPUT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Zero(t, cfg.Transition)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.True(t, cfg.NoCache)
	assert.Equal(t, "json", cfg.Output)
}

func TestLoad_invalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("DRYSPOT_TRANSITION", "soon")
	t.Setenv("DRYSPOT_NO_CACHE", "maybe")
	t.Setenv("DRYSPOT_OUTPUT", "yaml")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DRYSPOT_TRANSITION")
	assert.Contains(t, err.Error(), "DRYSPOT_NO_CACHE")
	assert.Contains(t, err.Error(), "DRYSPOT_OUTPUT")
}

func TestLoad_negativeTransition(t *testing.T) {
	clearEnv(t)
	t.Setenv("DRYSPOT_TRANSITION", "-1s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DRYSPOT_TRANSITION")
}
