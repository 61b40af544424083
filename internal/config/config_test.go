package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATA_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8001, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.DevMode)
	assert.InDelta(t, 0.05, cfg.RiskFreeRate, 1e-9)
	assert.Equal(t, 30, cfg.EventLookaheadDays)
}

func TestLoad_OverridesFromEnv(t *testing.T) {
	t.Setenv("DATA_DIR", t.TempDir())
	t.Setenv("PORT", "9100")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEV_MODE", "true")
	t.Setenv("RISK_FREE_RATE", "0.043")
	t.Setenv("EVENT_LOOKAHEAD_DAYS", "14")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.DevMode)
	assert.InDelta(t, 0.043, cfg.RiskFreeRate, 1e-9)
	assert.Equal(t, 14, cfg.EventLookaheadDays)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DATA_DIR", t.TempDir())
	t.Setenv("PORT", "not-a-number")
	t.Setenv("RISK_FREE_RATE", "nope")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8001, cfg.Port)
	assert.InDelta(t, 0.05, cfg.RiskFreeRate, 1e-9)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Port: 8001, RiskFreeRate: 0.05, EventLookaheadDays: 30}, false},
		{"zero port", Config{Port: 0, RiskFreeRate: 0.05, EventLookaheadDays: 30}, true},
		{"port too large", Config{Port: 70000, RiskFreeRate: 0.05, EventLookaheadDays: 30}, true},
		{"negative rate", Config{Port: 8001, RiskFreeRate: -0.01, EventLookaheadDays: 30}, true},
		{"zero lookahead", Config{Port: 8001, RiskFreeRate: 0.05, EventLookaheadDays: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
