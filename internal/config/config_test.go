package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "reports", cfg.ReportsDir)
	assert.Equal(t, "", cfg.ModelsDir)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("RISKSCREEN_PORT", "9090")
	t.Setenv("RISKSCREEN_REPORTS_DIR", "/var/reports")
	t.Setenv("RISKSCREEN_SESSION_TTL", "30m")
	t.Setenv("RISKSCREEN_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/var/reports", cfg.ReportsDir)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "json", cfg.LogFormat)
}
