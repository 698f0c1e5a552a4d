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

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 0.85, cfg.RevealThreshold)
	assert.Equal(t, 900.0, cfg.ViewportHeight)
	assert.Equal(t, 365*24*time.Hour, cfg.VisitorRetention)
	assert.True(t, cfg.TrackVisitors)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("REVEAL_THRESHOLD", "0.6")
	t.Setenv("TRACK_VISITORS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 0.6, cfg.RevealThreshold)
	assert.False(t, cfg.TrackVisitors)
}

func TestLoadRejectsBadThreshold(t *testing.T) {
	t.Setenv("REVEAL_THRESHOLD", "1.5")

	_, err := Load()
	assert.ErrorContains(t, err, "REVEAL_THRESHOLD")
}

func TestLoadRejectsUnparsable(t *testing.T) {
	t.Setenv("VIEWPORT_HEIGHT", "tall")

	_, err := Load()
	assert.ErrorContains(t, err, "parse env")
}

func TestAdminCredentials(t *testing.T) {
	user, pass, fallback := Config{}.AdminCredentials()
	assert.Equal(t, "admin", user)
	assert.Equal(t, "admin123", pass)
	assert.True(t, fallback)

	user, pass, fallback = Config{AdminUsername: "hinal", AdminPassword: "s3cret"}.AdminCredentials()
	assert.Equal(t, "hinal", user)
	assert.Equal(t, "s3cret", pass)
	assert.False(t, fallback)
}
