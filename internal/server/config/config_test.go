package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":3000", cfg.EndpointAddr)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTokenValidityDuration)
	assert.Equal(t, 10*time.Minute, cfg.ShareTokenValidityDuration)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.NotEmpty(t, cfg.EncryptionKey)
	assert.NotEmpty(t, cfg.DatabaseDSN)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("ADDRESS", ":9090")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("PASSWORD_ENCRYPTION_KEY", "env-key")
	t.Setenv("SHARE_TOKEN_VALIDITY", "5m")
	t.Setenv("SESSION_TOKEN_VALIDITY", "48h")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":9090", cfg.EndpointAddr)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, "env-key", cfg.EncryptionKey)
	assert.Equal(t, 5*time.Minute, cfg.ShareTokenValidityDuration)
	assert.Equal(t, 48*time.Hour, cfg.SessionTokenValidityDuration)
}

func TestParseEnv_InvalidDurationKeepsDefault(t *testing.T) {
	t.Setenv("SHARE_TOKEN_VALIDITY", "soon")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 10*time.Minute, cfg.ShareTokenValidityDuration)
}
