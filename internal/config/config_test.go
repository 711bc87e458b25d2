package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TTL_MINUTES", "15")
	t.Setenv("OTP_TTL_MINUTES", "2")
	t.Setenv("COOKIE_SECURE", "true")

	cfg := Load()

	assert.Equal(t, "9999", cfg.AppPort)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 15*time.Minute, cfg.TokenExpires)
	assert.Equal(t, 2*time.Minute, cfg.OTPExpires)
	assert.True(t, cfg.CookieSecure)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TTL_MINUTES", "")
	t.Setenv("OTP_TTL_MINUTES", "garbage")
	t.Setenv("COOKIE_SECURE", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, 60*time.Minute, cfg.TokenExpires)
	assert.Equal(t, time.Minute, cfg.OTPExpires)
	assert.False(t, cfg.CookieSecure)
}
