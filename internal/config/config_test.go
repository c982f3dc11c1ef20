package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("DB_CONN", "host=localhost dbname=shop sslmode=disable")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "http://localhost:5174", cfg.CORSOrigin)
	assert.Empty(t, cfg.SMTPHost)
}

func TestNewConfigOverrides(t *testing.T) {
	t.Setenv("DB_CONN", "host=db dbname=shop")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("CORS_ORIGIN", "https://shop.example.com")
	t.Setenv("SMTP_HOST", "smtp.example.com")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "https://shop.example.com", cfg.CORSOrigin)
	assert.Equal(t, "smtp.example.com", cfg.SMTPHost)
}

func TestNewConfigMissingDBConn(t *testing.T) {
	t.Setenv("DB_CONN", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_CONN")
}

func TestNewConfigMissingJWTSecret(t *testing.T) {
	t.Setenv("DB_CONN", "host=db dbname=shop")
	t.Setenv("JWT_SECRET", "")

	_, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestNewConfigNegativeTTL(t *testing.T) {
	t.Setenv("DB_CONN", "host=db dbname=shop")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("TOKEN_TTL", "-5m")

	_, err := NewConfig()
	require.Error(t, err)
}
