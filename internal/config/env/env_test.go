package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTConfig(t *testing.T) {
	t.Setenv(accessTokenKeyEnvName, "secret")
	t.Setenv(accessTokenDurationEnvName, "15m")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), cfg.AccessTokenSecretKey())
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenDuration())
}

func TestJWTConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		duration string
	}{
		{"no secret", "", "15m"},
		{"no duration", "secret", ""},
		{"bad duration", "secret", "soon"},
		{"negative duration", "secret", "-1m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(accessTokenKeyEnvName, tt.secret)
			t.Setenv(accessTokenDurationEnvName, tt.duration)
			_, err := NewJWTConfig()
			assert.Error(t, err)
		})
	}
}

func TestHTTPConfig(t *testing.T) {
	t.Setenv(httpHostEnvName, "127.0.0.1")
	t.Setenv(httpPortEnvName, "8080")

	cfg, err := NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Address())

	t.Setenv(httpPortEnvName, "")
	_, err = NewHTTPConfig()
	assert.Error(t, err)
}

func TestPGConfigOptional(t *testing.T) {
	t.Setenv(dsnName, "")
	cfg, err := NewPGConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.DSN())

	t.Setenv(dsnName, "postgres://localhost/roulette")
	cfg, err = NewPGConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/roulette", cfg.DSN())
}

func TestLogConfig(t *testing.T) {
	t.Setenv(logLevelEnvName, "")
	assert.Equal(t, "info", NewLogConfig().Level())

	t.Setenv(logLevelEnvName, "debug")
	assert.Equal(t, "debug", NewLogConfig().Level())
}
