package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvironmentWithoutDotEnvFile(t *testing.T) {
	// No .env file exists in the test working directory; values still come
	// from the process environment.
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/arena")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "8080")

	cfg := LoadEnvironment()
	require.NotNil(t, cfg)

	assert.Equal(t, "postgres://localhost:5432/arena", cfg.DatabaseURL)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "8080", cfg.ServerPort)
}
