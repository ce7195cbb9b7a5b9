package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "DATABASE_URL", "DATABASE_NAME", "DB_CONNECT_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8000", cfg.App.Port)
	require.Equal(t, "development", cfg.App.Environment)
	require.Equal(t, 10*time.Second, cfg.Mongo.ConnectTimeout)
	require.False(t, cfg.Mongo.HasURI())
	require.False(t, cfg.Mongo.HasDatabase())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "freedaiy")
	t.Setenv("DB_CONNECT_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9000", cfg.App.Port)
	require.True(t, cfg.Mongo.HasURI())
	require.True(t, cfg.Mongo.HasDatabase())
	require.Equal(t, 3*time.Second, cfg.Mongo.ConnectTimeout)
}

func TestGetEnvDurationFallsBackOnJunk(t *testing.T) {
	t.Setenv("DB_CONNECT_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 10*time.Second, cfg.Mongo.ConnectTimeout)
}
