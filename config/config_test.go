package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	old, ok := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() {
		if ok {
			_ = os.Setenv(key, old)
		}
	})
}

func TestLoadConfigDefault(t *testing.T) {
	unsetEnv(t, "TIPS_DB_PATH")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultDatabasePath, cfg.DatabasePath)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("TIPS_DB_PATH", " /var/lib/tips/tip_data.db ")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/tips/tip_data.db", cfg.DatabasePath)
}

func TestLoadConfigBlank(t *testing.T) {
	t.Setenv("TIPS_DB_PATH", "   ")

	cfg, err := LoadConfig()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrNoDatabasePath{})
}
