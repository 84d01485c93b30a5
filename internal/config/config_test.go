package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, ".freightops/session.json", cfg.Session.FilePath)
	require.Equal(t, "KZT", cfg.Export.Currency)
}

func TestLoad_env(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("SESSION_FILE", "/tmp/freightops-session.json")
	t.Setenv("EXPORT_CURRENCY", "USD")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "test", cfg.Environment)
	require.Equal(t, "/tmp/freightops-session.json", cfg.Session.FilePath)
	require.Equal(t, "USD", cfg.Export.Currency)
}

func TestLoad_rejectsUnknownEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	_, err := Load()
	require.Error(t, err)
}
