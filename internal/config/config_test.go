package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, k := range []string{"SCERR_CATALOG", "SCERR_LOCALE", "SCERR_MESSAGES_DIR", "SCERR_CAPACITY", "DATABASE_URL", "SCERR_MIGRATIONS", "TOKEN", "GUILD_ID"} {
		t.Setenv(k, env[k])
	}
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, nil)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 512, cfg.Capacity)
	assert.Empty(t, cfg.MigrationsPath)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.CatalogPath)
}

func TestLoad_Values(t *testing.T) {
	setEnv(t, map[string]string{
		"SCERR_CATALOG":  "/etc/scerr/errorcodes.xml",
		"SCERR_LOCALE":   "fr-CA",
		"SCERR_CAPACITY": "64",
		"DATABASE_URL":   "postgres://db:5432/scerr?sslmode=disable",
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/etc/scerr/errorcodes.xml", cfg.CatalogPath)
	assert.Equal(t, "fr-CA", cfg.Locale)
	assert.Equal(t, 64, cfg.Capacity)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"capacity not a number", map[string]string{"SCERR_CAPACITY": "big"}, "SCERR_CAPACITY"},
		{"capacity negative", map[string]string{"SCERR_CAPACITY": "-4"}, "SCERR_CAPACITY"},
		{"locale", map[string]string{"SCERR_LOCALE": "not a locale!"}, "SCERR_LOCALE"},
		{"database without host", map[string]string{"DATABASE_URL": "postgres:///scerr"}, "DATABASE_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadBot(t *testing.T) {
	setEnv(t, nil)
	_, err := LoadBot()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOKEN")

	setEnv(t, map[string]string{"TOKEN": "secret", "GUILD_ID": "12ab"})
	_, err = LoadBot()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GUILD_ID")

	setEnv(t, map[string]string{"TOKEN": "secret", "GUILD_ID": "123456"})
	cfg, err := LoadBot()
	require.NoError(t, err)
	assert.Equal(t, "123456", cfg.GuildID)
}
