package initializers_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/to-dy/pgapex-builder/initializers"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"PORT", "PGAPEX_API_URL", "PGAPEX_API_TOKEN", "PGAPEX_API_TIMEOUT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := initializers.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, initializers.Config{
		Port:       "3000",
		APIURL:     "http://localhost:8080",
		APITimeout: 10 * time.Second,
		LogLevel:   log.LevelInfo,
	}, cfg)
	assert.Equal(t, ":3000", cfg.Addr())
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("PGAPEX_API_URL", "https://pgapex.example.com/")
	t.Setenv("PGAPEX_API_TOKEN", "s3cret")
	t.Setenv("PGAPEX_API_TIMEOUT", "2s")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := initializers.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://pgapex.example.com", cfg.APIURL)
	assert.Equal(t, "s3cret", cfg.APIToken)
	assert.Equal(t, 2*time.Second, cfg.APITimeout)
	assert.Equal(t, log.LevelDebug, cfg.LogLevel)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := map[string][2]string{
		"timeout":          {"PGAPEX_API_TIMEOUT", "soon"},
		"negative timeout": {"PGAPEX_API_TIMEOUT", "-1s"},
		"log level":        {"LOG_LEVEL", "verbose"},
		"port":             {"PORT", "http"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(env[0], env[1])

			_, err := initializers.LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	clearEnv(t)
	// variables already present are never overridden by the file
	require.NoError(t, os.Unsetenv("PGAPEX_API_URL"))

	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("PGAPEX_API_URL=http://pgapex:8080\n"), 0o600))

	require.NoError(t, initializers.LoadEnv(file))

	cfg, err := initializers.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://pgapex:8080", cfg.APIURL)
}

func TestLoadEnvMissingFile(t *testing.T) {
	assert.NoError(t, initializers.LoadEnv(filepath.Join(t.TempDir(), "missing.env")))
}
