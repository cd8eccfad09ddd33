package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/config"
)

type appConfig struct {
	Level   string        `env:"CONFIG_TEST_LEVEL" envDefault:"info"`
	Timeout time.Duration `env:"CONFIG_TEST_TIMEOUT" envDefault:"30s"`
	Tags    []string      `env:"CONFIG_TEST_TAGS" envSeparator:","`
}

type requiredConfig struct {
	Token string `env:"CONFIG_TEST_TOKEN,required"`
}

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults and caches the result", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("CONFIG_TEST_LEVEL", "debug")

		var cfg appConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "debug", cfg.Level)
		assert.Equal(t, 30*time.Second, cfg.Timeout)

		t.Setenv("CONFIG_TEST_LEVEL", "warn")
		var cached appConfig
		require.NoError(t, config.Load(&cached))
		assert.Equal(t, "debug", cached.Level)

		config.ResetCache()
		var fresh appConfig
		require.NoError(t, config.Load(&fresh))
		assert.Equal(t, "warn", fresh.Level)
	})

	t.Run("reports parse errors", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("CONFIG_TEST_TIMEOUT", "soon")

		var cfg appConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("reports missing required values", func(t *testing.T) {
		config.ResetCache()

		var cfg requiredConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("rejects invalid targets", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[appConfig](nil), config.ErrNilPointer)

		var n int
		assert.ErrorIs(t, config.Load(&n), config.ErrInvalidConfigType)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("later files override earlier ones", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("CONFIG_TEST_TOKEN", "")
		require.NoError(t, os.Unsetenv("CONFIG_TEST_TOKEN"))
		t.Setenv("CONFIG_TEST_TAGS", "")
		require.NoError(t, os.Unsetenv("CONFIG_TEST_TAGS"))

		base := writeEnv(t, "CONFIG_TEST_TOKEN=base\nCONFIG_TEST_TAGS=a,b\n")
		override := writeEnv(t, "CONFIG_TEST_TOKEN=override\n")
		require.NoError(t, config.LoadEnv(base, override))

		var cfg requiredConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "override", cfg.Token)

		var app appConfig
		require.NoError(t, config.Load(&app))
		assert.Equal(t, []string{"a", "b"}, app.Tags)
	})

	t.Run("environment wins over files", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("CONFIG_TEST_LEVEL", "error")

		path := writeEnv(t, "CONFIG_TEST_LEVEL=debug\n")
		require.NoError(t, config.LoadEnv(path))

		var cfg appConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "error", cfg.Level)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("no files is a no-op", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})
}
