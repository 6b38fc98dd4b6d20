package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bycontract/pkg/config"
)

type switchConfig struct {
	Enable bool   `env:"ENABLE" envDefault:"true"`
	Label  string `env:"LABEL" envDefault:"default"`
}

type requiredConfig struct {
	Token string `env:"CFGTEST_REQUIRED_TOKEN,required"`
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("CFGTEST_DEFAULTS_ENABLE")
	os.Unsetenv("CFGTEST_DEFAULTS_LABEL")

	var cfg switchConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("CFGTEST_DEFAULTS_")))
	assert.True(t, cfg.Enable)
	assert.Equal(t, "default", cfg.Label)
}

func TestLoad_Prefix(t *testing.T) {
	t.Setenv("CFGTEST_PREFIX_ENABLE", "false")
	t.Setenv("CFGTEST_PREFIX_LABEL", "prod")

	var cfg switchConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("CFGTEST_PREFIX_")))
	assert.False(t, cfg.Enable)
	assert.Equal(t, "prod", cfg.Label)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("CFGTEST_INVALID_ENABLE", "maybe")

	var cfg switchConfig
	err := config.Load(&cfg, config.WithPrefix("CFGTEST_INVALID_"))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_Required(t *testing.T) {
	os.Unsetenv("CFGTEST_REQUIRED_TOKEN")

	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *switchConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoad_EnvFiles(t *testing.T) {
	t.Run("reads values from file", func(t *testing.T) {
		os.Unsetenv("CFGTEST_FILE_LABEL")
		t.Cleanup(func() { os.Unsetenv("CFGTEST_FILE_LABEL") })

		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("CFGTEST_FILE_LABEL=from-file\n"), 0o600))

		var cfg switchConfig
		require.NoError(t, config.Load(&cfg, config.WithPrefix("CFGTEST_FILE_"), config.WithEnvFiles(path)))
		assert.Equal(t, "from-file", cfg.Label)
	})

	t.Run("process environment wins", func(t *testing.T) {
		t.Setenv("CFGTEST_WIN_LABEL", "from-env")

		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("CFGTEST_WIN_LABEL=from-file\n"), 0o600))

		var cfg switchConfig
		require.NoError(t, config.Load(&cfg, config.WithPrefix("CFGTEST_WIN_"), config.WithEnvFiles(path)))
		assert.Equal(t, "from-env", cfg.Label)
	})

	t.Run("missing file is skipped", func(t *testing.T) {
		var cfg switchConfig
		err := config.Load(&cfg, config.WithEnvFiles(filepath.Join(t.TempDir(), "absent.env")))
		assert.NoError(t, err)
	})
}

func TestMustLoad(t *testing.T) {
	os.Unsetenv("CFGTEST_REQUIRED_TOKEN")
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
