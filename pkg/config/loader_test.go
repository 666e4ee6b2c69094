package config_test

import (
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qakit/pkg/config"
)

type defaultsConfig struct {
	Level   string   `env:"QAKIT_TEST_LEVEL" envDefault:"info"`
	Limit   int      `env:"QAKIT_TEST_LIMIT" envDefault:"100"`
	Enabled bool     `env:"QAKIT_TEST_ENABLED" envDefault:"true"`
	Keys    []string `env:"QAKIT_TEST_KEYS" envSeparator:","`
}

type requiredConfig struct {
	Value string `env:"QAKIT_TEST_REQUIRED,required"`
}

type fileConfig struct {
	Value    string `env:"QAKIT_TEST_FILE_VALUE"`
	Number   int    `env:"QAKIT_TEST_FILE_INT"`
	Priority string `env:"QAKIT_TEST_PRIORITY"`
}

func TestLoad_Defaults(t *testing.T) {
	config.ResetCache()

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, 100, cfg.Limit)
	assert.True(t, cfg.Enabled)
	assert.Empty(t, cfg.Keys)
}

func TestLoad_FromEnvironment(t *testing.T) {
	config.ResetCache()
	t.Setenv("QAKIT_TEST_LEVEL", "debug")
	t.Setenv("QAKIT_TEST_LIMIT", "42")
	t.Setenv("QAKIT_TEST_KEYS", "session,pin")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, 42, cfg.Limit)
	assert.Equal(t, []string{"session", "pin"}, cfg.Keys)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Setenv("QAKIT_TEST_LEVEL", "warn")

	var first defaultsConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("QAKIT_TEST_LEVEL", "error")

	var second defaultsConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "warn", second.Level, "second load must come from cache")

	config.ResetCache()
	var third defaultsConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "error", third.Level)
}

func TestLoad_Concurrent(t *testing.T) {
	config.ResetCache()
	t.Setenv("QAKIT_TEST_LEVEL", "debug")

	var wg sync.WaitGroup
	results := make([]defaultsConfig, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, config.Load(&results[i]))
		}(i)
	}
	wg.Wait()

	for _, cfg := range results {
		assert.Equal(t, "debug", cfg.Level)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("QAKIT_TEST_REQUIRED")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrParsingConfig))

	assert.Panics(t, func() {
		var again requiredConfig
		config.MustLoad(&again)
	})
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	err := config.Load(cfg)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("QAKIT_TEST_FILE_VALUE")
	os.Unsetenv("QAKIT_TEST_FILE_INT")
	t.Setenv("QAKIT_TEST_PRIORITY", "process")
	t.Cleanup(func() {
		os.Unsetenv("QAKIT_TEST_FILE_VALUE")
		os.Unsetenv("QAKIT_TEST_FILE_INT")
	})

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Value)
	assert.Equal(t, 7, cfg.Number)
	assert.Equal(t, "process", cfg.Priority, "process environment wins over file")
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/missing.env")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

	assert.Panics(t, func() {
		config.MustLoadEnv("testdata/missing.env")
	})
	assert.NotPanics(t, func() {
		config.MustLoadEnv("testdata/.env.test")
	})
}
