package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orgdb/pkg/config"
)

type testConfig struct {
	Addr     string        `env:"ORGDB_TEST_ADDR" envDefault:":8080"`
	Prefix   string        `env:"ORGDB_TEST_PREFIX" envDefault:"org_"`
	Timeout  time.Duration `env:"ORGDB_TEST_TIMEOUT" envDefault:"5s"`
	Fallback bool          `env:"ORGDB_TEST_FALLBACK" envDefault:"false"`
	Paths    []string      `env:"ORGDB_TEST_PATHS" envSeparator:","`
}

type requiredConfig struct {
	URL string `env:"ORGDB_TEST_REQUIRED_URL,required"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "org_", cfg.Prefix)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.False(t, cfg.Fallback)
	assert.Empty(t, cfg.Paths)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ORGDB_TEST_ADDR", ":9999")
	t.Setenv("ORGDB_TEST_TIMEOUT", "250ms")
	t.Setenv("ORGDB_TEST_FALLBACK", "true")
	t.Setenv("ORGDB_TEST_PATHS", "/x,/y")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.True(t, cfg.Fallback)
	assert.Equal(t, []string{"/x", "/y"}, cfg.Paths)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("ORGDB_TEST_REQUIRED_URL")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *testConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("ORGDB_TEST_ADDR", "")
	os.Unsetenv("ORGDB_TEST_ADDR")
	t.Setenv("ORGDB_TEST_PREFIX", "")
	os.Unsetenv("ORGDB_TEST_PREFIX")
	t.Setenv("ORGDB_TEST_PATHS", "from_env")

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "tenant_", cfg.Prefix)
	assert.Equal(t, []string{"from_env"}, cfg.Paths, "existing variables are not overridden")
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/does-not-exist.env")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

	assert.Panics(t, func() { config.MustLoadEnv("testdata/does-not-exist.env") })
}

func TestLoadEnv_DefaultFileOptional(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.NoError(t, config.LoadEnv())
}
