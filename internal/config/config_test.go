package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "data", cfg.Storage.DataDir)
	assert.Equal(t, 5*time.Second, cfg.Exchange.Timeout)
	assert.Equal(t, time.Hour, cfg.Exchange.CacheTTL)
	assert.Equal(t, 0.85, cfg.Exchange.FallbackRate)
	assert.Equal(t, 1, cfg.Worker.Size)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MINDBANK_HTTP_PORT", "9090")
	t.Setenv("MINDBANK_EXCHANGE_CACHE_TTL", "15m")
	t.Setenv("MINDBANK_STORAGE_BACKEND", "redis")
	t.Setenv("MINDBANK_STORAGE_REDIS_ADDR", "localhost:6379")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, 15*time.Minute, cfg.Exchange.CacheTTL)
	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, "localhost:6379", cfg.Storage.RedisAddr)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	yaml := []byte("http:\n  port: \"7000\"\nexchange:\n  fallback_rate: 0.9\nlog:\n  level: warn\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "dev.yaml"), yaml, 0o644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.HTTP.Port)
	assert.Equal(t, 0.9, cfg.Exchange.FallbackRate)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{"unknown backend", map[string]string{"MINDBANK_STORAGE_BACKEND": "sqlite"}},
		{"postgres without url", map[string]string{"MINDBANK_STORAGE_BACKEND": "postgres"}},
		{"bad env", map[string]string{"MINDBANK_ENV": "staging"}},
		{"bad level", map[string]string{"MINDBANK_LOG_LEVEL": "loud"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load("nope.yaml")
	assert.Error(t, err)
}
