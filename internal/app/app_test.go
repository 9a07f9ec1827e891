package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/mindbank/internal/config"
	"github.com/baharkarakas/mindbank/internal/models"
)

func rateServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"EUR":0.9}}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(t *testing.T, backend string) *config.Config {
	cfg := &config.Config{Env: "test"}
	cfg.HTTP.RefreshRPS = 1
	cfg.HTTP.RefreshBurst = 1
	cfg.Storage.Backend = backend
	cfg.Storage.DataDir = t.TempDir()
	cfg.Exchange.BaseURL = rateServer(t).URL
	cfg.Exchange.Timeout = time.Second
	cfg.Exchange.CacheTTL = time.Hour
	cfg.Exchange.FallbackRate = 0.85
	cfg.Worker.Size = 1
	cfg.Worker.Queue = 4
	return cfg
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestNew_FileBackend(t *testing.T) {
	a, err := New(context.Background(), testConfig(t, "file"), discard())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	d, err := a.Dashboard.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.RateLive, d.ExchangeRate.Source)
	assert.Equal(t, "0.9", d.ExchangeRate.Rate.String())

	h, err := a.Handler(false)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNew_RedisBackend(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(t, "redis")
	cfg.Storage.RedisAddr = mr.Addr()
	cfg.Storage.RedisPrefix = "mb:"

	a, err := New(context.Background(), cfg, discard())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	_, err = a.Store.LoadConfig(context.Background())
	require.NoError(t, err)
	assert.True(t, mr.Exists("mb:user_config"))
}

func TestNew_RedisUnreachable(t *testing.T) {
	cfg := testConfig(t, "redis")
	cfg.Storage.RedisAddr = "127.0.0.1:1"

	_, err := New(context.Background(), cfg, discard())
	assert.Error(t, err)
}

func TestInitSentry_Disabled(t *testing.T) {
	enabled, err := InitSentry(&config.Config{})
	require.NoError(t, err)
	assert.False(t, enabled)
}
