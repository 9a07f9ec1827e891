// Package app wires configuration into a running MindBank instance.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/baharkarakas/mindbank/internal/api"
	"github.com/baharkarakas/mindbank/internal/api/handlers"
	"github.com/baharkarakas/mindbank/internal/api/views"
	"github.com/baharkarakas/mindbank/internal/apperr"
	"github.com/baharkarakas/mindbank/internal/config"
	"github.com/baharkarakas/mindbank/internal/db"
	"github.com/baharkarakas/mindbank/internal/exchange"
	repo "github.com/baharkarakas/mindbank/internal/repository"
	"github.com/baharkarakas/mindbank/internal/repository/file"
	"github.com/baharkarakas/mindbank/internal/repository/postgres"
	redisrepo "github.com/baharkarakas/mindbank/internal/repository/redis"
	"github.com/baharkarakas/mindbank/internal/services"
	"github.com/baharkarakas/mindbank/internal/worker"
)

type App struct {
	Cfg       *config.Config
	Log       *slog.Logger
	Store     *services.Store
	Dashboard *services.DashboardService
	Rates     *exchange.Provider
	Pool      *worker.Pool

	closers []func()
}

// InitSentry initialises the global hub when a DSN is configured and reports
// whether reporting is enabled.
func InitSentry(cfg *config.Config) (bool, error) {
	if cfg.Sentry.DSN == "" {
		return false, nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.Sentry.DSN,
		Environment: cfg.Env,
	})
	if err != nil {
		return false, fmt.Errorf("sentry init: %w", err)
	}
	return true, nil
}

// New opens the configured record store and builds the services on top of it.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	a := &App{Cfg: cfg, Log: log}

	rec, err := a.openRecords(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Pool = worker.NewPool(cfg.Worker.Size, cfg.Worker.Queue, log)
	a.closers = append(a.closers, a.Pool.Stop)

	a.Store = services.NewStore(rec, log)
	a.Rates = exchange.NewProvider(
		exchange.NewClient(cfg.Exchange.BaseURL, cfg.Exchange.Timeout),
		a.Store,
		a.Pool,
		log,
		exchange.Options{
			TTL:      cfg.Exchange.CacheTTL,
			Timeout:  cfg.Exchange.Timeout,
			Fallback: decimal.NewFromFloat(cfg.Exchange.FallbackRate),
		},
	)
	a.Dashboard = services.NewDashboardService(a.Store, a.Rates, log)
	return a, nil
}

func (a *App) openRecords(ctx context.Context) (repo.Records, error) {
	s := a.Cfg.Storage
	switch s.Backend {
	case "postgres":
		pool, err := db.NewPool(ctx, s.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("db connect: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		if err := db.RunMigrations(ctx, pool, a.Log); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
		return postgresRecords(pool), nil
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: s.RedisAddr})
		a.closers = append(a.closers, func() { _ = client.Close() })
		store := redisrepo.New(client, s.RedisPrefix, a.Log)
		pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := store.Ping(pctx); err != nil {
			return nil, fmt.Errorf("redis connect: %w", err)
		}
		return store, nil
	default:
		return file.New(s.DataDir)
	}
}

func postgresRecords(pool *pgxpool.Pool) repo.Records {
	return postgres.NewRepositories(pool).Records
}

// Handler builds the HTTP handler tree.
func (a *App) Handler(sentryEnabled bool) (http.Handler, error) {
	v, err := views.New()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	h := handlers.New(a.Dashboard, a.Store, a.Rates, v, apperr.NewReporter(a.Log, sentryEnabled), a.Log)
	return api.NewRouter(api.RouterDeps{
		Handler:       h,
		Log:           a.Log,
		CORSOrigins:   a.Cfg.HTTP.CORSOrigins,
		RefreshRPS:    a.Cfg.HTTP.RefreshRPS,
		RefreshBurst:  a.Cfg.HTTP.RefreshBurst,
		SentryEnabled: sentryEnabled,
	}), nil
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
