package api

import (
	"log/slog"
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/mindbank/internal/api/handlers"
	"github.com/baharkarakas/mindbank/internal/metrics"
	"github.com/baharkarakas/mindbank/internal/middleware"
)

type RouterDeps struct {
	Handler       *handlers.Handler
	Log           *slog.Logger
	CORSOrigins   []string
	RefreshRPS    float64
	RefreshBurst  int
	SentryEnabled bool
}

func NewRouter(d RouterDeps) http.Handler {
	h := d.Handler
	origins := d.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if d.SentryEnabled {
		r.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	}
	r.Use(middleware.Recover(d.Log), middleware.HTTPMetrics, middleware.AccessLog(d.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	// pages
	r.Get("/", h.DashboardPage)
	r.Get("/dashboard", h.DashboardPage)
	r.Get("/config", h.ConfigPage)

	r.Route("/api", func(r chi.Router) {
		r.Post("/update-config", h.UpdateConfig)
		r.Post("/update-assets", h.UpdateAssets)
		r.Post("/daily-goal", h.DailyGoal)
		r.Get("/dashboard-data", h.DashboardData)
		r.Get("/breakdown", h.Breakdown)
		r.Get("/summary", h.Summary)

		r.Get("/exchange-rate", h.ExchangeRate)
		r.Get("/exchange-rate/info", h.ExchangeRateInfo)
		r.With(middleware.RateLimit(d.RefreshRPS, d.RefreshBurst)).
			Post("/exchange-rate/refresh", h.RefreshExchangeRate)
	})

	return r
}
