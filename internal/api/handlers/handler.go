package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/baharkarakas/mindbank/internal/api/httpx"
	"github.com/baharkarakas/mindbank/internal/api/views"
	"github.com/baharkarakas/mindbank/internal/apperr"
	"github.com/baharkarakas/mindbank/internal/models"
	"github.com/baharkarakas/mindbank/internal/services"
)

// RateService is the exchange rate provider as seen by the HTTP layer.
type RateService interface {
	Current(ctx context.Context) models.ExchangeRate
	Refresh(ctx context.Context) models.ExchangeRate
	Info(ctx context.Context) models.RateInfo
}

type Handler struct {
	Dashboard *services.DashboardService
	Store     *services.Store
	Rates     RateService
	Views     *views.Renderer
	Errors    *apperr.Reporter
	Log       *slog.Logger
}

func New(d *services.DashboardService, s *services.Store, rates RateService, v *views.Renderer, rep *apperr.Reporter, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	if rep == nil {
		rep = apperr.NewReporter(log, false)
	}
	return &Handler{Dashboard: d, Store: s, Rates: rates, Views: v, Errors: rep, Log: log}
}

// fail reports err and writes the flat {success:false,message} body.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := h.Errors.Report(r.Context(), err)
	httpx.WriteError(w, status, msg)
}

// failPage is fail for HTML routes.
func (h *Handler) failPage(w http.ResponseWriter, r *http.Request, err error) {
	if httpx.WantsJSON(r) {
		h.fail(w, r, err)
		return
	}
	status, msg := h.Errors.Report(r.Context(), err)
	http.Error(w, msg, status)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.Views.Render(w, page, data); err != nil {
		h.Log.ErrorContext(r.Context(), "render failed", "page", page, "error", err)
		http.Error(w, "Something went wrong, please try again later", http.StatusInternalServerError)
	}
}
