package handlers

import (
	"net/http"

	"github.com/baharkarakas/mindbank/internal/api/httpx"
)

// ExchangeRate serves GET /api/exchange-rate.
func (h *Handler) ExchangeRate(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, toRateDTO(h.Rates.Current(r.Context())))
}

// RefreshExchangeRate serves POST /api/exchange-rate/refresh.
func (h *Handler) RefreshExchangeRate(w http.ResponseWriter, r *http.Request) {
	rate := h.Rates.Refresh(r.Context())
	h.Log.InfoContext(r.Context(), "exchange rate refresh requested", "source", string(rate.Source))
	httpx.WriteJSON(w, http.StatusOK, toRateDTO(rate))
}

// ExchangeRateInfo serves GET /api/exchange-rate/info.
func (h *Handler) ExchangeRateInfo(w http.ResponseWriter, r *http.Request) {
	info := h.Rates.Info(r.Context())
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"info": rateInfoDTO{
			Rate:            httpx.Rate(info.Rate),
			Source:          string(info.Source),
			State:           string(info.State),
			LastUpdated:     info.LastUpdated,
			CacheValid:      info.CacheValid,
			CacheAgeMinutes: info.CacheAgeMinutes,
		},
	})
}
