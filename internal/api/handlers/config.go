package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/baharkarakas/mindbank/internal/api/httpx"
	"github.com/baharkarakas/mindbank/internal/api/validate"
	"github.com/baharkarakas/mindbank/internal/api/views"
	"github.com/baharkarakas/mindbank/internal/models"
)

// ConfigPage serves GET /config.
func (h *Handler) ConfigPage(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Store.LoadConfig(r.Context())
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	assets, err := h.Store.LoadAssets(r.Context())
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"config":  toConfigDTO(cfg),
			"assets":  toAssetsDTO(assets),
		})
		return
	}
	h.render(w, r, views.PageConfig, views.ConfigPage{Config: cfg, Assets: assets})
}

type updateConfigReq struct {
	MonthlySalary       *decimal.Decimal `json:"monthly_salary" validate:"omitnil,gte=0,lte=1000000000000"`
	DailyGoalPercentage *decimal.Decimal `json:"daily_goal_percentage" validate:"omitnil,gte=0,lte=100"`
}

// UpdateConfig serves POST /api/update-config. Absent fields keep their value.
func (h *Handler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req updateConfigReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		h.fail(w, r, err)
		return
	}

	_, err := h.Dashboard.UpdateConfig(r.Context(), models.ConfigPatch{
		MonthlySalary:       req.MonthlySalary,
		DailyGoalPercentage: req.DailyGoalPercentage,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteOK(w, "Configuration updated successfully")
}

type updateAssetsReq struct {
	BankBalance *decimal.Decimal `json:"bank_balance" validate:"omitnil,gte=0,lte=1000000000000"`
	CashEUR     *decimal.Decimal `json:"cash_eur" validate:"omitnil,gte=0,lte=1000000000000"`
	CashUSD     *decimal.Decimal `json:"cash_usd" validate:"omitnil,gte=0,lte=1000000000000"`
	Investments *decimal.Decimal `json:"investments" validate:"omitnil,gte=0,lte=1000000000000"`
}

// UpdateAssets serves POST /api/update-assets.
func (h *Handler) UpdateAssets(w http.ResponseWriter, r *http.Request) {
	var req updateAssetsReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		h.fail(w, r, err)
		return
	}

	_, err := h.Dashboard.UpdateAssets(r.Context(), models.AssetPatch{
		BankBalance: req.BankBalance,
		CashEUR:     req.CashEUR,
		CashUSD:     req.CashUSD,
		Investments: req.Investments,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteOK(w, "Assets updated successfully")
}
