package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/baharkarakas/mindbank/internal/api/httpx"
	"github.com/baharkarakas/mindbank/internal/api/validate"
	"github.com/baharkarakas/mindbank/internal/api/views"
	"github.com/baharkarakas/mindbank/internal/finance"
)

// DashboardPage serves "/" and "/dashboard".
func (h *Handler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	d, err := h.Dashboard.Dashboard(r.Context())
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.WriteJSON(w, http.StatusOK, toDashboardDTO(d))
		return
	}
	h.render(w, r, views.PageDashboard, views.DashboardPage{
		Dashboard: d,
		Month:     finance.Progress(d.ComputedAt),
		FirstTime: !d.Config.MonthlySalary.IsPositive() && !d.Assets.Configured(),
	})
}

// DashboardData serves GET /api/dashboard-data.
func (h *Handler) DashboardData(w http.ResponseWriter, r *http.Request) {
	d, err := h.Dashboard.Dashboard(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toDashboardDTO(d))
}

type dailyGoalReq struct {
	GoalPercentage *decimal.Decimal `json:"goal_percentage" validate:"required,gte=0,lte=100"`
}

type dailyGoalResp struct {
	Success         bool    `json:"success"`
	PotentialIncome float64 `json:"potential_income"`
	GlobalPosition  float64 `json:"global_position"`
	GoalPercentage  float64 `json:"goal_percentage"`
}

// DailyGoal serves POST /api/daily-goal.
func (h *Handler) DailyGoal(w http.ResponseWriter, r *http.Request) {
	var req dailyGoalReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		h.fail(w, r, err)
		return
	}

	d, err := h.Dashboard.SetDailyGoal(r.Context(), *req.GoalPercentage)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dailyGoalResp{
		Success:         true,
		PotentialIncome: httpx.Amount(d.PotentialIncome),
		GlobalPosition:  httpx.Amount(d.GlobalPosition),
		GoalPercentage:  d.Config.DailyGoalPercentage.InexactFloat64(),
	})
}

// Breakdown serves GET /api/breakdown.
func (h *Handler) Breakdown(w http.ResponseWriter, r *http.Request) {
	b, err := h.Dashboard.Breakdown(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toBreakdownDTO(b))
}

// Summary serves GET /api/summary.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.Dashboard.Summary(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "summary": s})
}
