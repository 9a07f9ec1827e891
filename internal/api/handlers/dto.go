package handlers

import (
	"time"

	"github.com/baharkarakas/mindbank/internal/api/httpx"
	"github.com/baharkarakas/mindbank/internal/finance"
	"github.com/baharkarakas/mindbank/internal/models"
	"github.com/baharkarakas/mindbank/internal/services"
)

type configDTO struct {
	MonthlySalary       float64   `json:"monthly_salary"`
	DailyGoalPercentage float64   `json:"daily_goal_percentage"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func toConfigDTO(c models.UserConfig) configDTO {
	return configDTO{
		MonthlySalary:       httpx.Amount(c.MonthlySalary),
		DailyGoalPercentage: httpx.Amount(c.DailyGoalPercentage),
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

type assetsDTO struct {
	BankBalance float64   `json:"bank_balance"`
	CashEUR     float64   `json:"cash_eur"`
	CashUSD     float64   `json:"cash_usd"`
	Investments float64   `json:"investments"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toAssetsDTO(a models.AssetRecord) assetsDTO {
	return assetsDTO{
		BankBalance: httpx.Amount(a.BankBalance),
		CashEUR:     httpx.Amount(a.CashEUR),
		CashUSD:     httpx.Amount(a.CashUSD),
		Investments: httpx.Amount(a.Investments),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

type dashboardDTO struct {
	Success         bool      `json:"success"`
	Config          configDTO `json:"config"`
	Assets          assetsDTO `json:"assets"`
	RealizedIncome  float64   `json:"realized_income"`
	PotentialIncome float64   `json:"potential_income"`
	TotalAssets     float64   `json:"total_assets"`
	GlobalPosition  float64   `json:"global_position"`
	ExchangeRate    float64   `json:"exchange_rate"`
	RateSource      string    `json:"rate_source"`
}

func toDashboardDTO(d models.Dashboard) dashboardDTO {
	return dashboardDTO{
		Success:         true,
		Config:          toConfigDTO(d.Config),
		Assets:          toAssetsDTO(d.Assets),
		RealizedIncome:  httpx.Amount(d.RealizedIncome),
		PotentialIncome: httpx.Amount(d.PotentialIncome),
		TotalAssets:     httpx.Amount(d.TotalAssets),
		GlobalPosition:  httpx.Amount(d.GlobalPosition),
		ExchangeRate:    httpx.Rate(d.ExchangeRate.Rate),
		RateSource:      string(d.ExchangeRate.Source),
	}
}

type rateDTO struct {
	Success   bool      `json:"success"`
	Rate      float64   `json:"rate"`
	Source    string    `json:"source"`
	FetchedAt time.Time `json:"fetched_at"`
}

func toRateDTO(r models.ExchangeRate) rateDTO {
	return rateDTO{
		Success:   true,
		Rate:      httpx.Rate(r.Rate),
		Source:    string(r.Source),
		FetchedAt: r.FetchedAt,
	}
}

type rateInfoDTO struct {
	Rate            float64    `json:"rate"`
	Source          string     `json:"source"`
	State           string     `json:"state"`
	LastUpdated     *time.Time `json:"last_updated"`
	CacheValid      bool       `json:"cache_valid"`
	CacheAgeMinutes int        `json:"cache_age_minutes"`
}

type assetLineDTO struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
	ValueEUR float64 `json:"value_eur"`
}

func toAssetLine(l finance.AssetLine) assetLineDTO {
	return assetLineDTO{Value: httpx.Amount(l.Value), Currency: l.Currency, ValueEUR: httpx.Amount(l.ValueEUR)}
}

type assetBreakdownDTO struct {
	BankBalance  assetLineDTO `json:"bank_balance"`
	CashEUR      assetLineDTO `json:"cash_eur"`
	CashUSD      assetLineDTO `json:"cash_usd"`
	Investments  assetLineDTO `json:"investments"`
	ExchangeRate float64      `json:"exchange_rate"`
	TotalEUR     float64      `json:"total_eur"`
}

type incomeBreakdownDTO struct {
	MonthlySalary      float64 `json:"monthly_salary"`
	DaysInMonth        int     `json:"days_in_month"`
	CurrentDay         int     `json:"current_day"`
	RemainingDays      int     `json:"remaining_days"`
	DailyIncome        float64 `json:"daily_income"`
	RealizedIncome     float64 `json:"realized_income"`
	PotentialIncome    float64 `json:"potential_income"`
	RemainingPotential float64 `json:"remaining_potential"`
	TotalEarnedToday   float64 `json:"total_earned_today"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

type breakdownDTO struct {
	Success    bool                  `json:"success"`
	Assets     assetBreakdownDTO     `json:"assets"`
	Income     incomeBreakdownDTO    `json:"income"`
	Month      finance.MonthProgress `json:"month"`
	RateSource string                `json:"rate_source"`
}

func toBreakdownDTO(b services.Breakdown) breakdownDTO {
	in := b.Income
	return breakdownDTO{
		Success: true,
		Assets: assetBreakdownDTO{
			BankBalance:  toAssetLine(b.Assets.BankBalance),
			CashEUR:      toAssetLine(b.Assets.CashEUR),
			CashUSD:      toAssetLine(b.Assets.CashUSD),
			Investments:  toAssetLine(b.Assets.Investments),
			ExchangeRate: httpx.Rate(b.Assets.ExchangeRate),
			TotalEUR:     httpx.Amount(b.Assets.TotalEUR),
		},
		Income: incomeBreakdownDTO{
			MonthlySalary:      httpx.Amount(in.MonthlySalary),
			DaysInMonth:        in.DaysInMonth,
			CurrentDay:         in.CurrentDay,
			RemainingDays:      in.RemainingDays,
			DailyIncome:        httpx.Amount(in.DailyIncome),
			RealizedIncome:     httpx.Amount(in.RealizedIncome),
			PotentialIncome:    httpx.Amount(in.PotentialIncome),
			RemainingPotential: httpx.Amount(in.RemainingPotential),
			TotalEarnedToday:   httpx.Amount(in.TotalEarnedToday),
			ProgressPercentage: in.ProgressPercentage.Round(1).InexactFloat64(),
		},
		Month:      b.Month,
		RateSource: string(b.Rate.Source),
	}
}
