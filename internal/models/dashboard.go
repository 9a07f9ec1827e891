package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dashboard is the recalculated view returned after every read or update.
type Dashboard struct {
	Config          UserConfig      `json:"config"`
	Assets          AssetRecord     `json:"assets"`
	RealizedIncome  decimal.Decimal `json:"realized_income"`
	PotentialIncome decimal.Decimal `json:"potential_income"`
	TotalAssets     decimal.Decimal `json:"total_assets"`
	GlobalPosition  decimal.Decimal `json:"global_position"`
	ExchangeRate    ExchangeRate    `json:"exchange_rate"`
	ComputedAt      time.Time       `json:"computed_at"`
}

// DataSummary reports what the user has configured so far.
type DataSummary struct {
	ConfigLastUpdated       time.Time `json:"config_last_updated"`
	AssetsLastUpdated       time.Time `json:"assets_last_updated"`
	MonthlySalaryConfigured bool      `json:"monthly_salary_configured"`
	AssetsConfigured        bool      `json:"assets_configured"`
}
