package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserConfig is the single configuration record of the installation.
type UserConfig struct {
	MonthlySalary       decimal.Decimal `json:"monthly_salary"`
	DailyGoalPercentage decimal.Decimal `json:"daily_goal_percentage"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func DefaultConfig(now time.Time) UserConfig {
	return UserConfig{
		MonthlySalary:       decimal.Zero,
		DailyGoalPercentage: decimal.Zero,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// ConfigPatch carries the fields of a partial config update. Nil fields are left untouched.
type ConfigPatch struct {
	MonthlySalary       *decimal.Decimal
	DailyGoalPercentage *decimal.Decimal
}

func (p ConfigPatch) Apply(c UserConfig) UserConfig {
	if p.MonthlySalary != nil {
		c.MonthlySalary = *p.MonthlySalary
	}
	if p.DailyGoalPercentage != nil {
		c.DailyGoalPercentage = *p.DailyGoalPercentage
	}
	return c
}
