package services

import (
	"github.com/shopspring/decimal"

	"github.com/baharkarakas/mindbank/internal/apperr"
	"github.com/baharkarakas/mindbank/internal/finance"
	"github.com/baharkarakas/mindbank/internal/models"
)

func ValidateConfigPatch(p models.ConfigPatch) error {
	if err := amount("monthly_salary", p.MonthlySalary); err != nil {
		return err
	}
	return ValidatePercentage("daily_goal_percentage", p.DailyGoalPercentage)
}

func ValidateAssetPatch(p models.AssetPatch) error {
	for _, f := range []struct {
		name string
		v    *decimal.Decimal
	}{
		{"bank_balance", p.BankBalance},
		{"cash_eur", p.CashEUR},
		{"cash_usd", p.CashUSD},
		{"investments", p.Investments},
	} {
		if err := amount(f.name, f.v); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePercentage accepts nil or a value in [0, 100].
func ValidatePercentage(field string, v *decimal.Decimal) error {
	if v == nil {
		return nil
	}
	if v.IsNegative() || v.GreaterThan(hundred) {
		return apperr.Validationf("%s must be between 0 and 100", field)
	}
	return nil
}

// amount accepts nil or a value in [0, finance.MaxAmount].
func amount(field string, v *decimal.Decimal) error {
	switch {
	case v == nil:
		return nil
	case v.IsNegative():
		return apperr.Validationf("%s must not be negative", field)
	case v.GreaterThan(finance.MaxAmount):
		return apperr.Validationf("%s must be <= %s", field, finance.MaxAmount.String())
	}
	return nil
}
