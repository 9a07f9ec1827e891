package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/baharkarakas/mindbank/internal/models"
)

type AssetLine struct {
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
	ValueEUR decimal.Decimal `json:"value_eur"`
}

// AssetBreakdown lists each holding with its EUR value and the rate used for USD.
type AssetBreakdown struct {
	BankBalance  AssetLine       `json:"bank_balance"`
	CashEUR      AssetLine       `json:"cash_eur"`
	CashUSD      AssetLine       `json:"cash_usd"`
	Investments  AssetLine       `json:"investments"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
	TotalEUR     decimal.Decimal `json:"total_eur"`
}

func BreakdownAssets(a models.AssetRecord, usdToEUR decimal.Decimal) AssetBreakdown {
	if !usdToEUR.IsPositive() {
		usdToEUR = FallbackRate
	}
	eur := func(v decimal.Decimal) AssetLine {
		v = ClampNonNegative(v)
		return AssetLine{Value: v, Currency: "EUR", ValueEUR: v}
	}
	usd := ClampNonNegative(a.CashUSD)
	return AssetBreakdown{
		BankBalance:  eur(a.BankBalance),
		CashEUR:      eur(a.CashEUR),
		CashUSD:      AssetLine{Value: usd, Currency: "USD", ValueEUR: ConvertUSDToEUR(usd, usdToEUR)},
		Investments:  eur(a.Investments),
		ExchangeRate: usdToEUR,
		TotalEUR:     TotalAssets(a, usdToEUR),
	}
}

// IncomeBreakdown details the income model for a given day.
type IncomeBreakdown struct {
	MonthlySalary      decimal.Decimal `json:"monthly_salary"`
	DaysInMonth        int             `json:"days_in_month"`
	CurrentDay         int             `json:"current_day"`
	RemainingDays      int             `json:"remaining_days"`
	DailyIncome        decimal.Decimal `json:"daily_income"`
	RealizedIncome     decimal.Decimal `json:"realized_income"`
	PotentialIncome    decimal.Decimal `json:"potential_income"`
	RemainingPotential decimal.Decimal `json:"remaining_potential"`
	TotalEarnedToday   decimal.Decimal `json:"total_earned_today"`
	ProgressPercentage decimal.Decimal `json:"progress_percentage"`
}

func BreakdownIncome(monthlySalary, goalPercentage decimal.Decimal, today time.Time) IncomeBreakdown {
	salary := ClampNonNegative(monthlySalary)
	days := DaysInMonth(today)
	day := today.Day()
	daily := DailyIncome(salary, days)
	realized := RealizedIncome(salary, today)
	potential := PotentialIncome(salary, goalPercentage, days)
	return IncomeBreakdown{
		MonthlySalary:      salary,
		DaysInMonth:        days,
		CurrentDay:         day,
		RemainingDays:      days - day,
		DailyIncome:        daily,
		RealizedIncome:     realized,
		PotentialIncome:    potential,
		RemainingPotential: daily.Mul(decimal.NewFromInt(int64(days - day))),
		TotalEarnedToday:   realized.Add(potential),
		ProgressPercentage: percentOf(day, days),
	}
}
