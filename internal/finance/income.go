package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ClampNonNegative returns d, or zero when d is negative.
func ClampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ClampPercentage bounds p to [0, 100].
func ClampPercentage(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}

// RealizedIncome is the share of the monthly salary attributed to the days of
// the month already elapsed, today included.
func RealizedIncome(monthlySalary decimal.Decimal, today time.Time) decimal.Decimal {
	salary := ClampNonNegative(monthlySalary)
	if salary.IsZero() {
		return decimal.Zero
	}
	day := decimal.NewFromInt(int64(today.Day()))
	days := decimal.NewFromInt(int64(DaysInMonth(today)))
	// multiply first so the last day of the month yields the salary exactly
	return salary.Mul(day).Div(days)
}

// PotentialIncome is today's achievable income: the daily salary scaled by the
// goal completion percentage. daysInMonth <= 0 falls back to a 30-day month.
func PotentialIncome(monthlySalary, goalPercentage decimal.Decimal, daysInMonth int) decimal.Decimal {
	salary := ClampNonNegative(monthlySalary)
	if daysInMonth <= 0 {
		daysInMonth = DefaultDaysInMonth
	}
	goal := ClampPercentage(goalPercentage)
	if salary.IsZero() || goal.IsZero() {
		return decimal.Zero
	}
	return salary.Mul(goal).Div(decimal.NewFromInt(int64(daysInMonth)).Mul(hundred))
}

// DailyIncome is the salary spread evenly over the month.
func DailyIncome(monthlySalary decimal.Decimal, daysInMonth int) decimal.Decimal {
	return PotentialIncome(monthlySalary, hundred, daysInMonth)
}

// GlobalPosition is the headline figure. It is a display aggregate and is not clamped.
func GlobalPosition(totalAssets, realizedIncome, potentialIncome decimal.Decimal) decimal.Decimal {
	return totalAssets.Add(realizedIncome).Add(potentialIncome)
}

func percentOf(part, whole int) decimal.Decimal {
	if whole <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).Mul(hundred).Div(decimal.NewFromInt(int64(whole)))
}
