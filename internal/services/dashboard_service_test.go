package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/mindbank/internal/apperr"
	"github.com/baharkarakas/mindbank/internal/models"
	repo "github.com/baharkarakas/mindbank/internal/repository"
)

func newDashboard(t *testing.T, rate fixedRate) (*DashboardService, *memRecords) {
	t.Helper()
	rec := newMemRecords()
	svc := NewDashboardService(NewStore(rec, discard()), rate, discard())
	svc.now = func() time.Time { return time.Date(2025, time.July, 8, 14, 0, 0, 0, time.UTC) }
	return svc, rec
}

func TestDashboard_Scenario(t *testing.T) {
	svc, _ := newDashboard(t, rateOf("0.85", models.RateFallback))
	ctx := context.Background()

	_, err := svc.UpdateConfig(ctx, models.ConfigPatch{MonthlySalary: dec("3000"), DailyGoalPercentage: dec("50")})
	require.NoError(t, err)
	d, err := svc.UpdateAssets(ctx, models.AssetPatch{
		BankBalance: dec("1000"),
		CashEUR:     dec("100"),
		CashUSD:     dec("200"),
		Investments: dec("500"),
	})
	require.NoError(t, err)

	assert.Equal(t, "774.19", d.RealizedIncome.StringFixed(2))
	assert.Equal(t, "48.39", d.PotentialIncome.StringFixed(2))
	assert.True(t, d.TotalAssets.Equal(decimal.NewFromInt(1770)))
	assert.Equal(t, "2592.58", d.GlobalPosition.StringFixed(2))
	assert.Equal(t, models.RateFallback, d.ExchangeRate.Source)
}

func TestDashboard_UpdateConfigIsIdempotent(t *testing.T) {
	svc, rec := newDashboard(t, rateOf("0.85", models.RateCached))
	svc.store.now = svc.now
	ctx := context.Background()

	_, err := svc.UpdateAssets(ctx, models.AssetPatch{BankBalance: dec("1000"), CashUSD: dec("200")})
	require.NoError(t, err)

	patch := models.ConfigPatch{MonthlySalary: dec("3000"), DailyGoalPercentage: dec("50")}
	first, err := svc.UpdateConfig(ctx, patch)
	require.NoError(t, err)
	stored := string(rec.data[repo.KeyUserConfig])

	second, err := svc.UpdateConfig(ctx, patch)
	require.NoError(t, err)

	assert.JSONEq(t, stored, string(rec.data[repo.KeyUserConfig]))
	assert.True(t, first.Config.MonthlySalary.Equal(second.Config.MonthlySalary))
	assert.True(t, first.Config.DailyGoalPercentage.Equal(second.Config.DailyGoalPercentage))
	assert.True(t, first.GlobalPosition.Equal(second.GlobalPosition),
		"%s != %s", first.GlobalPosition, second.GlobalPosition)
	assert.Equal(t, "1992.58", second.GlobalPosition.StringFixed(2))
}

func TestDashboard_EmptyStore(t *testing.T) {
	svc, _ := newDashboard(t, rateOf("0.91", models.RateLive))

	d, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.True(t, d.GlobalPosition.IsZero())
	assert.True(t, d.ExchangeRate.Rate.Equal(decimal.RequireFromString("0.91")))
}

func TestDashboard_SetDailyGoal(t *testing.T) {
	svc, _ := newDashboard(t, rateOf("0.85", models.RateCached))
	ctx := context.Background()

	_, err := svc.UpdateConfig(ctx, models.ConfigPatch{MonthlySalary: dec("3100")})
	require.NoError(t, err)

	d, err := svc.SetDailyGoal(ctx, decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Equal(t, "100.00", d.PotentialIncome.StringFixed(2))
	assert.Equal(t, "3100", d.Config.MonthlySalary.String())

	_, err = svc.SetDailyGoal(ctx, decimal.NewFromInt(101))
	assert.True(t, apperr.IsValidation(err))

	d, err = svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, "100", d.Config.DailyGoalPercentage.String())
}

func TestDashboard_Breakdown(t *testing.T) {
	svc, _ := newDashboard(t, rateOf("0.85", models.RateLive))
	ctx := context.Background()

	_, err := svc.UpdateConfig(ctx, models.ConfigPatch{MonthlySalary: dec("3100"), DailyGoalPercentage: dec("50")})
	require.NoError(t, err)
	_, err = svc.UpdateAssets(ctx, models.AssetPatch{CashUSD: dec("200")})
	require.NoError(t, err)

	b, err := svc.Breakdown(ctx)
	require.NoError(t, err)
	assert.Equal(t, 31, b.Month.DaysInMonth)
	assert.Equal(t, "July", b.Month.MonthName)
	assert.True(t, b.Income.RealizedIncome.Equal(decimal.NewFromInt(800)))
	assert.True(t, b.Assets.CashUSD.ValueEUR.Equal(decimal.NewFromInt(170)))
	assert.Equal(t, models.RateLive, b.Rate.Source)
}
