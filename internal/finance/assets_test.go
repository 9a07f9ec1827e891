package finance

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/baharkarakas/mindbank/internal/models"
)

func TestTotalAssets_Scenario(t *testing.T) {
	a := models.AssetRecord{
		BankBalance: d("1000"),
		CashEUR:     d("100"),
		CashUSD:     d("200"),
		Investments: d("500"),
	}

	got := TotalAssets(a, d("0.85"))
	assert.True(t, got.Equal(d("1770")), got.String())
}

func TestTotalAssets_ClampsNegatives(t *testing.T) {
	a := models.AssetRecord{
		BankBalance: d("-1000"),
		CashEUR:     d("100"),
		CashUSD:     d("-200"),
		Investments: d("500"),
	}

	got := TotalAssets(a, d("0.85"))
	assert.True(t, got.Equal(d("600")), got.String())
}

func TestTotalAssets_OrderInvariant(t *testing.T) {
	values := []decimal.Decimal{d("10.10"), d("200.02"), d("3000.30")}
	rate := d("0.9123")
	want := TotalAssets(models.AssetRecord{BankBalance: values[0], CashEUR: values[1], Investments: values[2]}, rate)

	perms := [][3]int{{0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for _, p := range perms {
		a := models.AssetRecord{BankBalance: values[p[0]], CashEUR: values[p[1]], Investments: values[p[2]]}
		assert.True(t, TotalAssets(a, rate).Equal(want), "%v", p)
	}
}

func TestTotalAssets_NonPositiveRateUsesFallback(t *testing.T) {
	a := models.AssetRecord{CashUSD: d("100")}

	assert.True(t, TotalAssets(a, decimal.Zero).Equal(d("85")))
	assert.True(t, TotalAssets(a, d("-1")).Equal(d("85")))
}

func TestConvertUSDToEUR(t *testing.T) {
	rate := d("0.9134")

	assert.True(t, ConvertUSDToEUR(decimal.Zero, rate).IsZero())

	x, y := d("123.45"), d("67.891")
	sum := ConvertUSDToEUR(x.Add(y), rate)
	assert.True(t, sum.Equal(ConvertUSDToEUR(x, rate).Add(ConvertUSDToEUR(y, rate))))
	assert.True(t, ConvertUSDToEUR(x.Mul(d("3")), rate).Equal(ConvertUSDToEUR(x, rate).Mul(d("3"))))

	assert.True(t, ConvertUSDToEUR(d("200"), decimal.Zero).Equal(d("170")))
}

func TestBreakdownAssets(t *testing.T) {
	a := models.AssetRecord{
		BankBalance: d("1000"),
		CashEUR:     d("100"),
		CashUSD:     d("200"),
		Investments: d("500"),
	}

	b := BreakdownAssets(a, d("0.85"))

	assert.Equal(t, "USD", b.CashUSD.Currency)
	assert.True(t, b.CashUSD.Value.Equal(d("200")))
	assert.True(t, b.CashUSD.ValueEUR.Equal(d("170")))
	assert.Equal(t, "EUR", b.BankBalance.Currency)
	assert.True(t, b.TotalEUR.Equal(d("1770")))
	assert.True(t, b.ExchangeRate.Equal(d("0.85")))
}

func TestBreakdownIncome(t *testing.T) {
	b := BreakdownIncome(d("3100"), d("50"), time.Date(2025, time.July, 8, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, 31, b.DaysInMonth)
	assert.Equal(t, 8, b.CurrentDay)
	assert.Equal(t, 23, b.RemainingDays)
	assert.True(t, b.DailyIncome.Equal(d("100")))
	assert.True(t, b.RealizedIncome.Equal(d("800")))
	assert.True(t, b.PotentialIncome.Equal(d("50")))
	assert.True(t, b.RemainingPotential.Equal(d("2300")))
	assert.True(t, b.TotalEarnedToday.Equal(d("850")))
	assert.Equal(t, "25.8", b.ProgressPercentage.StringFixed(1))
}

func TestFormatEUR(t *testing.T) {
	assert.Contains(t, FormatEUR(d("1770")), "1,770.00")
	assert.Contains(t, FormatEUR(d("774.1935")), "774.19")
}

func TestFormatEUR_LargeAmounts(t *testing.T) {
	got := FormatEUR(MaxAmount)
	assert.Contains(t, got, "1,000,000,000,000.00")
	assert.False(t, strings.HasPrefix(got, "-"), got)

	got = FormatEUR(d("1e17"))
	assert.Contains(t, got, "100,000,000,000,000,000.00")
	assert.False(t, strings.HasPrefix(got, "-"), got)

	got = FormatEUR(d("-1e17"))
	assert.True(t, strings.HasPrefix(got, "-"), got)
	assert.Contains(t, got, "100,000,000,000,000,000.00")
}
