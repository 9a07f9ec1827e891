package finance

import (
	"github.com/shopspring/decimal"

	"github.com/baharkarakas/mindbank/internal/models"
)

// MaxAmount is the largest monetary input accepted for any field.
// Keep in step with the lte tags on the HTTP request types.
var MaxAmount = decimal.New(1, 12)

// FallbackRate is the static USD->EUR rate used when no valid rate is known.
var FallbackRate = decimal.RequireFromString("0.85")

// ConvertUSDToEUR converts usd with rate, substituting FallbackRate for a non-positive rate.
func ConvertUSDToEUR(usd, rate decimal.Decimal) decimal.Decimal {
	if !rate.IsPositive() {
		rate = FallbackRate
	}
	return usd.Mul(rate)
}

// TotalAssets sums every holding in EUR. Negative components count as zero.
func TotalAssets(a models.AssetRecord, usdToEUR decimal.Decimal) decimal.Decimal {
	return decimal.Sum(
		ClampNonNegative(a.BankBalance),
		ClampNonNegative(a.CashEUR),
		ConvertUSDToEUR(ClampNonNegative(a.CashUSD), usdToEUR),
		ClampNonNegative(a.Investments),
	)
}
