package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetRecord holds the user's holdings. CashUSD stays in dollars; it is only
// converted to EUR when assets are aggregated.
type AssetRecord struct {
	BankBalance decimal.Decimal `json:"bank_balance"`
	CashEUR     decimal.Decimal `json:"cash_eur"`
	CashUSD     decimal.Decimal `json:"cash_usd"`
	Investments decimal.Decimal `json:"investments"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func DefaultAssets(now time.Time) AssetRecord {
	return AssetRecord{
		BankBalance: decimal.Zero,
		CashEUR:     decimal.Zero,
		CashUSD:     decimal.Zero,
		Investments: decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Configured reports whether any holding is above zero.
func (a AssetRecord) Configured() bool {
	return a.BankBalance.IsPositive() || a.CashEUR.IsPositive() || a.CashUSD.IsPositive() || a.Investments.IsPositive()
}

type AssetPatch struct {
	BankBalance *decimal.Decimal
	CashEUR     *decimal.Decimal
	CashUSD     *decimal.Decimal
	Investments *decimal.Decimal
}

func (p AssetPatch) Apply(a AssetRecord) AssetRecord {
	if p.BankBalance != nil {
		a.BankBalance = *p.BankBalance
	}
	if p.CashEUR != nil {
		a.CashEUR = *p.CashEUR
	}
	if p.CashUSD != nil {
		a.CashUSD = *p.CashUSD
	}
	if p.Investments != nil {
		a.Investments = *p.Investments
	}
	return a
}
