package finance

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Cents rounds an amount for presentation.
func Cents(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

var (
	minInt64 = decimal.NewFromInt(-1 << 63)
	maxInt64 = decimal.NewFromInt(1<<63 - 1)
)

// Format renders an amount in the currency's notation, e.g. "€1,770.00".
func Format(d decimal.Decimal, currency string) string {
	// money.New never returns a nil currency, unknown codes included
	cur := money.New(0, currency).Currency()
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	if minor.LessThan(minInt64) || minor.GreaterThan(maxInt64) {
		return formatWide(minor, cur)
	}
	return money.New(minor.IntPart(), currency).Display()
}

// formatWide lays out minor units that do not fit in an int64 the same way
// go-money does.
func formatWide(minor decimal.Decimal, cur *money.Currency) string {
	sa := minor.Abs().String()
	if len(sa) <= cur.Fraction {
		sa = strings.Repeat("0", cur.Fraction-len(sa)+1) + sa
	}
	if cur.Thousand != "" {
		for i := len(sa) - cur.Fraction - 3; i > 0; i -= 3 {
			sa = sa[:i] + cur.Thousand + sa[i:]
		}
	}
	if cur.Fraction > 0 {
		sa = sa[:len(sa)-cur.Fraction] + cur.Decimal + sa[len(sa)-cur.Fraction:]
	}
	sa = strings.Replace(cur.Template, "1", sa, 1)
	sa = strings.Replace(sa, "$", cur.Grapheme, 1)
	if minor.IsNegative() {
		sa = "-" + sa
	}
	return sa
}

// FormatEUR is Format for euros.
func FormatEUR(d decimal.Decimal) string { return Format(d, money.EUR) }
