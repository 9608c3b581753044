package domain

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// RoundMoney normalizes an amount to 2 decimal places using banker's
// rounding. Applied only when an amount is stored, never mid-calculation.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.RoundBank(2)
}

// PercentOf returns base * pct / 100 without rounding.
func PercentOf(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(oneHundred)
}

// ValidPercentage reports whether pct lies in [0, 100].
func ValidPercentage(pct decimal.Decimal) bool {
	return !pct.IsNegative() && pct.LessThanOrEqual(oneHundred)
}
