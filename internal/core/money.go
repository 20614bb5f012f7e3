// Amounts are kept as float64 in the document for compatibility with
// existing backups. Rounding for display goes through decimal so totals
// print the same way regardless of accumulated float error.

package core

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Fixed2 formats v with exactly two decimals, rounding half away from zero.
//
// Examples:
//
//	Fixed2(12.345) -> "12.35"
//	Fixed2(10)     -> "10.00"
func Fixed2(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// SumFixed2 adds the values as decimals and formats the result.
func SumFixed2(values []float64) string {
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(decimal.NewFromFloat(v))
	}
	return sum.StringFixed(2)
}

// Display renders v in the given ISO currency, e.g. "1 234,50 ₽" for RUB.
// Unknown currency codes fall back to the plain fixed-point form.
func Display(v float64, currency string) string {
	if money.GetCurrency(currency) == nil {
		return Fixed2(v) + " " + currency
	}
	return money.NewFromFloat(v, currency).Display()
}
