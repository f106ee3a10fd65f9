package utils

import "github.com/shopspring/decimal"

// AmountPrecision is the number of decimal places amounts are displayed and exported with.
const AmountPrecision = 2

// FormatAmount formats an amount with the display precision.
// Example: 12.345 returns "12.35", 100 returns "100.00"
func FormatAmount(amount decimal.Decimal) string {
	return FormatWithPrecision(amount, AmountPrecision)
}

// FormatWithPrecision formats an amount with the given number of decimal places
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
