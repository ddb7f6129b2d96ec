// Package money holds display formatting for monetary amounts. Stored values
// are never rounded; rounding happens only when shaping responses.
package money

import "github.com/shopspring/decimal"

// Round2 rounds an amount to two decimal places, half away from zero.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
