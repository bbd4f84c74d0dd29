// Package pricefomatter renders on-chain amounts in whole currency units.
package pricefomatter

import (
	"github.com/shopspring/decimal"

	"github.com/x-xyz/escrow/domain"
)

// NativeDecimals is the number of decimals of the payment currency: one
// whole unit is 10^24 of the smallest unit.
const NativeDecimals = 24

// ToFloat converts an amount in the smallest unit to whole units. Precision
// is lost, so it is only meant for metrics.
func ToFloat(a domain.Amount, decimals int32) float64 {
	d, err := decimal.NewFromString(a.String())
	if err != nil {
		// String always yields plain digits
		return 0
	}
	f, _ := d.Shift(-decimals).Float64()
	return f
}
