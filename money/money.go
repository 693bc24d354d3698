// Package money centralizes the exact-decimal rounding policy used across the
// pro forma engine. Every monetary amount and rate flows through decimal.Decimal;
// this package never introduces float64.
package money

import "github.com/shopspring/decimal"

// Rounding scale for dollar amounts: half up, 2 decimal places.
var TwoPlaces = int32(2)

// Rounding scale for rates and ratios: half up, 4 decimal places.
var FourPlaces = int32(4)

// Dollars rounds a monetary amount half-up to the cent.
func Dollars(d decimal.Decimal) decimal.Decimal {
	return d.Round(TwoPlaces)
}

// Rate rounds a rate or ratio half-up to four decimal places.
func Rate(d decimal.Decimal) decimal.Decimal {
	return d.Round(FourPlaces)
}

// Zero is the canonical zero decimal, used to avoid repeated decimal.NewFromInt(0) calls.
var Zero = decimal.Zero

// Clamp returns d bounded to [lo, hi].
func Clamp(d, lo, hi decimal.Decimal) decimal.Decimal {
	if d.LessThan(lo) {
		return lo
	}
	if d.GreaterThan(hi) {
		return hi
	}
	return d
}

// Max returns the greater of a and b.
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Min returns the lesser of a and b.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}
