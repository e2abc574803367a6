// Package decimalx adapts github.com/shopspring/decimal to the integer
// unit representation the index uses internally: a quantized weight at
// precision P is always an exact integer count of 10^-P, so aggregation
// across a tree of up to 10^7 items never needs to round or drift. Decimal
// values only appear at the package boundary (the public total_weight and
// remove APIs).
package decimalx

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Pow10 returns 10^p as a *big.Int.
func Pow10(p int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(p)), nil)
}

// TruncateToUnits truncates w toward zero to p fractional digits and
// returns the result as an integer count of 10^-p units. w must already be
// validated to lie in [0,1] and be finite; 1.0 is not special-cased here,
// callers clamp it to the all-nines path themselves (see quantize in
// package digitbin).
func TruncateToUnits(w float64, p int) *big.Int {
	d := decimal.NewFromFloat(w).Truncate(int32(p))
	return d.Shift(int32(p)).BigInt()
}

// UnitsToDecimal converts an integer unit count back into a Decimal with p
// fractional digits.
func UnitsToDecimal(units *big.Int, p int) decimal.Decimal {
	return decimal.NewFromBigInt(units, -int32(p))
}
