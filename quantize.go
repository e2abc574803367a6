package digitbin

import (
	"math"
	"math/big"

	"github.com/digitbin/digitbin/internal/decimalx"
)

// digitPath is a length-P sequence of decimal digits, each in [0,9],
// identifying the bin a quantized weight belongs to.
type digitPath []uint8

// quantize truncates w toward zero to p fractional digits and returns the
// digit path plus the exact integer unit count (10^-p units) it encodes.
// w==1.0 clamps to the all-nines path, the largest representable
// quantized weight at precision p, per the documented overflow rule.
func quantize(w float64, p int) (digitPath, *big.Int, error) {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 || w > 1 {
		return nil, nil, ErrInvalidWeight
	}

	var units *big.Int
	if w == 1.0 {
		units = new(big.Int).Sub(decimalx.Pow10(p), big.NewInt(1))
	} else {
		units = decimalx.TruncateToUnits(w, p)
	}

	return digitsFromUnits(units, p), units, nil
}

// digitsFromUnits decomposes an integer unit count into its p decimal
// digits, most significant first.
func digitsFromUnits(units *big.Int, p int) digitPath {
	path := make(digitPath, p)

	rem := new(big.Int).Set(units)
	ten := big.NewInt(10)
	digit := new(big.Int)

	for i := p - 1; i >= 0; i-- {
		rem.DivMod(rem, ten, digit)
		path[i] = uint8(digit.Int64())
	}

	return path
}

// unitsFromDigits is the inverse of digitsFromUnits.
func unitsFromDigits(path digitPath) *big.Int {
	units := new(big.Int)
	ten := big.NewInt(10)
	for _, d := range path {
		units.Mul(units, ten)
		units.Add(units, big.NewInt(int64(d)))
	}
	return units
}
