package scicalc

import (
	"math"
	"math/big"
	"strconv"
)

// FormatResult renders a result as a calculator display shows it. Integral
// values print without a fraction, other values use the shortest decimal that
// rounds back to the same float64, and magnitudes below 1e-4 or from 1e16 up
// use exponent form. The text always parses back to the same value.
func FormatResult(x *big.Float) string {
	f, _ := x.Float64()
	a := math.Abs(f)
	switch {
	case f == 0:
		// Includes -0.
		return "0"
	case math.IsInf(f, 0):
		if f < 0 {
			return "-inf"
		}
		return "inf"
	case a < 1e-4 || a >= 1e16:
		return strconv.FormatFloat(f, 'e', -1, 64)
	default:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}
