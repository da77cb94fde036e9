package layout

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FormatFixed formats x with the given number of decimals, rounding exact
// ties away from zero. Dashboards format numbers the same way, so values such
// as 7.25 read "7.3" in both places; strconv would round the tie to even.
func FormatFixed(x float64, decimals int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) || decimals < 0 {
		return strconv.FormatFloat(x, 'f', decimals, 64)
	}

	// The exact decimal expansion of a float64 never needs more than 1074
	// fractional digits.
	exact := new(big.Float).SetFloat64(math.Abs(x)).Text('f', 1100)
	dot := strings.IndexByte(exact, '.')
	rest := strings.TrimRight(exact[dot+1+decimals:], "0")

	if rest != "5" {
		return strconv.FormatFloat(x, 'f', decimals, 64)
	}

	// Exact tie: bump the magnitude by one unit in the last place.
	unit := math.Pow(10, -float64(decimals))
	r := math.Abs(x) + unit/2
	s := strconv.FormatFloat(r, 'f', decimals, 64)
	if x < 0 {
		s = "-" + s
	}
	return s
}
