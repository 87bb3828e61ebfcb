package util

import (
	"math"
	"strconv"
)

// ShortestPrecision renders the fewest digits that round-trip the value.
const ShortestPrecision = -1

// FormatValue renders a component value with a fixed number of decimals.
// 1000 -> "1000" (shortest), 1000 -> "1000.000" (precision 3)
func FormatValue(value float64, precision int) string {
	if precision < ShortestPrecision {
		precision = ShortestPrecision
	}
	if value == 0 {
		value = 0 // drop negative zero
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// IsFinitePositive reports whether value can be used as a component value.
func IsFinitePositive(value float64) bool {
	return value > 0 && !math.IsInf(value, 0) && !math.IsNaN(value)
}
