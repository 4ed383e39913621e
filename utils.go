package lox

import (
	"math"
	"strconv"
)

// FloatVal formats a number the way print shows it: shortest fixed-point
// form, so integral values have no fractional part ("3", not "3.0").
func FloatVal(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
