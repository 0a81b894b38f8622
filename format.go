package gocalc

import (
	"math"
	"strconv"
)

// FormatResult returns the display form of value. Integers print without a fractional part or an
// exponent. Other values are rounded to digits decimal places, then printed with the fewest digits
// that represent the rounded value, which drops trailing zeros. Negative zero prints as "0".
//
// The output of FormatResult for a finite value always evaluates back to the same value when given
// to EvaluateExpression.
func FormatResult(value float64, digits int) string {
	if value != math.Trunc(value) {
		rounded, err := strconv.ParseFloat(strconv.FormatFloat(value, 'f', digits, 64), 64)
		if err == nil {
			value = rounded
		}
	}
	if value == 0 {
		return "0" // also covers negative zero
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
