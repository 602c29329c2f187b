package calc

import (
	"math"
	"strconv"
)

// Epsilon is how close a result must be to an integer to be shown as one.
const Epsilon = 1e-10

// significantDigits bounds non-integral results so binary rounding noise
// (0.1+0.2 = 0.30000000000000004) never reaches the display.
const significantDigits = 15

// Format renders a result for the display.
//
// Values within Epsilon of an integer are shown as that integer, with no
// decimal point and never as "-0". Other values are rounded to 15
// significant digits and shown in plain decimal notation, so the display
// never carries more than 15 significant digits of a fraction: 1 ÷ 3
// shows 0.333333333333333.
func Format(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	r := math.Round(x)
	if math.Abs(x-r) < Epsilon {
		if r > math.MinInt64 && r < math.MaxInt64 {
			return strconv.FormatInt(int64(r), 10)
		}
		return strconv.FormatFloat(r, 'f', 0, 64)
	}
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'g', significantDigits, 64), 64)
	if err != nil {
		v = x
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseDisplay reads a display string as a finite number.
func parseDisplay(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
