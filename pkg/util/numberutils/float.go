package numberutils

import "math"

// RoundHalfUp rounds x to the nearest integer, with halves going towards
// positive infinity: 2.5 -> 3, -2.5 -> -2.
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// RoundTo rounds x half-up to the given number of decimal places.
func RoundTo(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Floor(x*p+0.5) / p
}
