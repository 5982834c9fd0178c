// Package rounding holds the single rounding rule applied to monetary input.
// Every amount accepted from the outside goes through HalfUp before any
// balance arithmetic; nothing else in the codebase rounds.
package rounding

import "math"

// HalfUp rounds x to the nearest integer, ties away from zero:
// HalfUp(2.5) == 3, HalfUp(-2.5) == -3, HalfUp(2.4) == 2.
// Non-finite input (NaN, ±Inf) is returned unchanged; callers must reject it
// before using the result in a money field.
func HalfUp(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	sign := 1.0
	if x < 0 {
		sign = -1.0
	}
	abs := math.Abs(x)
	flo := math.Floor(abs)
	if abs-flo >= 0.5 {
		flo++
	}
	return sign * flo
}

// HalfUpInt applies HalfUp and converts to int64 minor units. ok is false for
// non-finite input or values outside the int64 range.
func HalfUpInt(x float64) (amount int64, ok bool) {
	r := HalfUp(x)
	if math.IsNaN(r) || math.IsInf(r, 0) || r > math.MaxInt64 || r < math.MinInt64 {
		return 0, false
	}
	return int64(r), true
}
