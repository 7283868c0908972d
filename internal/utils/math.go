// internal/utils/math.go
package utils

import "math"

// Distance is the Euclidean distance between two points in tile space.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// FloorCost applies a float multiplier to an integer price and rounds down.
// The epsilon keeps products like 15×1.4^2 from flooring one unit low.
func FloorCost(base float64) int {
	return int(math.Floor(base + 1e-9))
}

// CeilPow returns ceil(x^exp).
func CeilPow(x, exp float64) int {
	return int(math.Ceil(math.Pow(x, exp) - 1e-9))
}

// CeilSqrt returns ceil(sqrt(n)).
func CeilSqrt(n int) int {
	return int(math.Ceil(math.Sqrt(float64(n)) - 1e-9))
}

// MillisToTicks converts a millisecond interval into a whole number of ticks,
// never less than one.
func MillisToTicks(ms, tickRate float64) int {
	ticks := int(math.Ceil(ms*tickRate/1000 - 1e-9))
	if ticks < 1 {
		return 1
	}
	return ticks
}
