// Package vmath provides the small float geometry toolkit used by the simulation
// Coordinates live in normalized [0,1]x[0,1] space and scale with the screen
package vmath

// Clamp restricts val to [lo, hi]
func Clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// InRange reports whether lo <= x <= hi
func InRange(x, lo, hi float64) bool {
	return x >= lo && x <= hi
}

// RangesOverlap reports whether [a1, a2] and [b1, b2] share at least one point
func RangesOverlap(a1, a2, b1, b2 float64) bool {
	return a1 <= b2 && b1 <= a2
}
