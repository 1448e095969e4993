// Package vmath provides float64 vector math, ray casting primitives and scalar helpers
// shared by the scene, puzzle and pointer packages
package vmath

import "math"

// Epsilon is the tolerance used by intersection tests
const Epsilon = 1e-9

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b, t in [0,1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EaseOutCubic decelerates toward t=1
func EaseOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1)
	u := 1 - t
	return 1 - u*u*u
}

// EaseInQuad accelerates from t=0, used for falling motion
func EaseInQuad(t float64) float64 {
	t = Clamp(t, 0, 1)
	return t * t
}

// IntervalsOverlap reports whether [aMin,aMax] and [bMin,bMax] intersect, touching counts
func IntervalsOverlap(aMin, aMax, bMin, bMax float64) bool {
	return aMin <= bMax && bMin <= aMax
}

// NearlyEqual compares within Epsilon scaled to magnitude
func NearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
