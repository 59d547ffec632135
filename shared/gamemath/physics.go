package gamemath

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ApplyDeadzone zeroes an analog value inside the deadzone and rescales the
// rest so output still spans [-1, 1].
func ApplyDeadzone(v, deadzone float64) float64 {
	if math.Abs(v) <= deadzone || deadzone >= 1 {
		return 0
	}
	sign := 1.0
	if v < 0 {
		sign = -1
	}
	return sign * Clamp((math.Abs(v)-deadzone)/(1-deadzone), 0, 1)
}
