package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp restricts v to [lo, hi]. lo wins if the range is inverted.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Direction returns -1 for negative values and 1 otherwise, so a facing
// derived from it is never zero.
func Direction(v float64) int {
	if v < 0 {
		return -1
	}
	return 1
}

// SubSteps returns how many equal integration steps keep every step's
// displacement at or below stepSize.
func SubSteps(vx, vy, stepSize float64) int {
	if stepSize <= 0 {
		return 1
	}
	n := int(math.Ceil(math.Max(math.Abs(vx), math.Abs(vy)) / stepSize))
	if n < 1 {
		return 1
	}
	return n
}

// Manhattan returns the taxicab distance between two points.
func Manhattan(ax, ay, bx, by float64) float64 {
	return math.Abs(ax-bx) + math.Abs(ay-by)
}
