package mathutil

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Interpolate returns a + (b-a)*t. t is not clamped.
func Interpolate[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Deg2Rad converts degrees to radians.
func Deg2Rad[T constraints.Float](d T) T {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg[T constraints.Float](r T) T {
	return r * 180 / math.Pi
}
