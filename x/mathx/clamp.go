package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AtLeast returns v, or lo when v is below it.
func AtLeast[T constraints.Integer | constraints.Float](v, lo T) T {
	if v < lo {
		return lo
	}
	return v
}
