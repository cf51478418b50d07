package shape

import "golang.org/x/exp/constraints"

// Clamp bounds x to the interval [lo, hi]. It returns lo if x < lo, hi if x > hi
// and x otherwise.
//
// The two comparisons are independent and lo <= hi is not checked. With lo > hi,
// the result is lo for x < lo and hi otherwise.
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
