package axis

import "math"

// searchSorted returns the number of leading entries of sorted that are <= x,
// which is also the index of the first entry greater than x. sorted must be
// non-decreasing. The result lies in [0, len(sorted)].
func searchSorted(sorted []float64, x float64) int {
	lo, hi := 0, len(sorted)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if sorted[mid] <= x {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// clampIndex bounds i to [0, n-1]. n must be positive.
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

func nonFinite(v float64) bool {
	return math.IsInf(v, 0) || math.IsNaN(v)
}
