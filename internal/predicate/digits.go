package predicate

import (
	"math"
	"strconv"
)

// digits returns the decimal digits of n, most significant first.
func digits(n int64) []int {
	s := strconv.FormatInt(n, 10)
	ds := make([]int, 0, len(s))
	for _, r := range s {
		ds = append(ds, int(r-'0'))
	}
	return ds
}

// sumOfSquaredDigits is the step function of the happy-number sequence.
func sumOfSquaredDigits(n int64) int64 {
	var sum int64
	for n > 0 {
		d := n % 10
		sum += d * d
		n /= 10
	}
	return sum
}

// isqrt returns the largest r with r*r <= n.
func isqrt(n uint64) uint64 {
	const maxRoot = 1<<32 - 1

	r := uint64(math.Sqrt(float64(n)))
	if r > maxRoot {
		r = maxRoot
	}
	// The float estimate can be off by one in either direction near 2^64.
	for r*r > n {
		r--
	}
	for r < maxRoot && (r+1)*(r+1) <= n {
		r++
	}
	return r
}
