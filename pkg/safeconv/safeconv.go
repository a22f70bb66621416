// Package safeconv provides checked integer arithmetic that panics on overflow.
package safeconv

import "math"

// MustAddSigned adds a signed offset to v, panics if the result leaves the uint64 range.
// Use only when the caller guarantees the shift stays in range.
func MustAddSigned(v uint64, by int64) uint64 {
	if by >= 0 {
		delta := uint64(by)
		if v > math.MaxUint64-delta {
			panic("safeconv: unsigned add overflow")
		}

		return v + delta
	}

	// -(MinInt64) overflows int64, so negate in the unsigned domain.
	delta := uint64(-(by + 1)) + 1
	if v < delta {
		panic("safeconv: unsigned add underflow")
	}

	return v - delta
}

// MustDiff returns a - b as a signed value, panics if it does not fit in int64.
func MustDiff(a, b uint64) int64 {
	if a >= b {
		d := a - b
		if d > math.MaxInt64 {
			panic("safeconv: difference exceeds int64")
		}

		return int64(d)
	}

	d := b - a
	if d > uint64(math.MaxInt64)+1 {
		panic("safeconv: difference exceeds int64")
	}

	return -int64(d - 1) - 1
}
