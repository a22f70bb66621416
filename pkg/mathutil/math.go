// Package mathutil provides generic integer math helper functions.
package mathutil

// Integer is the set of built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// GCD returns the greatest common divisor of a and b. Negative inputs use their magnitude.
func GCD[T Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}

	if a < 0 {
		return -a
	}

	return a
}

// LCM returns the least common multiple of a and b. LCM(0, x) is 0.
func LCM[T Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}

	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}

	return l
}

// LCMAll folds LCM over values, starting from 1.
func LCMAll[T Integer](values ...T) T {
	acc := T(1)
	for _, v := range values {
		acc = LCM(acc, v)
	}

	return acc
}

// Abs returns the absolute value of v.
func Abs[T Integer](v T) T {
	if v < 0 {
		return -v
	}

	return v
}
