// Package arith provides the small integer-arithmetic helpers the
// scheduling analysis is built on: LCM over task periods, and the
// ceiling/floor division used by the demand- and supply-bound functions.
package arith

import "fmt"

// GCD returns the greatest common divisor of a and b via the Euclidean
// algorithm. Panics if both a and b are zero.
func GCD(a, b int64) int64 {
	if a == 0 && b == 0 {
		panic("arith: GCD undefined for (0, 0)")
	}
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of two positive integers.
func LCM(a, b int64) int64 {
	if a <= 0 || b <= 0 {
		panic("arith: LCM requires positive operands")
	}
	return a / GCD(a, b) * b
}

// LCMAll returns the least common multiple of a non-empty slice of
// positive integers. Used to compute the simulation hyperperiod from
// task periods.
func LCMAll(values []int64) int64 {
	if len(values) == 0 {
		panic("arith: LCMAll requires a non-empty slice")
	}
	result := values[0]
	if result <= 0 {
		panic(fmt.Sprintf("arith: LCMAll requires positive values, got %d", result))
	}
	for _, v := range values[1:] {
		result = LCM(result, v)
	}
	return result
}

// CeilDiv returns ceil(a/b) for non-negative a and positive b.
func CeilDiv(a, b int64) int64 {
	if b <= 0 {
		panic("arith: CeilDiv requires a positive divisor")
	}
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// FloorDiv returns floor(a/b) for non-negative a and positive b.
func FloorDiv(a, b int64) int64 {
	if b <= 0 {
		panic("arith: FloorDiv requires a positive divisor")
	}
	if a <= 0 {
		return 0
	}
	return a / b
}
