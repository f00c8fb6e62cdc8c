// SPDX-License-Identifier: Apache-2.0

// Package bound holds endpoint arithmetic for closed integer intervals that
// stays correct at the edges of the int range.
package bound

import "math"

// Succeeds reports whether b is the immediate successor of a (b == a+1).
// It is false when a is math.MaxInt, which has no successor.
func Succeeds(b, a int) bool {
	return a != math.MaxInt && a+1 == b
}

// Width returns the number of integers in the closed range [start, end],
// or zero when start > end. Ranges holding more than math.MaxInt integers
// report math.MaxInt.
func Width(start, end int) int {
	if start > end {
		return 0
	}
	// Exact in two's complement: end-start never exceeds math.MaxUint.
	n := uint(end) - uint(start)
	if n >= math.MaxInt {
		return math.MaxInt
	}
	return int(n) + 1
}
