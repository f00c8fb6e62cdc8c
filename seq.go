// SPDX-License-Identifier: Apache-2.0

package interval

import (
	"iter"

	"github.com/digitalocean/go-interval/internal/bound"
)

// Contains reports whether x lies in i. It is always false for an empty
// interval.
func (i Interval) Contains(x int) bool {
	return i.start <= x && x <= i.end
}

// Len returns the number of integers in i. Intervals holding more than
// math.MaxInt integers report math.MaxInt.
func (i Interval) Len() int {
	return bound.Width(i.start, i.end)
}

// All returns the integers of i in ascending order. The sequence is lazy
// and may be ranged over any number of times.
func (i Interval) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		if i.IsEmpty() {
			return
		}
		for v := i.start; ; v++ {
			if !yield(v) || v == i.end {
				return
			}
		}
	}
}

// Values returns the integers of i as a slice. It allocates Len() elements,
// so it is only suitable for small intervals.
func (i Interval) Values() []int {
	values := make([]int, 0, i.Len())
	for v := range i.All() {
		values = append(values, v)
	}
	return values
}
