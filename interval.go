// SPDX-License-Identifier: Apache-2.0

// Package interval implements closed, bounded integer intervals [start..end]
// and the set algebra over them.
//
// An interval is classified as exactly one of:
//   - empty, holding no integers, when start > end
//   - degenerate, holding exactly one integer, when start == end
//   - proper, holding more than one integer, when start < end
//
// Intervals are immutable values. They are comparable with == and may be
// used as map keys.
package interval

// Interval is the closed set {x : start <= x <= end}.
//
// The zero value is the degenerate interval [0]. Use [Empty] for the empty
// interval.
type Interval struct {
	start, end int
}

// Empty returns the canonical empty interval, with start 1 and end 0.
func Empty() Interval {
	return Interval{start: 1, end: 0}
}

// Degenerate returns the interval holding only v.
func Degenerate(v int) Interval {
	return Interval{start: v, end: v}
}

// Proper returns the interval [start..end]. It fails with an
// *InvalidIntervalError unless start < end; use [Degenerate] or [Empty] for
// the other classes.
func Proper(start, end int) (Interval, error) {
	if start < end {
		return Interval{start: start, end: end}, nil
	}
	return Interval{}, &InvalidIntervalError{Start: start, End: end}
}

func MustProper(start, end int) Interval {
	i, err := Proper(start, end)
	if err != nil {
		panic(err)
	}
	return i
}

// New builds an interval from zero, one or two endpoints, dispatching to
// [Empty], [Degenerate] or [Proper]. Any other count fails with an
// *InvalidArityError.
func New(endpoints ...int) (Interval, error) {
	switch len(endpoints) {
	case 0:
		return Empty(), nil
	case 1:
		return Degenerate(endpoints[0]), nil
	case 2:
		return Proper(endpoints[0], endpoints[1])
	default:
		return Interval{}, &InvalidArityError{Arity: len(endpoints)}
	}
}

func (i Interval) Start() int { return i.start }
func (i Interval) End() int   { return i.end }

func (i Interval) IsEmpty() bool      { return i.start > i.end }
func (i Interval) IsDegenerate() bool { return i.start == i.end }
func (i Interval) IsProper() bool     { return i.start < i.end }

// Equal reports whether i and other have the same endpoints. It agrees
// with ==.
func (i Interval) Equal(other Interval) bool {
	return i == other
}

// span builds the interval [start..end] for start <= end, collapsing to a
// degenerate interval when the bounds meet.
func span(start, end int) Interval {
	if start == end {
		return Degenerate(start)
	}
	return MustProper(start, end)
}
