// SPDX-License-Identifier: Apache-2.0

package interval

import "github.com/digitalocean/go-interval/internal/bound"

// IsSubsetOf reports whether every integer of i is in other. The empty
// interval is a subset of every interval, itself included.
func (i Interval) IsSubsetOf(other Interval) bool {
	if i.IsEmpty() {
		return true
	}
	// other is contiguous, so holding both endpoints of i is enough.
	return other.Contains(i.start) && other.Contains(i.end)
}

func (i Interval) IsSupersetOf(other Interval) bool {
	return other.IsSubsetOf(i)
}

// IsDisjointFrom reports whether i and other share no integer. It is true
// whenever either is empty.
func (i Interval) IsDisjointFrom(other Interval) bool {
	if i.IsEmpty() || other.IsEmpty() {
		return true
	}
	overlaps := i.Contains(other.start) ||
		i.Contains(other.end) ||
		other.Contains(i.start) ||
		other.Contains(i.end)
	return !overlaps
}

// IsAdjacentTo reports whether one of i and other ends exactly one integer
// before the other starts. Empty intervals are never adjacent.
func (i Interval) IsAdjacentTo(other Interval) bool {
	if i.IsEmpty() || other.IsEmpty() {
		return false
	}
	return bound.Succeeds(i.start, other.end) || bound.Succeeds(other.start, i.end)
}

// Intersection returns the integers common to i and other, or the canonical
// empty interval when they are disjoint.
func (i Interval) Intersection(other Interval) Interval {
	if i.IsDisjointFrom(other) {
		return Empty()
	}
	return span(max(i.start, other.start), min(i.end, other.end))
}

// Union returns the single interval covering i and other. When they neither
// overlap nor touch there is no such interval: Union then returns the empty
// interval and false. An empty operand yields the other operand unchanged.
func (i Interval) Union(other Interval) (Interval, bool) {
	if i.IsEmpty() {
		return other, true
	}
	if other.IsEmpty() {
		return i, true
	}
	if i.IsDisjointFrom(other) && !i.IsAdjacentTo(other) {
		return Empty(), false
	}
	return span(min(i.start, other.start), max(i.end, other.end)), true
}
