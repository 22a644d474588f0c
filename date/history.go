package date

import (
	"iter"
	"slices"
)

// History stores a chronological series of values, each associated with a specific date.
// It ensures that dates are unique and the series is always sorted.
type History[T any] struct {
	days   []Date
	values []T
}

// Len returns the number of items in the history.
func (h *History[T]) Len() int { return len(h.days) }

// search returns the position of day in the history, and whether it is present.
func (h *History[T]) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(h.days, day, Date.Compare)
}

// Update replaces the value at 'on' with f(previous), previous being the zero
// value if there was no point at that date.
func (h *History[T]) Update(on Date, f func(T) T) *History[T] {
	i, found := h.search(on)
	if found {
		h.values[i] = f(h.values[i])
		return h
	}
	var zero T
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, f(zero))
	return h
}

// Values returns an iterator over all date/value pairs in the history, in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}
