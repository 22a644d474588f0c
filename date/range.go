package date

import "fmt"

// Range is a span of days, boundaries included.
type Range struct{ From, To Date }

// NewRange returns the period p containing d.
func NewRange(d Date, p Period) Range { return Range{From: d.StartOf(p), To: d.EndOf(p)} }

// Between returns the days from 'from' to 'to'.
func Between(from, to Date) Range { return Range{From: from, To: to} }

// Contains reports whether day is within r.
func (r Range) Contains(day Date) bool { return !day.Before(r.From) && !day.After(r.To) }

// Period returns the calendar period r spans exactly, if any.
func (r Range) Period() (Period, bool) {
	for _, p := range periods {
		if NewRange(r.From, p) == r {
			return p, true
		}
	}
	return Daily, false
}

// Identifier is the period label of r, or both boundaries when r is not a
// calendar period.
func (r Range) Identifier() string {
	if p, ok := r.Period(); ok {
		return p.Label(r.From)
	}
	return fmt.Sprintf("%s_%s", r.From, r.To)
}

func (r Range) String() string { return fmt.Sprintf("%s to %s", r.From, r.To) }
