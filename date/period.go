package date

import (
	"fmt"
	"strings"
	"time"
)

// Period is a calendar reporting period.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

// periods in increasing length.
var periods = []Period{Daily, Weekly, Monthly, Quarterly, Yearly}

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Unit is the name of one period: day, week, month, quarter or year.
func (p Period) Unit() string {
	return map[Period]string{Daily: "day", Weekly: "week", Monthly: "month", Quarterly: "quarter", Yearly: "year"}[p]
}

// ParsePeriod accepts a period name or its unit, case insensitive.
func ParsePeriod(s string) (Period, error) {
	s = strings.ToLower(s)
	for _, p := range periods {
		if s == p.String() || s == p.Unit() {
			return p, nil
		}
	}
	return Daily, fmt.Errorf("unknown period %q, want one of day, week, month, quarter or year", s)
}

// StartOf returns the first day of the period containing d.
// Weeks start on Monday.
func (d Date) StartOf(p Period) Date {
	switch p {
	case Daily:
		return d
	case Weekly:
		return d.Add(-((int(d.Weekday()) + 6) % 7))
	case Monthly:
		return New(d.y, d.m, 1)
	case Quarterly:
		return New(d.y, d.m-(d.m-1)%3, 1)
	case Yearly:
		return New(d.y, time.January, 1)
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// EndOf returns the last day of the period containing d.
func (d Date) EndOf(p Period) Date {
	start := d.StartOf(p)
	switch p {
	case Daily:
		return d
	case Weekly:
		return start.Add(6)
	case Monthly:
		return New(start.y, start.m+1, 0)
	case Quarterly:
		return New(start.y, start.m+3, 0)
	case Yearly:
		return New(start.y+1, time.January, 0)
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Label is the short name of the period p containing d:
// 2024-01-15, 2024-W03, 2024-01, 2024-Q1 or 2024.
func (p Period) Label(d Date) string {
	switch p {
	case Daily:
		return d.String()
	case Weekly:
		year, week := d.time().ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case Monthly:
		return d.Format(MonthFormat)
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", d.y, (d.m-1)/3+1)
	case Yearly:
		return fmt.Sprint(d.y)
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}
