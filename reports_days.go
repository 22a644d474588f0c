package tradejournal

import (
	"slices"

	"github.com/etnz/tradejournal/date"
)

// DefaultTopDays is the number of best days reported when none is asked.
const DefaultTopDays = 5

// DaySummary is the total P&L of the trades closed on one day.
type DaySummary struct {
	Date     date.Date `json:"date"`
	TotalPnL Money     `json:"total_pnl"`
}

// Daily returns the total P&L per exit date, in chronological order.
func (rs *RecordSet) Daily() []DaySummary {
	days := new(date.History[Money])
	for _, t := range rs.trades {
		days.Update(t.ExitDate(), func(sum Money) Money { return sum.Add(t.PnL) })
	}
	summaries := make([]DaySummary, 0, days.Len())
	for on, sum := range days.Values() {
		summaries = append(summaries, DaySummary{Date: on, TotalPnL: sum})
	}
	return summaries
}

// BestDays returns the n days with the highest total P&L, best first.
// Days with equal totals are listed chronologically. n <= 0 means DefaultTopDays.
func (rs *RecordSet) BestDays(n int) []DaySummary {
	if n <= 0 {
		n = DefaultTopDays
	}
	days := rs.Daily()
	slices.SortStableFunc(days, func(a, b DaySummary) int { return b.TotalPnL.Compare(a.TotalPnL) })
	return days[:min(n, len(days))]
}
