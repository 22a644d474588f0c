package tradejournal

import (
	"github.com/etnz/tradejournal/date"
)

// PeriodSummary is the performance of the trades closed in one calendar period.
type PeriodSummary struct {
	Period   string     `json:"period"` // date.Period label, e.g. 2024-W03 or 2024-Q1
	Range    date.Range `json:"-"`
	TotalPnL Money      `json:"total_pnl"`
	AvgPnL   Money      `json:"avg_pnl"`
	Trades   int        `json:"trades"`
	WinRate  Percent    `json:"win_rate"`
}

// Periodic groups trades by the period p of their exit date, in chronological order.
// Periods without trades are not listed.
func (rs *RecordSet) Periodic(p date.Period) []PeriodSummary {
	groups := new(date.History[tally])
	for _, t := range rs.trades {
		groups.Update(t.ExitDate().StartOf(p), func(tl tally) tally {
			if tl.count == 0 {
				tl = newTally(rs.currency)
			}
			tl.add(t)
			return tl
		})
	}

	summaries := make([]PeriodSummary, 0, groups.Len())
	for first, tl := range groups.Values() {
		s := tl.stats()
		summaries = append(summaries, PeriodSummary{
			Period:   p.Label(first),
			Range:    date.NewRange(first, p),
			TotalPnL: s.TotalPnL,
			AvgPnL:   s.AvgPnL,
			Trades:   s.Total,
			WinRate:  s.WinRate,
		})
	}
	return summaries
}

// MonthSummary is the performance of the trades closed in a calendar month.
type MonthSummary struct {
	Month    string     `json:"month"` // YYYY-MM
	Range    date.Range `json:"-"`
	TotalPnL Money      `json:"total_pnl"`
	AvgPnL   Money      `json:"avg_pnl"`
	Trades   int        `json:"trades"`
	WinRate  Percent    `json:"win_rate"`
}

// Monthly groups trades by the month of their exit time, in chronological order.
func (rs *RecordSet) Monthly() []MonthSummary {
	periods := rs.Periodic(date.Monthly)
	months := make([]MonthSummary, len(periods))
	for i, p := range periods {
		months[i] = MonthSummary{
			Month:    p.Period,
			Range:    p.Range,
			TotalPnL: p.TotalPnL,
			AvgPnL:   p.AvgPnL,
			Trades:   p.Trades,
			WinRate:  p.WinRate,
		}
	}
	return months
}
