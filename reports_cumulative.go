package tradejournal

import (
	"slices"
	"time"
)

// CumulativePoint is the running P&L right after a trade exit.
type CumulativePoint struct {
	ExitTime   time.Time `json:"exit_time"`
	PnL        Money     `json:"pnl"`
	Cumulative Money     `json:"cumulative"`
}

// Cumulative returns the running sum of P&L in exit time order.
// Trades closed at the same instant keep their source order.
func (rs *RecordSet) Cumulative() []CumulativePoint {
	trades := slices.Clone(rs.trades)
	slices.SortStableFunc(trades, func(a, b Trade) int { return a.ExitTime.Compare(b.ExitTime) })

	points := make([]CumulativePoint, 0, len(trades))
	sum := rs.zero()
	for _, t := range trades {
		sum = sum.Add(t.PnL)
		points = append(points, CumulativePoint{ExitTime: t.ExitTime, PnL: t.PnL, Cumulative: sum})
	}
	return points
}
