package tradejournal

// Stats are the overall performance figures of a set of trades.
type Stats struct {
	Total    int     `json:"total"`
	Wins     int     `json:"wins"`   // trades with P&L > 0
	Losses   int     `json:"losses"` // trades with P&L <= 0
	WinRate  Percent `json:"win_rate"`
	TotalPnL Money   `json:"total_pnl"`
	AvgPnL   Money   `json:"avg_pnl"` // 0 when there is no trade
}

// tally accumulates the figures shared by the overall and per group statistics.
type tally struct {
	count, wins int
	sum         Money
}

func newTally(currency string) tally { return tally{sum: M(0, currency)} }

func (t *tally) add(tr Trade) {
	t.count++
	if tr.IsWin() {
		t.wins++
	}
	t.sum = t.sum.Add(tr.PnL)
}

func (t tally) stats() Stats {
	return Stats{
		Total:    t.count,
		Wins:     t.wins,
		Losses:   t.count - t.wins,
		WinRate:  ratio(t.wins, t.count),
		TotalPnL: t.sum,
		AvgPnL:   mean(t.sum, t.count),
	}
}

// Stats computes the overall statistics.
// An empty set has zero figures, including a zero average.
func (rs *RecordSet) Stats() Stats {
	t := newTally(rs.currency)
	for _, tr := range rs.trades {
		t.add(tr)
	}
	return t.stats()
}
