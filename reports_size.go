package tradejournal

// SizeSummary is the impact of one trade size on P&L.
type SizeSummary struct {
	Size   string `json:"size"`
	AvgPnL Money  `json:"avg_pnl"`
	Trades int    `json:"trades"`
}

// Sizes groups trades by size, in order of first appearance.
func (rs *RecordSet) Sizes() []SizeSummary {
	var order []string
	groups := make(map[string]*tally)
	for _, t := range rs.trades {
		g, ok := groups[t.Size]
		if !ok {
			tl := newTally(rs.currency)
			g = &tl
			groups[t.Size] = g
			order = append(order, t.Size)
		}
		g.add(t)
	}

	summaries := make([]SizeSummary, 0, len(order))
	for _, size := range order {
		s := groups[size].stats()
		summaries = append(summaries, SizeSummary{Size: size, AvgPnL: s.AvgPnL, Trades: s.Total})
	}
	return summaries
}
