package tradejournal

import "slices"

// PairSummary is the total P&L made on one instrument.
type PairSummary struct {
	Symbol   string `json:"symbol"`
	TotalPnL Money  `json:"total_pnl"`
	Trades   int    `json:"trades"`
}

// Pairs ranks every symbol by total P&L, most profitable first.
// Symbols with equal totals keep their order of first appearance.
func (rs *RecordSet) Pairs() []PairSummary {
	var pairs []PairSummary
	index := make(map[string]int)
	for _, t := range rs.trades {
		i, ok := index[t.Symbol]
		if !ok {
			i = len(pairs)
			index[t.Symbol] = i
			pairs = append(pairs, PairSummary{Symbol: t.Symbol, TotalPnL: rs.zero()})
		}
		pairs[i].TotalPnL = pairs[i].TotalPnL.Add(t.PnL)
		pairs[i].Trades++
	}
	slices.SortStableFunc(pairs, func(a, b PairSummary) int { return b.TotalPnL.Compare(a.TotalPnL) })
	if pairs == nil {
		return []PairSummary{}
	}
	return pairs
}
