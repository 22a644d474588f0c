package tradejournal

// Report bundles every view of a RecordSet, in the order they are presented.
type Report struct {
	Currency   string            `json:"currency"`
	TopDays    int               `json:"top_days"`
	Profile    Profile           `json:"profile"`
	Stats      Stats             `json:"stats"`
	Sizes      []SizeSummary     `json:"sizes"`
	Monthly    []MonthSummary    `json:"monthly"`
	BestDays   []DaySummary      `json:"best_days"`
	Pairs      []PairSummary     `json:"pairs"`
	Cumulative []CumulativePoint `json:"cumulative"`
}

// NewReport computes all the views of rs, keeping the topDays best days.
// topDays <= 0 means DefaultTopDays.
func NewReport(rs *RecordSet, topDays int) *Report {
	if topDays <= 0 {
		topDays = DefaultTopDays
	}
	return &Report{
		Currency:   rs.Currency(),
		TopDays:    topDays,
		Profile:    rs.Profile(),
		Stats:      rs.Stats(),
		Sizes:      rs.Sizes(),
		Monthly:    rs.Monthly(),
		BestDays:   rs.BestDays(topDays),
		Pairs:      rs.Pairs(),
		Cumulative: rs.Cumulative(),
	}
}
