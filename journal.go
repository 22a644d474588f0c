package tradejournal

import (
	"github.com/etnz/tradejournal/date"
	"github.com/etnz/tradejournal/source"
)

// Journal is one analysis run: it owns the source and, once loaded, the
// RecordSet read from it. It is not safe for concurrent use.
type Journal struct {
	src      source.Source
	currency string
	records  *RecordSet
}

// NewJournal returns an unloaded journal reading src, amounts in currency.
func NewJournal(src source.Source, currency string) *Journal {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Journal{src: src, currency: currency}
}

// Load reads and cleans the trades. On error the journal is left unloaded.
func (j *Journal) Load() error {
	j.records = nil
	rs, err := Load(j.src, j.currency)
	if err != nil {
		return err
	}
	j.records = rs
	return nil
}

// Loaded reports whether Load succeeded.
func (j *Journal) Loaded() bool { return j.records != nil }

// Records returns the loaded RecordSet.
func (j *Journal) Records() (*RecordSet, error) {
	if j.records == nil {
		return nil, ErrNotLoaded
	}
	return j.records, nil
}

// Restrict narrows the loaded trades to those closed within r.
func (j *Journal) Restrict(r date.Range) error {
	rs, err := j.Records()
	if err != nil {
		return err
	}
	j.records = rs.Between(r)
	return nil
}

// view runs f on the loaded records.
func view[T any](j *Journal, f func(*RecordSet) T) (T, error) {
	rs, err := j.Records()
	if err != nil {
		var zero T
		return zero, err
	}
	return f(rs), nil
}

func (j *Journal) Profile() (Profile, error)        { return view(j, (*RecordSet).Profile) }
func (j *Journal) Stats() (Stats, error)            { return view(j, (*RecordSet).Stats) }
func (j *Journal) Sizes() ([]SizeSummary, error)    { return view(j, (*RecordSet).Sizes) }
func (j *Journal) Monthly() ([]MonthSummary, error) { return view(j, (*RecordSet).Monthly) }
func (j *Journal) Pairs() ([]PairSummary, error)    { return view(j, (*RecordSet).Pairs) }

func (j *Journal) Cumulative() ([]CumulativePoint, error) {
	return view(j, (*RecordSet).Cumulative)
}

func (j *Journal) Periodic(p date.Period) ([]PeriodSummary, error) {
	return view(j, func(rs *RecordSet) []PeriodSummary { return rs.Periodic(p) })
}

func (j *Journal) BestDays(n int) ([]DaySummary, error) {
	return view(j, func(rs *RecordSet) []DaySummary { return rs.BestDays(n) })
}

// Report computes every view at once.
func (j *Journal) Report(topDays int) (*Report, error) {
	return view(j, func(rs *RecordSet) *Report { return NewReport(rs, topDays) })
}
