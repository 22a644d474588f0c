package tradejournal

import (
	"iter"
	"slices"
	"time"

	"github.com/etnz/tradejournal/date"
)

// Trade is one executed trade of the journal.
type Trade struct {
	EntryTime time.Time `json:"entry_time"`
	ExitTime  time.Time `json:"exit_time"`
	PnL       Money     `json:"pnl"`
	Size      string    `json:"size"`   // opaque grouping label
	Symbol    string    `json:"symbol"` // instrument identifier
}

// ExitDate is the calendar day the trade was closed.
func (t Trade) ExitDate() date.Date { return date.Of(t.ExitTime) }

// IsWin reports whether the trade made a strictly positive P&L.
func (t Trade) IsWin() bool { return t.PnL.IsPositive() }

// RecordSet is the immutable, ordered set of trades of one analysis run.
// Order is the source order.
type RecordSet struct {
	currency string
	trades   []Trade
	profile  Profile
}

// NewRecordSet returns a RecordSet holding a copy of trades.
// Trades without a currency are assigned 'currency', a trade in another
// currency is a *CurrencyError.
func NewRecordSet(currency string, trades ...Trade) (*RecordSet, error) {
	if currency == "" {
		currency = DefaultCurrency
	}
	rs := &RecordSet{currency: currency, trades: make([]Trade, len(trades))}
	for i, t := range trades {
		switch c := t.PnL.Currency(); c {
		case "":
			t.PnL = t.PnL.withCurrency(currency)
		case currency:
		default:
			return nil, &CurrencyError{Trade: i, Currency: c, Want: currency}
		}
		rs.trades[i] = t
	}
	return rs, nil
}

// Len returns the number of trades.
func (rs *RecordSet) Len() int { return len(rs.trades) }

// Currency returns the currency of every P&L of the set.
func (rs *RecordSet) Currency() string { return rs.currency }

// Profile returns the structural summary of the table the trades were loaded from.
func (rs *RecordSet) Profile() Profile { return rs.profile }

// Trades returns a copy of the trades.
func (rs *RecordSet) Trades() []Trade { return slices.Clone(rs.trades) }

// All iterates over the trades in source order.
func (rs *RecordSet) All() iter.Seq2[int, Trade] { return slices.All(rs.trades) }

// Between returns the trades closed within r, source order preserved.
func (rs *RecordSet) Between(r date.Range) *RecordSet {
	sub := &RecordSet{currency: rs.currency, profile: rs.profile}
	for _, t := range rs.trades {
		if r.Contains(t.ExitDate()) {
			sub.trades = append(sub.trades, t)
		}
	}
	return sub
}

// zero returns a zero amount in the set currency.
func (rs *RecordSet) zero() Money { return M(0, rs.currency) }

// Profile is the structural summary of a raw trades table.
type Profile struct {
	Source  string          `json:"source"`
	Rows    int             `json:"rows"`
	Columns []ColumnProfile `json:"columns"`
	Preview [][]string      `json:"preview"` // first PreviewRows rows, cells as read.
}

// ColumnProfile describes one column of the raw table.
type ColumnProfile struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"` // datetime, decimal, number, text or empty.
	NonEmpty int    `json:"non_empty"`
	Missing  int    `json:"missing"`
}

// Header returns the column names.
func (p Profile) Header() []string {
	names := make([]string, len(p.Columns))
	for i, c := range p.Columns {
		names[i] = c.Name
	}
	return names
}
