package tradejournal

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/tradejournal/source"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// at parses a test timestamp, in UTC.
func at(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02T15:04", s)
	if err != nil {
		t.Fatalf("invalid test timestamp %q: %v", s, err)
	}
	return ts
}

// trade is a helper to build a trade closed one hour after entry.
func trade(t *testing.T, entry string, pnl float64, size, symbol string) Trade {
	t.Helper()
	e := at(t, entry)
	return Trade{EntryTime: e, ExitTime: e.Add(time.Hour), PnL: USD(pnl), Size: size, Symbol: symbol}
}

// records builds a USD record set or fails the test.
func records(t *testing.T, trades ...Trade) *RecordSet {
	t.Helper()
	rs, err := NewRecordSet("USD", trades...)
	if err != nil {
		t.Fatalf("NewRecordSet() error = %v", err)
	}
	return rs
}

// scenarioCSV is the reference three trades journal.
const scenarioCSV = `Entry Time,Exit Time,P&L,Size,Symbol
2024-01-01T09:00:00,2024-01-01T10:00:00,$100.00,1,EURUSD
2024-01-02T09:00:00,2024-01-02T10:00:00,-$50.00,2,EURUSD
2024-02-01T09:00:00,2024-02-01T10:00:00,$25.50,1,GBPUSD
`

// csvSource is an in memory source.Source.
type csvSource string

func (c csvSource) ReadTable() (*source.Table, error) {
	t, err := source.DecodeCSV(strings.NewReader(string(c)))
	if err != nil {
		return nil, err
	}
	t.Name = "test.csv"
	return t, nil
}

// mustLoad loads a csv content or fails the test.
func mustLoad(t *testing.T, content string) *RecordSet {
	t.Helper()
	rs, err := Load(csvSource(content), "USD")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return rs
}
