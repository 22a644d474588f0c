package tradejournal

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/etnz/tradejournal/source"
	"github.com/shopspring/decimal"
)

// Columns of a trades table used by the journal. Other columns are ignored.
const (
	ColEntryTime = "Entry Time"
	ColExitTime  = "Exit Time"
	ColPnL       = "P&L"
	ColSize      = "Size"
	ColSymbol    = "Symbol"
)

// PreviewRows is the number of raw rows kept in a Profile.
const PreviewRows = 5

// schema holds the positions of the required columns in a table.
type schema struct {
	entry, exit, pnl, size, symbol int
}

// resolveSchema locates the required columns once, by exact name.
func resolveSchema(t *source.Table) (schema, error) {
	var s schema
	for _, c := range []struct {
		name string
		dst  *int
	}{
		{ColEntryTime, &s.entry},
		{ColExitTime, &s.exit},
		{ColPnL, &s.pnl},
		{ColSize, &s.size},
		{ColSymbol, &s.symbol},
	} {
		i := t.Column(c.name)
		if i < 0 {
			return s, &MissingColumnError{Column: c.name}
		}
		*c.dst = i
	}
	return s, nil
}

// Load reads the source and cleans every record into a RecordSet.
//
// P&L amounts are in 'currency' (DefaultCurrency if empty). Any record that
// cannot be cleaned aborts the load: there is no partial RecordSet.
func Load(src source.Source, currency string) (*RecordSet, error) {
	table, err := src.ReadTable()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataLoad, err)
	}
	return FromTable(table, currency)
}

// FromTable cleans the records of an already read table.
func FromTable(table *source.Table, currency string) (*RecordSet, error) {
	s, err := resolveSchema(table)
	if err != nil {
		return nil, err
	}

	trades := make([]Trade, 0, len(table.Rows))
	for i, row := range table.Rows {
		record := i + 1
		entry, err := ParseTimestamp(row[s.entry])
		if err != nil {
			return nil, &TimestampParseError{Record: record, Column: ColEntryTime, Value: row[s.entry], Err: err}
		}
		exit, err := ParseTimestamp(row[s.exit])
		if err != nil {
			return nil, &TimestampParseError{Record: record, Column: ColExitTime, Value: row[s.exit], Err: err}
		}
		pnl, err := CleanPnL(row[s.pnl])
		if err != nil {
			return nil, &PnlParseError{Record: record, Value: row[s.pnl], Err: err}
		}
		trades = append(trades, Trade{
			EntryTime: entry,
			ExitTime:  exit,
			PnL:       M(pnl, currency),
			Size:      row[s.size],
			Symbol:    row[s.symbol],
		})
	}

	rs, err := NewRecordSet(currency, trades...)
	if err != nil {
		return nil, err
	}
	rs.profile = newProfile(table)
	slog.Debug("trades loaded", "source", table.Name, "trades", rs.Len(), "columns", len(table.Header))
	return rs, nil
}

// ParseTimestamp parses a date-time in any common textual representation.
// Timestamps without a zone are read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	return dateparse.ParseIn(s, time.UTC)
}

// CleanPnL converts a currency formatted amount into a decimal.
// Every "$" and every "," are removed before parsing, so that "$1,234.56",
// "-$50.00" and "1234.56" are all accepted.
func CleanPnL(s string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(s, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return decimal.Zero, errors.New("empty amount")
	}
	return decimal.NewFromString(cleaned)
}

// newProfile computes the structural summary of a table.
func newProfile(t *source.Table) Profile {
	p := Profile{
		Source:  t.Name,
		Rows:    len(t.Rows),
		Columns: make([]ColumnProfile, len(t.Header)),
	}
	for j, name := range t.Header {
		c := ColumnProfile{Name: name}
		numeric := true
		for _, row := range t.Rows {
			cell := strings.TrimSpace(row[j])
			if cell == "" {
				c.Missing++
				continue
			}
			c.NonEmpty++
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				numeric = false
			}
		}
		switch {
		case name == ColEntryTime || name == ColExitTime:
			c.Kind = "datetime"
		case name == ColPnL:
			c.Kind = "decimal"
		case c.NonEmpty == 0:
			c.Kind = "empty"
		case numeric:
			c.Kind = "number"
		default:
			c.Kind = "text"
		}
		p.Columns[j] = c
	}
	for _, row := range t.Rows[:min(PreviewRows, len(t.Rows))] {
		p.Preview = append(p.Preview, append([]string(nil), row...))
	}
	return p
}
