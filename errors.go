package tradejournal

import (
	"errors"
	"fmt"
)

// ErrDataLoad is matched, with errors.Is, by every error that aborts a load:
// unreadable source, missing column, unparseable timestamp or P&L.
var ErrDataLoad = errors.New("data load error")

// ErrNotLoaded is returned when a journal is queried before a successful Load.
var ErrNotLoaded = errors.New("trades not loaded")

// MissingColumnError reports a required column absent from the source header.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column %q", e.Column)
}

func (e *MissingColumnError) Is(target error) bool { return target == ErrDataLoad }

// TimestampParseError reports a cell of a timestamp column that is not a date-time.
type TimestampParseError struct {
	Record int // 1-based record number, header excluded.
	Column string
	Value  string
	Err    error
}

func (e *TimestampParseError) Error() string {
	return fmt.Sprintf("record %d: invalid %s %q: %v", e.Record, e.Column, e.Value, e.Err)
}

func (e *TimestampParseError) Is(target error) bool { return target == ErrDataLoad }
func (e *TimestampParseError) Unwrap() error        { return e.Err }

// PnlParseError reports a P&L cell that is not a number once cleaned up.
type PnlParseError struct {
	Record int // 1-based record number, header excluded.
	Value  string
	Err    error
}

func (e *PnlParseError) Error() string {
	return fmt.Sprintf("record %d: invalid %s %q: %v", e.Record, ColPnL, e.Value, e.Err)
}

func (e *PnlParseError) Is(target error) bool { return target == ErrDataLoad }
func (e *PnlParseError) Unwrap() error        { return e.Err }

// CurrencyError reports a trade whose P&L is not in the currency of its record set.
type CurrencyError struct {
	Trade    int // 0-based position of the trade.
	Currency string
	Want     string
}

func (e *CurrencyError) Error() string {
	return fmt.Sprintf("trade %d: P&L in %s, want %s", e.Trade, e.Currency, e.Want)
}
