// Package tradejournal analyses a journal of executed trades.
//
// A journal is read from a tabular source (see package source) and cleaned
// into an immutable RecordSet: timestamps are parsed, and currency formatted
// P&L amounts like "$1,234.56" are converted into exact decimals. Any record
// that cannot be cleaned aborts the load.
//
// A RecordSet then derives the views of a performance review:
//   - Stats: trade count, wins and losses, win rate, total and average P&L.
//   - Cumulative: the running P&L in exit time order.
//   - Sizes: average P&L and trade count per trade size.
//   - Monthly: P&L, trade count and win rate per calendar month.
//   - BestDays: the days with the highest total P&L.
//   - Pairs: instruments ranked by total P&L.
//
// All views are pure functions of the RecordSet and return plain data, so that
// any renderer (see packages renderer and chart) can present them.
//
// This package is the foundation of the `tj` command-line tool.
package tradejournal
