// Package source reads trade ledgers into a Table: a header row and text
// cells, without interpreting any value.
//
// Supported formats are chosen by file extension:
//   - .csv: comma separated values with a header row.
//   - .xlsx: an Excel workbook, first sheet unless a sheet name is given.
//   - .db, .sqlite, .sqlite3: a table of an SQLite database, opened read-only.
//   - .json: an array of objects, selected with a JSONPath expression.
package source

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Table is the raw content of a tabular source.
// Every row has exactly len(Header) cells; absent cells are empty strings.
type Table struct {
	Name   string     // Where the table was read from.
	Header []string   // Column names, in source order.
	Rows   [][]string // Cells as text.
}

// Column returns the index of the named column or -1.
func (t *Table) Column(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Source is anything that can produce a Table.
type Source interface {
	ReadTable() (*Table, error)
}

// Options configure the format specific parts of Open.
type Options struct {
	Sheet    string // XLSX sheet name, defaults to the first sheet.
	Table    string // SQLite table name, defaults to "trades".
	JSONPath string // JSON records selector, defaults to "$[*]".
}

// Open returns the Source matching the file extension of path.
func Open(path string, opts Options) (Source, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", "":
		return CSV(path), nil
	case ".xlsx", ".xlsm":
		return &XLSX{Path: path, Sheet: opts.Sheet}, nil
	case ".db", ".sqlite", ".sqlite3":
		return &SQLite{Path: path, Table: opts.Table}, nil
	case ".json":
		return &JSON{Path: path, Selector: opts.JSONPath}, nil
	default:
		return nil, fmt.Errorf("unsupported trades file format %q", ext)
	}
}

// newTable normalizes raw rows into a Table: it trims a leading byte order
// mark, drops rows without any cell, and pads or cuts every other row to the
// header width.
func newTable(name string, header []string, rows [][]string) *Table {
	header = append([]string(nil), header...)
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	t := &Table{Name: name, Header: header, Rows: make([][]string, 0, len(rows))}
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		cells := make([]string, len(header))
		copy(cells, row)
		t.Rows = append(t.Rows, cells)
	}
	return t
}
