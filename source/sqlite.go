package source

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// DefaultTable is the SQLite table read when none is configured.
const DefaultTable = "trades"

// SQLite is a table of an SQLite database. Column names are the header.
type SQLite struct {
	Path  string
	Table string // Defaults to DefaultTable.
}

// ReadTable selects every row of the table, in storage order.
// NULL values are read as empty cells.
func (s *SQLite) ReadTable() (*Table, error) {
	table := s.Table
	if table == "" {
		table = DefaultTable
	}

	db, err := sql.Open("sqlite3", "file:"+s.Path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database at '%s': %w", s.Path, err)
	}
	defer db.Close()

	// Identifiers cannot be bound as parameters.
	query := fmt.Sprintf(`SELECT * FROM "%s"`, strings.ReplaceAll(table, `"`, `""`))
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query table %q of '%s': %w", table, s.Path, err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %q: %w", table, err)
	}

	var records [][]string
	for rows.Next() {
		cells := make([]sql.NullString, len(header))
		dest := make([]any, len(header))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row of %q: %w", table, err)
		}
		record := make([]string, len(header))
		for i, c := range cells {
			record[i] = c.String // "" when NULL
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows of %q: %w", table, err)
	}
	return newTable(s.Path+"#"+table, header, records), nil
}
