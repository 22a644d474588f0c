package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// CSV is a comma separated file with a header row.
type CSV string

// ReadTable reads the whole file.
func (c CSV) ReadTable() (*Table, error) {
	f, err := os.Open(string(c))
	if err != nil {
		return nil, fmt.Errorf("could not open trades file %q: %w", string(c), err)
	}
	defer f.Close()

	t, err := DecodeCSV(f)
	if err != nil {
		return nil, fmt.Errorf("could not read trades file %q: %w", string(c), err)
	}
	t.Name = string(c)
	return t, nil
}

// DecodeCSV reads a header row followed by records.
// Records may have fewer or more fields than the header.
func DecodeCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	return newTable("", records[0], records[1:]), nil
}
