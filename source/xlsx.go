package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSX is a sheet of an Excel workbook whose first row is the header.
type XLSX struct {
	Path  string
	Sheet string // Defaults to the first sheet of the workbook.
}

// ReadTable reads the formatted values of the sheet.
func (x *XLSX) ReadTable() (*Table, error) {
	f, err := excelize.OpenFile(x.Path)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook %q: %w", x.Path, err)
	}
	defer f.Close()

	sheet := x.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %q has no sheet", x.Path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %q of %q: %w", sheet, x.Path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q of %q: missing header row", sheet, x.Path)
	}
	return newTable(x.Path+"#"+sheet, rows[0], rows[1:]), nil
}
