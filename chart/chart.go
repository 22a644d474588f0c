// Package chart writes the visual part of a trade journal report: an Excel
// workbook holding the charted data and its native charts.
package chart

import (
	"fmt"
	"log/slog"

	"github.com/etnz/tradejournal"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the workbook.
const (
	CumulativeSheet = "Cumulative"
	MonthlySheet    = "Monthly"
)

const (
	timeFormat  = "2006-01-02 15:04:05"
	moneyFormat = `"$"#,##0.00;-"$"#,##0.00`
)

// Write saves the report charts as an xlsx workbook at path:
// a cumulative P&L line chart and a monthly total P&L column chart, each next
// to its data. A sheet without data has no chart.
func Write(path string, r *tradejournal.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), CumulativeSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(MonthlySheet); err != nil {
		return err
	}
	money, err := f.NewStyle(&excelize.Style{CustomNumFmt: ptr(moneyFormat)})
	if err != nil {
		return err
	}

	if err := writeCumulative(f, r.Cumulative, money); err != nil {
		return fmt.Errorf("cumulative chart: %w", err)
	}
	if err := writeMonthly(f, r.Monthly, money); err != nil {
		return fmt.Errorf("monthly chart: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("could not save chart workbook %q: %w", path, err)
	}
	slog.Debug("charts written", "path", path, "points", len(r.Cumulative), "months", len(r.Monthly))
	return nil
}

func writeCumulative(f *excelize.File, points []tradejournal.CumulativePoint, money int) error {
	rows := make([][]any, 0, len(points))
	for _, p := range points {
		rows = append(rows, []any{p.ExitTime.Format(timeFormat), p.Cumulative.AsFloat()})
	}
	if err := writeData(f, CumulativeSheet, []any{"Exit Time", "Cumulative P&L"}, rows, money); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return f.AddChart(CumulativeSheet, "D2", &excelize.Chart{
		Type:   excelize.Line,
		Series: []excelize.ChartSeries{series(CumulativeSheet, len(rows))},
		Title:  title("Cumulative P&L Over Time"),
		Legend: excelize.ChartLegend{Position: "none"},
		XAxis:  excelize.ChartAxis{Title: title("Exit Time")},
		YAxis:  excelize.ChartAxis{Title: title("Cumulative P&L ($)"), MajorGridLines: true},
		Dimension: excelize.ChartDimension{
			Width:  800,
			Height: 480,
		},
	})
}

func writeMonthly(f *excelize.File, months []tradejournal.MonthSummary, money int) error {
	rows := make([][]any, 0, len(months))
	for _, m := range months {
		rows = append(rows, []any{m.Month, m.TotalPnL.AsFloat()})
	}
	if err := writeData(f, MonthlySheet, []any{"Month", "Total P&L"}, rows, money); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	s := series(MonthlySheet, len(rows))
	s.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"87CEEB"}}
	return f.AddChart(MonthlySheet, "D2", &excelize.Chart{
		Type:   excelize.Col,
		Series: []excelize.ChartSeries{s},
		Title:  title("Monthly Total P&L"),
		Legend: excelize.ChartLegend{Position: "none"},
		XAxis: excelize.ChartAxis{
			Title:     title("Month"),
			Alignment: excelize.Alignment{TextRotation: -45},
		},
		YAxis: excelize.ChartAxis{Title: title("Total P&L ($)"), MajorGridLines: true},
		Dimension: excelize.ChartDimension{
			Width:  800,
			Height: 480,
		},
	})
}

// writeData writes a header and two columns of data, the second one being amounts.
func writeData(f *excelize.File, sheet string, header []any, rows [][]any, money int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(sheet, "A", "B", 20); err != nil {
		return err
	}
	return f.SetColStyle(sheet, "B", money)
}

// series is the chart series of the n data rows of a sheet.
func series(sheet string, n int) excelize.ChartSeries {
	return excelize.ChartSeries{
		Name:       fmt.Sprintf("'%s'!$B$1", sheet),
		Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, n+1),
		Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", sheet, n+1),
	}
}

func title(text string) []excelize.RichTextRun {
	return []excelize.RichTextRun{{Text: text}}
}

func ptr[T any](v T) *T { return &v }
