package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/tradejournal"
	"github.com/etnz/tradejournal/date"
	md "github.com/nao1215/markdown"
)

// MonthlyMarkdown renders the performance of every month.
func MonthlyMarkdown(months []tradejournal.MonthSummary) string {
	return render(func(doc *md.Markdown) { writeMonthly(doc, months) })
}

// PeriodicMarkdown renders the performance of every period p with trades.
func PeriodicMarkdown(p date.Period, periods []tradejournal.PeriodSummary) string {
	return render(func(doc *md.Markdown) {
		unit := p.Unit()
		var rows [][]string
		for _, s := range periods {
			rows = append(rows, performance(s.Period, s.TotalPnL, s.AvgPnL, s.Trades, s.WinRate))
		}
		writePerformance(doc, capitalize(p.String())+" Performance", capitalize(unit), rows)
	})
}

func writeMonthly(doc *md.Markdown, months []tradejournal.MonthSummary) {
	var rows [][]string
	for _, m := range months {
		rows = append(rows, performance(m.Month, m.TotalPnL, m.AvgPnL, m.Trades, m.WinRate))
	}
	writePerformance(doc, "Monthly Performance", "Month", rows)
}

func performance(label string, total, avg tradejournal.Money, trades int, winRate tradejournal.Percent) []string {
	return []string{label, total.String(), avg.String(), fmt.Sprint(trades), winRate.String()}
}

func writePerformance(doc *md.Markdown, heading, unit string, rows [][]string) {
	doc.H2(heading)
	table(doc, md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{unit, "Total P&L", "Average P&L", "Trades", "Win Rate"},
		Rows:      rows,
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
