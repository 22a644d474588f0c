package renderer

import (
	"fmt"

	"github.com/etnz/tradejournal"
	md "github.com/nao1215/markdown"
)

// StatsMarkdown renders the overall statistics.
func StatsMarkdown(s tradejournal.Stats) string {
	return render(func(doc *md.Markdown) { writeStats(doc, s) })
}

func writeStats(doc *md.Markdown, s tradejournal.Stats) {
	doc.H2("Overall Statistics")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total trades", fmt.Sprint(s.Total)},
			{"Winning trades", fmt.Sprint(s.Wins)},
			{"Losing trades", fmt.Sprint(s.Losses)},
			{"Win rate", s.WinRate.String()},
			{md.Bold("Total P&L"), md.Bold(s.TotalPnL.String())},
			{"Average P&L per trade", s.AvgPnL.String()},
		},
	})
}
