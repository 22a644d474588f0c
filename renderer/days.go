package renderer

import (
	"fmt"

	"github.com/etnz/tradejournal"
	md "github.com/nao1215/markdown"
)

// BestDaysMarkdown renders the best days, n being the number that was asked for.
func BestDaysMarkdown(days []tradejournal.DaySummary, n int) string {
	return render(func(doc *md.Markdown) { writeBestDays(doc, days, n) })
}

func writeBestDays(doc *md.Markdown, days []tradejournal.DaySummary, n int) {
	doc.H2(fmt.Sprintf("Best Performing Days (Top %d)", n))
	t := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Total P&L"},
	}
	for _, d := range days {
		t.Rows = append(t.Rows, []string{d.Date.String(), d.TotalPnL.String()})
	}
	table(doc, t)
}
