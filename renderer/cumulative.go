package renderer

import (
	"github.com/etnz/tradejournal"
	md "github.com/nao1215/markdown"
)

// CumulativeMarkdown renders the running P&L after each trade exit.
func CumulativeMarkdown(points []tradejournal.CumulativePoint) string {
	return render(func(doc *md.Markdown) {
		doc.H2("Cumulative P&L Over Time")
		t := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Exit Time", "P&L", "Cumulative P&L"},
		}
		for _, p := range points {
			t.Rows = append(t.Rows, []string{p.ExitTime.Format(timeFormat), p.PnL.String(), p.Cumulative.String()})
		}
		table(doc, t)
	})
}
