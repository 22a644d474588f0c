package renderer

import (
	"fmt"

	"github.com/etnz/tradejournal"
	md "github.com/nao1215/markdown"
)

// PairsMarkdown renders the symbols ranked by total P&L.
func PairsMarkdown(pairs []tradejournal.PairSummary) string {
	return render(func(doc *md.Markdown) { writePairs(doc, pairs) })
}

func writePairs(doc *md.Markdown, pairs []tradejournal.PairSummary) {
	doc.H2("Most Profitable Symbols")
	t := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Rank", "Symbol", "Total P&L", "Trades"},
	}
	for i, p := range pairs {
		t.Rows = append(t.Rows, []string{fmt.Sprint(i + 1), cell(p.Symbol), p.TotalPnL.String(), fmt.Sprint(p.Trades)})
	}
	table(doc, t)
}
