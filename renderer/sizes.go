package renderer

import (
	"fmt"

	"github.com/etnz/tradejournal"
	md "github.com/nao1215/markdown"
)

// SizesMarkdown renders the impact of trade size on P&L.
func SizesMarkdown(sizes []tradejournal.SizeSummary) string {
	return render(func(doc *md.Markdown) { writeSizes(doc, sizes) })
}

func writeSizes(doc *md.Markdown, sizes []tradejournal.SizeSummary) {
	doc.H2("Trade Size Impact on P&L")
	t := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Size", "Average P&L", "Trades"},
	}
	for _, s := range sizes {
		t.Rows = append(t.Rows, []string{cell(s.Size), s.AvgPnL.String(), fmt.Sprint(s.Trades)})
	}
	table(doc, t)
}
