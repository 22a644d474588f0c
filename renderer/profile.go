package renderer

import (
	"fmt"

	"github.com/etnz/tradejournal"
	md "github.com/nao1215/markdown"
)

// ProfileMarkdown renders the structure of the trades table and its missing values.
func ProfileMarkdown(p tradejournal.Profile) string {
	return render(func(doc *md.Markdown) {
		writeProfile(doc, p)
		writeMissing(doc, p)
	})
}

func writeProfile(doc *md.Markdown, p tradejournal.Profile) {
	doc.H2("Data Summary")
	doc.PlainText(fmt.Sprintf("%d rows, %d columns.", p.Rows, len(p.Columns)))

	columns := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Column", "Kind", "Non-Empty"},
	}
	for _, c := range p.Columns {
		columns.Rows = append(columns.Rows, []string{cell(c.Name), c.Kind, fmt.Sprint(c.NonEmpty)})
	}
	doc.Table(columns)

	preview := md.TableSet{Header: cells(p.Header())}
	for _, row := range p.Preview {
		preview.Rows = append(preview.Rows, cells(row))
	}
	doc.H3(fmt.Sprintf("First %d Rows", len(p.Preview)))
	table(doc, preview)
}

func writeMissing(doc *md.Markdown, p tradejournal.Profile) {
	doc.H2("Missing Values")
	missing := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Column", "Missing"},
	}
	for _, c := range p.Columns {
		missing.Rows = append(missing.Rows, []string{cell(c.Name), fmt.Sprint(c.Missing)})
	}
	doc.Table(missing)
}
