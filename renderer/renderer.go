// Package renderer turns trade journal reports into markdown documents.
package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/tradejournal"
	md "github.com/nao1215/markdown"
)

// timeFormat is the layout of trade timestamps in tables.
const timeFormat = "2006-01-02 15:04:05"

// Markdown renders the full report: data summary, missing values, overall
// statistics, trade sizes, monthly performance, best days and symbols.
func Markdown(r *tradejournal.Report) string {
	return render(func(doc *md.Markdown) {
		doc.H1("Trade Journal Report")
		doc.PlainText(fmt.Sprintf("%d records read from %s, amounts in %s.", r.Profile.Rows, r.Profile.Source, r.Currency))

		writeProfile(doc, r.Profile)
		writeMissing(doc, r.Profile)
		writeStats(doc, r.Stats)
		writeSizes(doc, r.Sizes)
		writeMonthly(doc, r.Monthly)
		writeBestDays(doc, r.BestDays, r.TopDays)
		writePairs(doc, r.Pairs)
	})
}

// render runs body on a new markdown document and returns its content.
func render(body func(doc *md.Markdown)) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	body(doc)
	return doc.String()
}

// table writes a table, or a short notice when there is no row at all.
func table(doc *md.Markdown, t md.TableSet) {
	if len(t.Rows) == 0 {
		doc.PlainText("No trades.")
		return
	}
	doc.Table(t)
}

// cell escapes text read from the trades file for a table cell.
func cell(s string) string { return strings.ReplaceAll(s, "|", `\|`) }

// cells escapes every cell of a row.
func cells(row []string) []string {
	escaped := make([]string, len(row))
	for i, s := range row {
		escaped[i] = cell(s)
	}
	return escaped
}
