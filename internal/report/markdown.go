package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/shipreport/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// cellEscaper keeps a value inside its table cell: a pipe would start a new
// column and a line break would end the row.
var cellEscaper = strings.NewReplacer(
	"|", `\|`,
	"\r\n", "<br>",
	"\n", "<br>",
	"\r", "<br>",
)

func escapeCell(value string) string {
	return cellEscaper.Replace(value)
}

// renderMarkdown writes a Markdown document with a shipment table and a
// status summary table.
func renderMarkdown(shipments []model.Shipment) string {
	md := markdown.NewMarkdown(io.Discard)

	md.H1("Shipment Report")
	md.PlainText("")

	if len(shipments) == 0 {
		md.PlainText("No shipments.")
		return md.String()
	}

	rows := make([][]string, len(shipments))
	for i, s := range shipments {
		fields := s.Fields()
		for j, f := range fields {
			fields[j] = escapeCell(f)
		}
		rows[i] = fields
	}
	md.Table(markdown.TableSet{
		Header: []string{"ID", "Status", "Destination"},
		Rows:   rows,
	})
	md.PlainText("")

	writeStatusSummary(md, shipments)

	return md.String()
}

// writeStatusSummary writes the number of shipments per status.
// Statuses are grouped by their title-cased label, so "pending" and
// "Pending" share one row.
func writeStatusSummary(md *markdown.Markdown, shipments []model.Shipment) {
	// cases.Caser keeps state between calls, so each render gets its own.
	caser := cases.Title(language.English)

	labels := make([]string, 0)
	counts := make(map[string]int)
	for _, c := range model.CountByStatus(shipments) {
		label := caser.String(c.Status)
		if _, ok := counts[label]; !ok {
			labels = append(labels, label)
		}
		counts[label] += c.Count
	}

	rows := make([][]string, 0, len(labels)+1)
	for _, label := range labels {
		rows = append(rows, []string{escapeCell(label), strconv.Itoa(counts[label])})
	}
	rows = append(rows, []string{"**Total**", "**" + strconv.Itoa(len(shipments)) + "**"})

	md.H2("Status Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Status", "Shipments"},
		Rows:   rows,
	})
}
