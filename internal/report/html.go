package report

import (
	"fmt"
	"strings"

	"github.com/nao1215/shipreport/internal/model"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// renderHTML writes a standalone HTML document containing a shipment table.
// Unlike the Text, CSV and JSON variants, values are escaped by the renderer.
func renderHTML(shipments []model.Shipment) (string, error) {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	doc.AppendChild(root)

	head := element(atom.Head)
	title := element(atom.Title)
	title.AppendChild(textNode("Shipment Report"))
	head.AppendChild(title)
	root.AppendChild(head)

	body := element(atom.Body)
	h1 := element(atom.H1)
	h1.AppendChild(textNode("Shipment Report"))
	body.AppendChild(h1)
	body.AppendChild(shipmentTable(shipments))
	root.AppendChild(body)

	var sb strings.Builder
	if err := html.Render(&sb, doc); err != nil {
		return "", fmt.Errorf("failed to render html report: %w", err)
	}
	sb.WriteString("\n")

	return sb.String(), nil
}

// shipmentTable builds a <table> with a header row and one row per shipment.
func shipmentTable(shipments []model.Shipment) *html.Node {
	table := element(atom.Table)

	thead := element(atom.Thead)
	thead.AppendChild(row(atom.Th, []string{"ID", "Status", "Destination"}))
	table.AppendChild(thead)

	tbody := element(atom.Tbody)
	for _, s := range shipments {
		tbody.AppendChild(row(atom.Td, s.Fields()))
	}
	table.AppendChild(tbody)

	return table
}

// row builds a <tr> whose cells are of the given kind (th or td).
func row(cell atom.Atom, values []string) *html.Node {
	tr := element(atom.Tr)
	for _, v := range values {
		c := element(cell)
		c.AppendChild(textNode(v))
		tr.AppendChild(c)
	}
	return tr
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
