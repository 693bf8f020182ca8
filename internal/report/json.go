package report

import (
	"strings"

	"github.com/nao1215/shipreport/internal/model"
)

// renderJSON writes the shipments as a single-line JSON document:
//
//	{ "shipments": [{"id": "SH001", "status": "In Transit", "destination": "Warsaw"}]}
//
// The layout is fixed and values are inserted without escaping, so the
// document is built by hand instead of with encoding/json.
func renderJSON(shipments []model.Shipment) string {
	var sb strings.Builder

	sb.WriteString(`{ "shipments": [`)
	for i, s := range shipments {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(`{"id": "`)
		sb.WriteString(s.ID)
		sb.WriteString(`", "status": "`)
		sb.WriteString(s.Status)
		sb.WriteString(`", "destination": "`)
		sb.WriteString(s.Destination)
		sb.WriteString(`"}`)
	}
	sb.WriteString("]}")

	return sb.String()
}
