package report

import (
	"strings"

	"github.com/nao1215/shipreport/internal/model"
)

// textBanner is the first line of every text report.
const textBanner = "=== SHIPMENT REPORT (TEXT) ===\n"

// renderText writes the banner followed by one line per shipment:
//
//	ID: <id>, Status: <status>, Destination: <destination>
func renderText(shipments []model.Shipment) string {
	var sb strings.Builder

	sb.WriteString(textBanner)
	for _, s := range shipments {
		sb.WriteString("ID: ")
		sb.WriteString(s.ID)
		sb.WriteString(", Status: ")
		sb.WriteString(s.Status)
		sb.WriteString(", Destination: ")
		sb.WriteString(s.Destination)
		sb.WriteString("\n")
	}

	return sb.String()
}
