package report

import (
	"strings"

	"github.com/nao1215/shipreport/internal/model"
)

// csvHeader is the first row of every CSV report.
const csvHeader = "id,status,destination\n"

// renderCSV writes the header row and one row per shipment.
//
// Values are joined verbatim. encoding/csv is not used because it would
// quote values containing commas or quotes, and existing consumers of this
// report expect the raw values.
func renderCSV(shipments []model.Shipment) string {
	var sb strings.Builder

	sb.WriteString(csvHeader)
	for _, s := range shipments {
		sb.WriteString(strings.Join(s.Fields(), ","))
		sb.WriteString("\n")
	}

	return sb.String()
}
