package report

import (
	"strings"

	"github.com/nao1215/shipreport/internal/model"
)

// Ambiguity describes a shipment value that a verbatim renderer cannot
// represent unambiguously.
type Ambiguity struct {
	// Index is the position of the shipment in the input slice.
	Index int

	// ShipmentID is the ID of the affected shipment.
	ShipmentID string

	// Field is the affected column: "id", "status" or "destination".
	Field string

	// Reason explains why the value is ambiguous in the format.
	Reason string
}

// fieldNames are the column names in model.Shipment.Fields order.
var fieldNames = []string{"id", "status", "destination"}

// Ambiguities returns every value in shipments that would make the output
// of format f ambiguous or malformed. It never changes the output itself.
// Markdown table cells and HTML text are escaped when rendered, so those
// formats never report ambiguities.
func Ambiguities(f Format, shipments []model.Shipment) []Ambiguity {
	check := ambiguityCheck(f)
	if check == nil {
		return nil
	}

	var found []Ambiguity
	for i, s := range shipments {
		for j, value := range s.Fields() {
			if reason := check(value); reason != "" {
				found = append(found, Ambiguity{
					Index:      i,
					ShipmentID: s.ID,
					Field:      fieldNames[j],
					Reason:     reason,
				})
			}
		}
	}
	return found
}

// ambiguityCheck returns the value check for f, or nil if f escapes its values.
func ambiguityCheck(f Format) func(string) string {
	switch f {
	case FormatText:
		return checkText
	case FormatCSV:
		return checkCSV
	case FormatJSON:
		return checkJSON
	default:
		return nil
	}
}

func checkText(value string) string {
	if strings.ContainsAny(value, "\r\n") {
		return "line break splits the record across lines"
	}
	return ""
}

func checkCSV(value string) string {
	switch {
	case strings.Contains(value, ","):
		return "comma is not quoted and shifts the columns"
	case strings.ContainsAny(value, "\r\n"):
		return "line break splits the row"
	case strings.Contains(value, `"`):
		return "double quote is not escaped"
	default:
		return ""
	}
}

func checkJSON(value string) string {
	switch {
	case strings.Contains(value, `"`):
		return "double quote is not escaped and ends the string early"
	case strings.Contains(value, `\`):
		return "backslash is not escaped and starts an escape sequence"
	case strings.IndexFunc(value, func(r rune) bool { return r < 0x20 }) >= 0:
		return "control character is not escaped"
	default:
		return ""
	}
}
