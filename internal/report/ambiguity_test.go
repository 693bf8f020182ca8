package report

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nao1215/shipreport/internal/model"
)

// TestAmbiguities tests detection of values that verbatim output mangles.
func TestAmbiguities(t *testing.T) {
	t.Parallel()

	shipments := []model.Shipment{
		model.NewShipment("SH001", "In Transit", "Warsaw"),
		model.NewShipment("SH002", `Held "customs"`, "Gdynia, PL"),
		model.NewShipment("SH003", "Pending", `C:\depot`),
		model.NewShipment("SH004", "Lost\nFound", "Lodz"),
	}

	tests := []struct {
		name   string
		format Format
		want   []Ambiguity
	}{
		{
			name:   "text flags line breaks",
			format: FormatText,
			want: []Ambiguity{
				{Index: 3, ShipmentID: "SH004", Field: "status", Reason: "line break splits the record across lines"},
			},
		},
		{
			name:   "csv flags commas quotes and line breaks",
			format: FormatCSV,
			want: []Ambiguity{
				{Index: 1, ShipmentID: "SH002", Field: "status", Reason: "double quote is not escaped"},
				{Index: 1, ShipmentID: "SH002", Field: "destination", Reason: "comma is not quoted and shifts the columns"},
				{Index: 3, ShipmentID: "SH004", Field: "status", Reason: "line break splits the row"},
			},
		},
		{
			name:   "json flags quotes backslashes and control characters",
			format: FormatJSON,
			want: []Ambiguity{
				{Index: 1, ShipmentID: "SH002", Field: "status", Reason: "double quote is not escaped and ends the string early"},
				{Index: 2, ShipmentID: "SH003", Field: "destination", Reason: "backslash is not escaped and starts an escape sequence"},
				{Index: 3, ShipmentID: "SH004", Field: "status", Reason: "control character is not escaped"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Ambiguities(tt.format, shipments)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Ambiguities() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("escaping formats report nothing for pipes and line breaks", func(t *testing.T) {
		t.Parallel()

		tricky := []model.Shipment{model.NewShipment("SH|1", "In|Transit", "War\nsaw")}
		for _, f := range []Format{FormatMarkdown, FormatHTML} {
			if got := Ambiguities(f, tricky); got != nil {
				t.Errorf("%s: expected nil, got %+v", f, got)
			}
		}

		out, err := FormatMarkdown.Render(tricky)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, `SH\|1`) || !strings.Contains(out, "War<br>saw") {
			t.Errorf("expected escaped cells in markdown output:\n%s", out)
		}
	})

	t.Run("clean input has no ambiguities", func(t *testing.T) {
		t.Parallel()
		for _, f := range Formats() {
			if got := Ambiguities(f, scenarioShipments()); len(got) != 0 {
				t.Errorf("%s: expected none, got %+v", f, got)
			}
		}
	})
}
