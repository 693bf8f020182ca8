package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestNewShipment tests the Shipment constructor.
func TestNewShipment(t *testing.T) {
	t.Parallel()

	s := NewShipment("SH001", "In Transit", "Warsaw")

	t.Run("sets all fields", func(t *testing.T) {
		t.Parallel()
		if s.ID != "SH001" {
			t.Errorf("got ID %q, expected %q", s.ID, "SH001")
		}
		if s.Status != "In Transit" {
			t.Errorf("got Status %q, expected %q", s.Status, "In Transit")
		}
		if s.Destination != "Warsaw" {
			t.Errorf("got Destination %q, expected %q", s.Destination, "Warsaw")
		}
	})

	t.Run("equality is field equality", func(t *testing.T) {
		t.Parallel()
		if s != NewShipment("SH001", "In Transit", "Warsaw") {
			t.Error("expected shipments with equal fields to be equal")
		}
		if s == NewShipment("SH001", "Delivered", "Warsaw") {
			t.Error("expected shipments with different status to differ")
		}
	})

	t.Run("empty id is accepted", func(t *testing.T) {
		t.Parallel()
		empty := NewShipment("", "", "")
		if empty != (Shipment{}) {
			t.Errorf("expected zero shipment, got %+v", empty)
		}
	})

	t.Run("copies do not share state", func(t *testing.T) {
		t.Parallel()
		shipments := []Shipment{s}
		copied := shipments[0]
		copied.Status = "Delivered"
		if shipments[0].Status != "In Transit" {
			t.Error("expected original shipment to be unchanged")
		}
	})
}

// TestShipmentFields tests that Fields returns values in column order.
func TestShipmentFields(t *testing.T) {
	t.Parallel()

	got := NewShipment("SH002", "Delivered", "Krakow").Fields()
	want := []string{"SH002", "Delivered", "Krakow"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Fields() mismatch (-want +got):\n%s", diff)
	}
}

// TestCountByStatus tests grouping shipments by status.
func TestCountByStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		shipments []Shipment
		want      []StatusCount
	}{
		{
			name:      "nil input returns empty slice",
			shipments: nil,
			want:      []StatusCount{},
		},
		{
			name: "orders by first appearance",
			shipments: []Shipment{
				NewShipment("SH001", "Pending", "Gdansk"),
				NewShipment("SH002", "Delivered", "Krakow"),
				NewShipment("SH003", "Pending", "Warsaw"),
				NewShipment("SH004", "In Transit", "Poznan"),
			},
			want: []StatusCount{
				{Status: "Pending", Count: 2},
				{Status: "Delivered", Count: 1},
				{Status: "In Transit", Count: 1},
			},
		},
		{
			name: "status comparison is case sensitive",
			shipments: []Shipment{
				NewShipment("SH001", "pending", "Gdansk"),
				NewShipment("SH002", "Pending", "Krakow"),
			},
			want: []StatusCount{
				{Status: "pending", Count: 1},
				{Status: "Pending", Count: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CountByStatus(tt.shipments)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CountByStatus() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
