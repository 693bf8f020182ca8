package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/nao1215/shipreport/internal/model"
)

// failingWriter always returns an error.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

// mustGenerator creates a Generator or fails the test.
func mustGenerator(t *testing.T, f Format) *Generator {
	t.Helper()

	g, err := NewGenerator(f)
	if err != nil {
		t.Fatalf("failed to create generator: %v", err)
	}
	return g
}

// TestGeneratorWriter tests writing a generated report to an io.Writer.
func TestGeneratorWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes rendered report", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewGeneratorWriter(&buf, mustGenerator(t, FormatCSV))

		n, err := w.Write(scenarioShipments())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := "id,status,destination\nSH001,In Transit,Warsaw\nSH002,Delivered,Krakow\n"
		if buf.String() != want {
			t.Errorf("got %q, expected %q", buf.String(), want)
		}
		if n != len(want) {
			t.Errorf("expected %d bytes written, got %d", len(want), n)
		}
	})

	t.Run("returns output errors", func(t *testing.T) {
		t.Parallel()

		w := NewGeneratorWriter(failingWriter{}, mustGenerator(t, FormatText))
		if _, err := w.Write(scenarioShipments()); err == nil {
			t.Error("expected error from failing output")
		}
	})
}

// TestMultiWriter tests writing to multiple writers.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes each format to its destination", func(t *testing.T) {
		t.Parallel()

		var textBuf, jsonBuf bytes.Buffer
		mw := NewMultiWriter(
			NewGeneratorWriter(&textBuf, mustGenerator(t, FormatText)),
			NewGeneratorWriter(&jsonBuf, mustGenerator(t, FormatJSON)),
		)

		shipments := []model.Shipment{model.NewShipment("SH003", "Pending", "Gdansk")}
		n, err := mw.Write(shipments)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantText := "=== SHIPMENT REPORT (TEXT) ===\nID: SH003, Status: Pending, Destination: Gdansk\n"
		wantJSON := `{ "shipments": [{"id": "SH003", "status": "Pending", "destination": "Gdansk"}]}`
		if textBuf.String() != wantText {
			t.Errorf("got text %q, expected %q", textBuf.String(), wantText)
		}
		if jsonBuf.String() != wantJSON {
			t.Errorf("got json %q, expected %q", jsonBuf.String(), wantJSON)
		}
		if n != len(wantText)+len(wantJSON) {
			t.Errorf("expected %d total bytes, got %d", len(wantText)+len(wantJSON), n)
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		var after bytes.Buffer
		mw := NewMultiWriter(
			NewGeneratorWriter(failingWriter{}, mustGenerator(t, FormatText)),
			NewGeneratorWriter(&after, mustGenerator(t, FormatText)),
		)

		if _, err := mw.Write(scenarioShipments()); err == nil {
			t.Fatal("expected error")
		}
		if after.Len() != 0 {
			t.Error("expected writers after the failing one to be skipped")
		}
	})

	t.Run("no writers writes nothing", func(t *testing.T) {
		t.Parallel()

		n, err := NewMultiWriter().Write(scenarioShipments())
		if err != nil || n != 0 {
			t.Errorf("expected 0, nil; got %d, %v", n, err)
		}
	})
}
