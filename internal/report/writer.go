package report

import (
	"io"

	"github.com/nao1215/shipreport/internal/model"
)

// Writer defines the interface for report output.
// Implementations render a shipment list and send it to a destination.
type Writer interface {
	// Write renders shipments and writes the report to the configured
	// destination. Returns the number of bytes written and any error encountered.
	Write(shipments []model.Shipment) (int, error)
}

// GeneratorWriter writes reports produced by a Generator to an io.Writer.
type GeneratorWriter struct {
	baseWriter

	generator *Generator
}

// NewGeneratorWriter creates a Writer that renders with g and writes to output.
func NewGeneratorWriter(output io.Writer, g *Generator) *GeneratorWriter {
	return &GeneratorWriter{
		baseWriter: newBaseWriter(output),
		generator:  g,
	}
}

// Write renders shipments and writes the report to the output.
func (w *GeneratorWriter) Write(shipments []model.Shipment) (int, error) {
	return io.WriteString(w.output, w.generator.GenerateReport(shipments))
}

// MultiWriter writes to multiple Writers in order.
// Each Writer may use its own format and destination, so one shipment list
// can go to the terminal as text and to a file as CSV.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(shipments []model.Shipment) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(shipments)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
