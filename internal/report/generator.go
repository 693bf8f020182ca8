package report

import (
	"fmt"

	"github.com/nao1215/shipreport/internal/model"
)

// Generator renders shipment reports in one fixed format.
//
// The format is chosen at construction and cannot be changed afterwards.
// A Generator holds no mutable state and is safe for concurrent use.
type Generator struct {
	format Format
}

// NewGenerator creates a Generator bound to format.
// It returns ErrUnknownFormat if format is not one of Formats().
func NewGenerator(format Format) (*Generator, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}
	return &Generator{format: format}, nil
}

// Format returns the format the generator was created with.
func (g *Generator) Format() Format {
	return g.format
}

// GenerateReport renders shipments with the generator's format and returns
// the result unchanged.
func (g *Generator) GenerateReport(shipments []model.Shipment) string {
	// The format was validated by NewGenerator, and the HTML renderer only
	// fails on write errors, which strings.Builder never returns.
	out, _ := g.format.Render(shipments) //nolint:errcheck // see above
	return out
}
