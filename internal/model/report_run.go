package model

import "time"

// ReportRun is a rendered report stored in the history database.
type ReportRun struct {
	// ID is a random UUID assigned when the run is saved.
	ID string `json:"id"`

	// Format is the name of the report format (e.g. "csv").
	Format string `json:"format"`

	// ShipmentCount is the number of shipments that were rendered.
	ShipmentCount int `json:"shipment_count"`

	// Digest is the hex-encoded SHA3-256 digest of Output.
	Digest string `json:"digest"`

	// Output is the rendered report.
	Output string `json:"output"`

	// CreatedAt is when the run was saved.
	CreatedAt time.Time `json:"created_at"`
}
