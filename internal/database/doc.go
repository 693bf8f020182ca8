// Package database provides SQLite-based storage for shipreport.
//
// The ShipmentDB stores:
//   - Shipment records, kept in the order they were first imported
//   - Report runs: rendered reports with their format, digest and output
//
// SQLite is provided by modernc.org/sqlite, a CGO-free driver, so the
// database is a single file under the XDG data directory and the binary
// cross-compiles without a C toolchain.
package database
