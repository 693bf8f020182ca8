// Package export renders one shipment list into several report formats
// concurrently and writes each report to its own file.
//
// Files are named <basename>.<extension> inside the target directory, e.g.
// shipments.csv and shipments.md. Rendering and writing run in parallel up
// to the configured concurrency; the first failure cancels the remaining
// work.
package export
