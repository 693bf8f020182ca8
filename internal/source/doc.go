// Package source provides shipment lists for report generation.
//
// Shipments come from the built-in sample data, from YAML, JSON or CSV
// files, or from the shipment store in the database package. Every source
// preserves the order of the records it reads.
package source
