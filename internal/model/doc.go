// Package model defines the core data structures used throughout shipreport.
//
// This package contains the following main types:
//   - Shipment: An immutable shipment record (identifier, status, destination)
//   - StatusCount: Number of shipments sharing one status
//   - ReportRun: A rendered report recorded in the history store
//
// Models live in their own package so that the report, source, database and
// export packages can share them without import cycles.
package model
