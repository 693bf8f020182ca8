// Package main provides the entry point for the shipreport CLI.
//
// shipreport renders shipment lists as text, CSV, JSON, Markdown or HTML
// reports. Shipments come from built-in sample data, a YAML/JSON/CSV file,
// or the local shipment store.
//
// Usage:
//
//	shipreport generate --format csv
//	shipreport generate --input shipments.yaml --format json -o report.json
//	shipreport export --dir reports
//
// See --help for all available options.
package main

func main() {
	Execute()
}
