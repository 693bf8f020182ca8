// Package report renders shipment lists into report documents.
//
// The set of output syntaxes is closed: Format enumerates every variant
// (Text, CSV, JSON, Markdown, HTML) and Format.Render dispatches to the
// matching renderer with a single switch. Renderers are pure functions that
// build the output in a buffer local to the call.
//
// A Generator binds one Format for its whole lifetime and forwards
// GenerateReport calls to it. Writers send generated reports to an
// io.Writer, and MultiWriter fans one shipment list out to several of them.
//
// The Text, CSV and JSON variants insert field values verbatim. Commas in
// CSV values and quotes in JSON values are not escaped; Ambiguities lists
// the values affected so callers can warn about them.
package report
