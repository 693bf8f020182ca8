package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nao1215/shipreport/internal/model"
)

// ErrUnknownFormat is returned for a format name or value outside the
// supported set.
var ErrUnknownFormat = errors.New("unknown report format")

// Format identifies one report syntax.
type Format int

const (
	// FormatText is a banner line followed by one line per shipment.
	FormatText Format = iota

	// FormatCSV is a header row followed by one comma-joined row per shipment.
	FormatCSV

	// FormatJSON is a single-line JSON document with a "shipments" array.
	FormatJSON

	// FormatMarkdown is a Markdown document with a shipment table and a
	// status summary.
	FormatMarkdown

	// FormatHTML is an HTML table.
	FormatHTML
)

// Formats returns every supported format in declaration order.
func Formats() []Format {
	return []Format{FormatText, FormatCSV, FormatJSON, FormatMarkdown, FormatHTML}
}

// String returns the canonical name of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	case FormatMarkdown:
		return "markdown"
	case FormatHTML:
		return "html"
	default:
		return "unknown"
	}
}

// Extension returns the file extension used when the format is written to disk.
func (f Format) Extension() string {
	switch f {
	case FormatText:
		return "txt"
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	case FormatMarkdown:
		return "md"
	case FormatHTML:
		return "html"
	default:
		return "out"
	}
}

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	return f >= FormatText && f <= FormatHTML
}

// ParseFormat converts a format name to a Format.
// Names are case-insensitive; "txt" and "md" are accepted as aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	default:
		return FormatText, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// ParseFormats converts a list of format names, rejecting duplicates.
func ParseFormats(names []string) ([]Format, error) {
	formats := make([]Format, 0, len(names))
	seen := make(map[Format]bool, len(names))

	for _, name := range names {
		f, err := ParseFormat(name)
		if err != nil {
			return nil, err
		}
		if seen[f] {
			return nil, fmt.Errorf("duplicate report format: %s", f)
		}
		seen[f] = true
		formats = append(formats, f)
	}

	return formats, nil
}

// Render renders shipments in format f.
// A nil slice is rendered like an empty one. The only error for the
// Text, CSV, JSON and Markdown variants is ErrUnknownFormat.
func (f Format) Render(shipments []model.Shipment) (string, error) {
	switch f {
	case FormatText:
		return renderText(shipments), nil
	case FormatCSV:
		return renderCSV(shipments), nil
	case FormatJSON:
		return renderJSON(shipments), nil
	case FormatMarkdown:
		return renderMarkdown(shipments), nil
	case FormatHTML:
		return renderHTML(shipments)
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
}
