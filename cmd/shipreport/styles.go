package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	accent  = lipgloss.Color("#D97706")
	dim     = lipgloss.Color("#6B7280")
	success = lipgloss.Color("#22C55E")
	warning = lipgloss.Color("#F59E0B")
	danger  = lipgloss.Color("#EF4444")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)

	statusStyles = map[string]lipgloss.Style{
		"delivered":  lipgloss.NewStyle().Foreground(success),
		"in transit": lipgloss.NewStyle().Foreground(warning),
		"pending":    lipgloss.NewStyle().Foreground(dim),
		"cancelled":  lipgloss.NewStyle().Foreground(danger),
		"returned":   lipgloss.NewStyle().Foreground(danger),
	}
)

// table lays out rows in left-aligned columns. Cells are padded before
// styling so ANSI sequences do not affect the widths.
type table struct {
	headers []string
	rows    [][]string
	// style picks the style of a cell; nil leaves cells plain.
	style func(row, col int) *lipgloss.Style
}

func (t *table) render() string {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	for i, h := range t.headers {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(headerStyle.Render(pad(h, widths[i])))
	}
	b.WriteString("\n")

	for r, row := range t.rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			cell = pad(cell, widths[i])
			if t.style != nil {
				if s := t.style(r, i); s != nil {
					cell = s.Render(cell)
				}
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	return fmt.Sprintf("%s%s", s, strings.Repeat(" ", max(0, width-lipgloss.Width(s))))
}

// statusStyle returns the style for a shipment status, or nil for
// statuses without a color.
func statusStyle(status string) *lipgloss.Style {
	s, ok := statusStyles[strings.ToLower(strings.TrimSpace(status))]
	if !ok {
		return nil
	}
	return &s
}
