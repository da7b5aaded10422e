package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableBuilder collects rows and renders a formatted table.
type TableBuilder struct {
	headers []string
	rows    [][]string
}

// NewTableBuilder returns a builder with preallocated rows.
func NewTableBuilder(headers []string, capacity int) *TableBuilder {
	return &TableBuilder{headers: headers, rows: make([][]string, 0, capacity)}
}

// AddRow appends a row to the table.
func (builder *TableBuilder) AddRow(row ...string) {
	builder.rows = append(builder.rows, row)
}

// String renders the table output.
func (builder *TableBuilder) String() string {
	return FormatTable(builder.headers, builder.rows)
}

// FormatTable renders headers and rows as columns separated by two spaces.
// Widths ignore ANSI styling.
func FormatTable(headers []string, rows [][]string) string {
	all := make([][]string, 0, len(rows)+1)
	all = append(all, normalizeRow(headers))
	for _, row := range rows {
		all = append(all, normalizeRow(row))
	}

	widths := make([]int, len(headers))
	for _, row := range all {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var builder strings.Builder
	for _, row := range all {
		for i, cell := range row {
			builder.WriteString(cell)
			if i == len(row)-1 {
				break
			}
			pad := 2
			if i < len(widths) {
				pad += widths[i] - lipgloss.Width(cell)
			}
			builder.WriteString(strings.Repeat(" ", pad))
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

func normalizeRow(row []string) []string {
	out := make([]string, len(row))
	replacer := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")
	for i, cell := range row {
		out[i] = replacer.Replace(cell)
	}
	return out
}
