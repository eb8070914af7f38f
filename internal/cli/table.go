package cli

import (
	"regexp"
	"strings"
)

// ansiSeq matches terminal escape sequences so cell widths are measured
// on visible characters only. Preview swatch cells carry colour escapes.
var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Table is a simple column-aligned text table.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2, // 2 spaces between columns
	}
}

// AddRow adds a row to the table. Short rows are padded with empty cells.
func (t *Table) AddRow(row []string) {
	if len(row) != len(t.headers) {
		newRow := make([]string, len(t.headers))
		copy(newRow, row)
		t.rows = append(t.rows, newRow)
		return
	}
	t.rows = append(t.rows, row)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = visibleLen(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := visibleLen(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var result strings.Builder

	headerParts := make([]string, len(t.headers))
	for i, h := range t.headers {
		headerParts[i] = padRight(h, colWidths[i])
	}
	result.WriteString(strings.Join(headerParts, gap))
	result.WriteString("\n")

	sepParts := make([]string, len(t.headers))
	for i, w := range colWidths {
		sepParts[i] = strings.Repeat("-", w)
	}
	result.WriteString(strings.Join(sepParts, gap))
	result.WriteString("\n")

	for _, row := range t.rows {
		rowParts := make([]string, len(t.headers))
		for i, cell := range row {
			rowParts[i] = padRight(cell, colWidths[i])
		}
		result.WriteString(strings.Join(rowParts, gap))
		result.WriteString("\n")
	}

	return result.String()
}

// visibleLen returns the cell width with escape sequences stripped.
func visibleLen(s string) int {
	if strings.Contains(s, "\x1b") {
		s = ansiSeq.ReplaceAllString(s, "")
	}
	return len(s)
}

// padRight pads a string with spaces to the desired visible width.
func padRight(s string, width int) string {
	if w := visibleLen(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
