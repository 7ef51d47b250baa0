package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
	"github.com/mattn/go-runewidth"
)

const (
	MinColumnWidth = 4
	MaxColumnWidth = 40
	columnPadding  = 2
)

// NewTable creates a new bubbles/table with standard initial settings
func NewTable(columns []table.Column, theme tint.Tint) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.BrightBlack()).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(theme.BrightWhite()).
		Background(Accent(theme)).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Columns sizes one column per header to fit the widest cell
func Columns(headers []string, rows [][]string) []table.Column {
	cols := make([]table.Column, len(headers))
	for i, h := range headers {
		w := runewidth.StringWidth(h)
		for _, row := range rows {
			if i < len(row) {
				w = max(w, runewidth.StringWidth(row[i]))
			}
		}
		cols[i] = table.Column{Title: h, Width: min(max(w+columnPadding, MinColumnWidth), MaxColumnWidth)}
	}
	return cols
}

// TableRows converts string rows, truncating cells wider than their column
func TableRows(cols []table.Column, rows [][]string) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		r := make(table.Row, len(cols))
		for i := range cols {
			if i < len(row) {
				r[i] = Ellipsis(row[i], cols[i].Width)
			}
		}
		out = append(out, r)
	}
	return out
}

// GetTableHeight returns the appropriate table height based on available screen space
func GetTableHeight(totalHeight int) int {
	return max(totalHeight-5, 1)
}

// Ellipsis truncates a string to a max width and adds ... if needed.
func Ellipsis(s string, maxWidth int) string {
	w := runewidth.StringWidth(s)
	if w <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}
	return runewidth.Truncate(s, maxWidth, "...")
}
