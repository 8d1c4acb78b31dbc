package ui

import (
	"strings"
)

// Align type for table column alignment
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// TableColumn defines a column in a table
type TableColumn struct {
	Key    string
	Header string
	Align  Align
}

// RenderTableOptions configures table rendering
type RenderTableOptions struct {
	Columns []TableColumn
	Rows    []map[string]string
	Padding int
}

// Box drawing characters
type boxChars struct {
	tl, tr, bl, br string // corners
	h, v           string // horizontal, vertical
	t, ml, m, mr, b string // tees and crosses
}

var unicodeBox = boxChars{
	tl: "┌", tr: "┐", bl: "└", br: "┘",
	h: "─", v: "│",
	t: "┬", ml: "├", m: "┼", mr: "┤", b: "┴",
}

// RenderTable renders a formatted table
func RenderTable(opts RenderTableOptions) string {
	if opts.Padding == 0 {
		opts.Padding = 1
	}
	box := unicodeBox

	// Calculate column widths
	widths := make([]int, len(opts.Columns))
	for i, col := range opts.Columns {
		w := VisibleWidth(col.Header)
		for _, row := range opts.Rows {
			if cw := VisibleWidth(row[col.Key]); cw > w {
				w = cw
			}
		}
		widths[i] = w + opts.Padding*2
	}

	hLine := func(left, mid, right string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat(box.h, w)
		}
		return left + strings.Join(parts, mid) + right
	}

	padCell := func(text string, width int, align Align) string {
		w := VisibleWidth(text)
		if w >= width {
			return text
		}
		if align == AlignRight {
			return spaces(width-w) + text
		}
		return text + spaces(width-w)
	}

	padStr := spaces(opts.Padding)

	renderRow := func(values []string) string {
		parts := make([]string, len(opts.Columns))
		for i, col := range opts.Columns {
			aligned := padCell(values[i], widths[i]-opts.Padding*2, col.Align)
			parts[i] = padStr + aligned + padStr
		}
		return box.v + strings.Join(parts, box.v) + box.v
	}

	var lines []string
	lines = append(lines, hLine(box.tl, box.t, box.tr))

	headers := make([]string, len(opts.Columns))
	for i, col := range opts.Columns {
		headers[i] = col.Header
	}
	lines = append(lines, renderRow(headers))
	lines = append(lines, hLine(box.ml, box.m, box.mr))

	for _, row := range opts.Rows {
		values := make([]string, len(opts.Columns))
		for i, col := range opts.Columns {
			values[i] = row[col.Key]
		}
		lines = append(lines, renderRow(values))
	}

	lines = append(lines, hLine(box.bl, box.b, box.br))

	return strings.Join(lines, "\n") + "\n"
}
