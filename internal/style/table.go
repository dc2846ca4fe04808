// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Alignment specifies column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

// Column is a table column.  A zero Width sizes the column to its
// contents.
type Column struct {
	Name  string
	Width int
	Align Alignment
	Style lipgloss.Style
}

// Table renders rows of cells under a header.
type Table struct {
	columns   []Column
	rows      [][]string
	headerSep bool
	indent    string
}

// NewTable creates a new table with the given columns.
func NewTable(columns ...Column) *Table {
	return &Table{
		columns:   columns,
		headerSep: true,
		indent:    "  "}
}

// SetIndent sets the left indent of the table.
func (t *Table) SetIndent(indent string) *Table {
	t.indent = indent
	return t
}

// SetHeaderSeparator enables or disables the line under the header.
func (t *Table) SetHeaderSeparator(enabled bool) *Table {
	t.headerSep = enabled
	return t
}

// AddRow adds a row, padding it with empty cells.
func (t *Table) AddRow(values ...string) *Table {
	for len(values) < len(t.columns) {
		values = append(values, "")
	}
	t.rows = append(t.rows, values)
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) widths() []int {
	ws := make([]int, len(t.columns))
	for i, col := range t.columns {
		if col.Width > 0 {
			ws[i] = col.Width
			continue
		}
		ws[i] = lipgloss.Width(col.Name)
		for _, row := range t.rows {
			if w := lipgloss.Width(row[i]); w > ws[i] {
				ws[i] = w
			}
		}
	}
	return ws
}

// Render returns the formatted table.
func (t *Table) Render() string {
	if len(t.columns) == 0 {
		return ""
	}
	ws := t.widths()
	var sb strings.Builder
	sb.WriteString(t.indent)
	for i, col := range t.columns {
		sb.WriteString(pad(Bold.Render(col.Name), ws[i], col.Align))
		if i < len(t.columns)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("\n")
	if t.headerSep {
		total := len(ws) - 1
		for _, w := range ws {
			total += w
		}
		sb.WriteString(t.indent)
		sb.WriteString(Dim.Render(strings.Repeat("─", total)))
		sb.WriteString("\n")
	}
	for _, row := range t.rows {
		sb.WriteString(t.indent)
		for i, col := range t.columns {
			val := row[i]
			if w := lipgloss.Width(val); w > ws[i] && ws[i] > 3 {
				val = string([]rune(val)[:ws[i]-3]) + "..."
			}
			val = col.Style.Render(val)
			sb.WriteString(pad(val, ws[i], col.Align))
			if i < len(t.columns)-1 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// pad pads s to width w, accounting for escape sequences.
func pad(s string, w int, align Alignment) string {
	n := lipgloss.Width(s)
	if n >= w {
		return s
	}
	p := w - n
	switch align {
	case AlignRight:
		return strings.Repeat(" ", p) + s
	case AlignCenter:
		l := p / 2
		return strings.Repeat(" ", l) + s + strings.Repeat(" ", p-l)
	default:
		return s + strings.Repeat(" ", p)
	}
}
