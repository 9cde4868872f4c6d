package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// TableRenderer emits a human-readable text table. A sequence of mappings
// becomes a multi-column table over the union of keys in first-seen order; a
// single mapping becomes a Key/Value table; scalars become a single Value
// column; an empty sequence renders a "No Data" placeholder header.
type TableRenderer struct {
	Border       BorderStyle
	MaxCellWidth int
}

// Configure implements [Configurable].
func (t *TableRenderer) Configure(o Options) {
	t.Border = o.Border
	t.MaxCellWidth = o.MaxCellWidth
}

// Render implements [Renderer].
func (t *TableRenderer) Render(v any) (string, error) {
	header, rows := tableShape(v)
	widths := columnWidths(header, rows)
	if t.MaxCellWidth > 0 {
		for i := range widths {
			if widths[i] > t.MaxCellWidth {
				widths[i] = t.MaxCellWidth
			}
		}
	}

	var sb strings.Builder
	if t.Border == BorderNone {
		t.writeOpen(&sb, header, rows, widths)
	} else {
		t.writeBordered(&sb, header, rows, widths)
	}
	return sb.String(), nil
}

// writeOpen renders without borders: two-space separated columns with a
// dashed rule under the header.
func (t *TableRenderer) writeOpen(sb *strings.Builder, header []string, rows [][]string, widths []int) {
	if len(header) > 0 {
		sb.WriteString(openRow(header, widths))
		if len(rows) > 0 {
			dashes := make([]string, len(widths))
			for i, w := range widths {
				dashes[i] = strings.Repeat("-", w)
			}
			sb.WriteString(strings.Join(dashes, "  "))
			sb.WriteString("\n")
		}
	}
	for _, row := range rows {
		sb.WriteString(openRow(row, widths))
	}
}

func openRow(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = padCell(clipCell(cell, w), w)
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ") + "\n"
}

func (t *TableRenderer) writeBordered(sb *strings.Builder, header []string, rows [][]string, widths []int) {
	bc, ok := borderSets[t.Border]
	if !ok {
		bc = borderSets[BorderRounded]
	}
	rule(sb, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight)
	if len(header) > 0 {
		borderedRow(sb, header, widths, bc.vertical)
		if len(rows) > 0 {
			rule(sb, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee)
		}
	}
	for _, row := range rows {
		borderedRow(sb, row, widths, bc.vertical)
	}
	rule(sb, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func rule(sb *strings.Builder, widths []int, left, fill, mid, right string) {
	sb.WriteString(left)
	for i, w := range widths {
		sb.WriteString(strings.Repeat(fill, w+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	sb.WriteString("\n")
}

func borderedRow(sb *strings.Builder, cells []string, widths []int, vert string) {
	sb.WriteString(vert)
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(" ")
		sb.WriteString(padCell(clipCell(cell, w), w))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	sb.WriteString("\n")
}

// columnWidths returns the display width of each column, measured with
// runewidth so full-width characters count as two columns.
func columnWidths(header []string, rows [][]string) []int {
	n := len(header)
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	widths := make([]int, n)
	for i, h := range header {
		if w := runewidth.StringWidth(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < n && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func clipCell(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

func padCell(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
