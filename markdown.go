package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// MarkdownRenderer emits a GitHub-flavored Markdown table using the same
// shape normalization as [TableRenderer].
type MarkdownRenderer struct{}

// Render implements [Renderer].
func (r *MarkdownRenderer) Render(v any) (string, error) {
	header, rows := tableShape(v)
	if len(header) == 0 {
		// Scalar shapes have no header; a one-column table keeps the
		// output valid Markdown.
		header = []string{"Value"}
	}

	widths := columnWidths(header, rows)
	// Minimum 3 so the separator row has room for alignment markers.
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	var sb strings.Builder
	writeMarkdownRow(&sb, header, widths)
	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	sb.WriteString("| " + strings.Join(sep, " | ") + " |\n")
	for _, row := range rows {
		writeMarkdownRow(&sb, row, widths)
	}
	return sb.String(), nil
}

func writeMarkdownRow(sb *strings.Builder, cells []string, widths []int) {
	padded := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := w - runewidth.StringWidth(cell)
		if pad > 0 {
			cell += strings.Repeat(" ", pad)
		}
		padded[i] = cell
	}
	sb.WriteString("| " + strings.Join(padded, " | ") + " |\n")
}
