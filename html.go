package render

import (
	"fmt"
	"html"
	"strings"
)

// HTMLRenderer emits an HTML <table> using the same shape normalization as
// [TableRenderer]. Cell content is HTML-escaped.
type HTMLRenderer struct{}

// Render implements [Renderer].
func (r *HTMLRenderer) Render(v any) (string, error) {
	header, rows := tableShape(v)

	var sb strings.Builder
	sb.WriteString("<table>\n")
	if len(header) > 0 {
		sb.WriteString("  <thead>\n    <tr>\n")
		for _, col := range header {
			fmt.Fprintf(&sb, "      <th>%s</th>\n", html.EscapeString(col))
		}
		sb.WriteString("    </tr>\n  </thead>\n")
	}
	sb.WriteString("  <tbody>\n")
	for _, row := range rows {
		sb.WriteString("    <tr>\n")
		for _, cell := range row {
			fmt.Fprintf(&sb, "      <td>%s</td>\n", html.EscapeString(cell))
		}
		sb.WriteString("    </tr>\n")
	}
	sb.WriteString("  </tbody>\n</table>\n")
	return sb.String(), nil
}
