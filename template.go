package render

import (
	"fmt"
	"strings"
	"text/template"
)

// TemplateRenderer renders values through a Go text/template. Sequence
// elements are each executed against the template on their own line. Created
// automatically by registries for go-template=<tmpl> format names.
type TemplateRenderer struct {
	tmpl string
}

// NewTemplateRenderer returns a renderer for the given template source. The
// template is parsed lazily on the first Render call.
func NewTemplateRenderer(tmpl string) *TemplateRenderer {
	return &TemplateRenderer{tmpl: tmpl}
}

// Render implements [Renderer].
func (r *TemplateRenderer) Render(v any) (string, error) {
	tmpl, err := template.New("").Parse(r.tmpl)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	items := []any{v}
	if classify(v) == kindSequence {
		items = elements(v)
	}
	var sb strings.Builder
	for _, it := range items {
		if err := tmpl.Execute(&sb, it); err != nil {
			return "", fmt.Errorf("%w: %s", ErrNotSerializable, err)
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
