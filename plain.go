package render

import "strings"

// PlainRenderer emits values with no added quoting or structure. Strings pass
// through verbatim; sequences render one element per line; everything else
// uses its default string conversion.
type PlainRenderer struct{}

// Render implements [Renderer].
func (r *PlainRenderer) Render(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	if classify(v) == kindSequence {
		items := elements(v)
		lines := make([]string, len(items))
		for i, it := range items {
			lines[i] = cellString(it)
		}
		return strings.Join(lines, "\n"), nil
	}
	return cellString(v), nil
}
