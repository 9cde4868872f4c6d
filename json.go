package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// JSONRenderer serializes any value as JSON. Indent is the number of spaces
// per nesting level; zero produces compact output.
type JSONRenderer struct {
	Indent int
}

// Configure implements [Configurable].
func (r *JSONRenderer) Configure(o Options) { r.Indent = o.Indent }

// Render implements [Renderer].
func (r *JSONRenderer) Render(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if r.Indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", r.Indent))
	}
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotSerializable, err)
	}
	return buf.String(), nil
}
