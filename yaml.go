package render

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLRenderer serializes any value as block-style YAML. Output round-trips
// through a standard YAML parser for JSON-compatible input.
type YAMLRenderer struct{}

// Render implements [Renderer].
func (r *YAMLRenderer) Render(v any) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		_ = enc.Close()
		return "", fmt.Errorf("%w: %s", ErrNotSerializable, err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotSerializable, err)
	}
	return buf.String(), nil
}
