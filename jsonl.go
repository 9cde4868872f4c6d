package render

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSONLRenderer serializes data as newline-delimited JSON. Sequences emit one
// document per element; everything else emits a single document.
type JSONLRenderer struct{}

// Render implements [Renderer].
func (r *JSONLRenderer) Render(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if classify(v) == kindSequence {
		for _, it := range elements(v) {
			if err := enc.Encode(it); err != nil {
				return "", fmt.Errorf("%w: %s", ErrNotSerializable, err)
			}
		}
		return buf.String(), nil
	}
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotSerializable, err)
	}
	return buf.String(), nil
}
