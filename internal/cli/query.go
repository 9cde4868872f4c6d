package cli

import (
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"
)

// applyQuery runs a jq expression over data and returns the filtered result.
// A single result is returned bare; multiple results come back as a slice.
// Data is normalized through JSON first because gojq only accepts
// map[string]any / []any / scalar values.
func applyQuery(query string, data any) (any, error) {
	normalized, err := normalizeForQuery(data)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	parsed, err := gojq.Parse(query)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", query, err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", query, err)
	}

	var results []any
	iter := code.Run(normalized)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if qerr, isErr := v.(error); isErr {
			return nil, fmt.Errorf("query %q: %w", query, qerr)
		}
		results = append(results, v)
	}

	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return results[0], nil
	default:
		return results, nil
	}
}

func normalizeForQuery(data any) (any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
