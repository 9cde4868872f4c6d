package render

import (
	"bytes"
	"encoding/csv"
)

// CSVRenderer serializes shaped data as RFC 4180 CSV. A sequence of mappings
// becomes a header row (the first element's keys) plus one row per element;
// elements with keys outside that schema fail with [ErrFieldMismatch]. A
// single mapping becomes key,value rows without a header.
type CSVRenderer struct {
	Delimiter rune
}

// Configure implements [Configurable].
func (r *CSVRenderer) Configure(o Options) { r.Delimiter = o.Delimiter }

// Render implements [Renderer].
func (r *CSVRenderer) Render(v any) (string, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if r.Delimiter != 0 {
		cw.Comma = r.Delimiter
	}

	switch classify(v) {
	case kindNil, kindScalar:
		if err := cw.Write([]string{cellString(v)}); err != nil {
			return "", err
		}
	case kindMapping:
		for _, p := range mappingPairs(v) {
			if err := cw.Write([]string{p.key, cellString(p.val)}); err != nil {
				return "", err
			}
		}
	default:
		items := elements(v)
		if len(items) == 0 {
			return "", nil
		}
		if err := r.writeRows(cw, items); err != nil {
			return "", err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *CSVRenderer) writeRows(cw *csv.Writer, items []any) error {
	if !allMappings(items) {
		for _, it := range items {
			if err := cw.Write([]string{cellString(it)}); err != nil {
				return err
			}
		}
		return nil
	}
	header, rows, err := strictRows(items)
	if err != nil {
		return err
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}
