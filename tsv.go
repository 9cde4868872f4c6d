package render

import "strings"

// TSVRenderer serializes shaped data as tab-separated values. Shape rules
// match [CSVRenderer], including the strict first-row schema, but fields are
// joined with raw tabs rather than CSV-quoted.
type TSVRenderer struct{}

// Render implements [Renderer].
func (r *TSVRenderer) Render(v any) (string, error) {
	var sb strings.Builder
	writeLine := func(fields []string) {
		sb.WriteString(strings.Join(fields, "\t"))
		sb.WriteString("\n")
	}

	switch classify(v) {
	case kindNil, kindScalar:
		writeLine([]string{cellString(v)})
	case kindMapping:
		for _, p := range mappingPairs(v) {
			writeLine([]string{p.key, cellString(p.val)})
		}
	default:
		items := elements(v)
		if len(items) == 0 {
			return "", nil
		}
		if !allMappings(items) {
			for _, it := range items {
				writeLine([]string{cellString(it)})
			}
			break
		}
		header, rows, err := strictRows(items)
		if err != nil {
			return "", err
		}
		writeLine(header)
		for _, row := range rows {
			writeLine(row)
		}
	}

	return sb.String(), nil
}
