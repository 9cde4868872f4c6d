package render

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// kind classifies the top-level shape of a value. Shape drives the CSV,
// table, markdown, and plain renderers; JSON and YAML encode values directly.
type kind int

const (
	kindNil kind = iota
	kindScalar
	kindMapping
	kindSequence
)

func classify(v any) kind {
	rv, ok := concrete(v)
	if !ok {
		return kindNil
	}
	switch rv.Kind() {
	case reflect.Map:
		return kindMapping
	case reflect.Struct:
		// Stringer structs (time.Time and friends) render as scalars.
		if _, ok := rv.Interface().(fmt.Stringer); ok {
			return kindScalar
		}
		return kindMapping
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return kindScalar
		}
		return kindSequence
	default:
		return kindScalar
	}
}

// concrete dereferences pointers and interfaces. ok is false when v is nil
// at any level.
func concrete(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, true
}

// elements flattens any slice or array into []any.
func elements(v any) []any {
	rv, ok := concrete(v)
	if !ok {
		return nil
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// allMappings reports whether every element of a non-empty sequence is a
// mapping. Mixed sequences fall back to scalar-per-row treatment.
func allMappings(items []any) bool {
	if len(items) == 0 {
		return false
	}
	for _, it := range items {
		if classify(it) != kindMapping {
			return false
		}
	}
	return true
}

// pair is one key-value entry of a mapping in render order.
type pair struct {
	key string
	val any
}

// mappingPairs flattens a mapping into ordered pairs. Map keys are sorted
// because Go map iteration order is random; struct fields keep declaration
// order and honor json tag names.
func mappingPairs(v any) []pair {
	rv, ok := concrete(v)
	if !ok {
		return nil
	}
	switch rv.Kind() {
	case reflect.Map:
		pairs := make([]pair, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			pairs = append(pairs, pair{key: fmt.Sprintf("%v", iter.Key().Interface()), val: iter.Value().Interface()})
		}
		sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })
		return pairs
	case reflect.Struct:
		return structPairs(rv)
	default:
		return nil
	}
}

func structPairs(rv reflect.Value) []pair {
	t := rv.Type()
	pairs := make([]pair, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		pairs = append(pairs, pair{key: name, val: rv.Field(i).Interface()})
	}
	return pairs
}

// cellString renders a single value for CSV, table, markdown, and plain
// cells. Nils are kept visible as Go's null literal rather than collapsing
// to an empty cell.
func cellString(v any) string {
	if v == nil {
		return "<nil>"
	}
	if s, ok := v.(string); ok {
		return s
	}
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	if _, ok := concrete(v); !ok {
		return "<nil>"
	}
	return fmt.Sprintf("%v", v)
}

// strictRows extracts a header and rows from a sequence of mappings using
// the first element's keys as the fixed schema. A later element carrying a
// key outside that schema fails with [ErrFieldMismatch]; a missing key
// renders as an empty field. The strictness is deliberate: reordering or
// silently dropping columns would corrupt downstream CSV consumers.
func strictRows(items []any) (header []string, rows [][]string, err error) {
	first := mappingPairs(items[0])
	header = make([]string, len(first))
	allowed := make(map[string]int, len(first))
	for i, p := range first {
		header[i] = p.key
		allowed[p.key] = i
	}
	rows = make([][]string, len(items))
	for i, it := range items {
		row := make([]string, len(header))
		for _, p := range mappingPairs(it) {
			col, ok := allowed[p.key]
			if !ok {
				return nil, nil, fmt.Errorf("%w: row %d has field %q not in header %v", ErrFieldMismatch, i, p.key, header)
			}
			row[col] = cellString(p.val)
		}
		rows[i] = row
	}
	return header, rows, nil
}

// unionRows extracts a header and rows from a sequence of mappings using the
// union of all keys in first-seen order. Missing values render as empty
// strings.
func unionRows(items []any) (header []string, rows [][]string) {
	index := make(map[string]int)
	for _, it := range items {
		for _, p := range mappingPairs(it) {
			if _, ok := index[p.key]; !ok {
				index[p.key] = len(header)
				header = append(header, p.key)
			}
		}
	}
	rows = make([][]string, len(items))
	for i, it := range items {
		row := make([]string, len(header))
		for _, p := range mappingPairs(it) {
			row[index[p.key]] = cellString(p.val)
		}
		rows[i] = row
	}
	return header, rows
}

// tableShape normalizes any renderable value into a header plus string rows
// for the table, markdown, and HTML renderers.
func tableShape(v any) (header []string, rows [][]string) {
	switch classify(v) {
	case kindNil:
		return nil, [][]string{{cellString(nil)}}
	case kindScalar:
		return nil, [][]string{{cellString(v)}}
	case kindMapping:
		pairs := mappingPairs(v)
		rows = make([][]string, len(pairs))
		for i, p := range pairs {
			rows[i] = []string{p.key, cellString(p.val)}
		}
		return []string{"Key", "Value"}, rows
	default:
		items := elements(v)
		if len(items) == 0 {
			return []string{"No Data"}, nil
		}
		if allMappings(items) {
			return unionRows(items)
		}
		rows = make([][]string, len(items))
		for i, it := range items {
			rows[i] = []string{cellString(it)}
		}
		return []string{"Value"}, rows
	}
}
