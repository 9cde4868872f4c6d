// Package render converts structured data into textual output formats.
//
// The central entry point is [Render], which accepts any value plus a
// [Format] name and returns the rendered string. Formats are resolved
// through a [Registry]; the builtin formats are JSON, YAML, CSV, TSV,
// Table, Markdown, Plain, JSONL, and HTML, and custom renderers can be
// added with [Registry.Register].
//
// # Data shapes
//
// Renderers accept mappings (maps or structs), sequences of mappings,
// sequences of scalars, single scalars, and nil. Structured formats (JSON,
// YAML, JSONL) encode values directly; tabular formats normalize the value
// into a header plus rows:
//
//   - sequence of mappings → multi-column table (Table/Markdown/HTML use
//     the union of keys in first-seen order; CSV/TSV fix the schema to the
//     first element's keys and fail with [ErrFieldMismatch] on extras)
//   - single mapping → Key/Value rows
//   - sequence of scalars → a single Value column
//   - nil → the literal "<nil>", kept visible on purpose
//
// Go map keys have no stable iteration order, so map keys are rendered
// sorted; struct fields keep declaration order and honor json tags.
//
// # Registries
//
// [NewRegistry] returns an isolated registry seeded with the builtins. The
// package-level functions use [Default], a process-wide instance. Both are
// safe for concurrent use; registration is typically done once at startup.
//
//	reg := render.NewRegistry()
//	_ = reg.Register("upper", func() render.Renderer { return upperRenderer{} })
//	out, err := reg.Render(data, "upper")
//
// # Options
//
// Per-call options tune individual renderers and are ignored by renderers
// that do not understand them:
//
//	render.Render(data, render.JSON, render.WithIndent(0))  // compact
//	render.Render(data, render.CSV, render.WithDelimiter(';'))
//	render.Render(data, render.Table, render.WithBorder(render.BorderASCII))
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidFormatName] — empty format name
//   - [ErrUnknownFormat] — name not present in the registry
//   - [ErrFieldMismatch] — CSV/TSV row outside the first row's schema
//   - [ErrNotSerializable] — the underlying encoder rejected the value
//   - [ErrInvalidTemplate] — invalid go-template syntax
//
// [Registry.Render] never lets a renderer panic escape; failures always
// surface as wrapped sentinel errors.
package render
