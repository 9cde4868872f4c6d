package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Format names a registered output format.
type Format string

const (
	JSON     Format = "json"
	YAML     Format = "yaml"
	CSV      Format = "csv"
	Table    Format = "table"
	Markdown Format = "markdown"
	Plain    Format = "plain"
	TSV      Format = "tsv"
	JSONL    Format = "jsonl"
	HTML     Format = "html"
)

const goTemplatePrefix = "go-template="

// String returns the format name.
func (f Format) String() string { return string(f) }

// GoTemplate returns a Format that renders items using a Go text/template.
// Each sequence element is executed against the template on its own line.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string against the Default registry. Recognizes
// all registered formats and go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	return Default.Parse(s)
}

// Renderer converts a value into its textual representation.
// Implementations must be stateless with respect to input: the same value
// always renders to the same string, and the input is never mutated.
type Renderer interface {
	Render(v any) (string, error)
}

// Configurable is an optional interface. Renderers that implement it receive
// the resolved render options before Render is invoked.
type Configurable interface {
	Configure(Options)
}

// Render formats v using the Default registry.
func Render(v any, f Format, opts ...Option) (string, error) {
	return Default.Render(v, f, opts...)
}

// Write renders v and writes the result to w. It is a thin wrapper around
// [Render]; the library itself never touches stdout or the filesystem.
func Write(w io.Writer, v any, f Format, opts ...Option) error {
	return Default.Write(w, v, f, opts...)
}

// Render resolves f to a renderer and invokes it. Every renderer failure,
// including a panic, surfaces as a wrapped sentinel error; callers never see
// a raw panic from this method.
func (r *Registry) Render(v any, f Format, opts ...Option) (out string, err error) {
	name := strings.TrimSpace(string(f))
	if name == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidFormatName)
	}
	ren, err := r.Create(Format(name))
	if err != nil {
		return "", err
	}
	if c, ok := ren.(Configurable); ok {
		c.Configure(buildOptions(opts))
	}
	defer func() {
		if p := recover(); p != nil {
			out = ""
			err = fmt.Errorf("%w: renderer panic: %v", ErrNotSerializable, p)
		}
	}()
	return ren.Render(v)
}

// Write renders v and writes the result to w.
func (r *Registry) Write(w io.Writer, v any, f Format, opts ...Option) error {
	out, err := r.Render(v, f, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// Marshal renders v and returns the bytes.
func Marshal(v any, f Format, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, v, f, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
