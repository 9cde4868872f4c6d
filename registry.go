package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory constructs a fresh Renderer. Registered renderers are created per
// call so configuration on one render never leaks into the next.
type Factory func() Renderer

// Registry maps format names to renderer factories. The zero value is not
// usable; call [NewRegistry]. Lookup and registration are safe for concurrent
// use.
type Registry struct {
	mu        sync.RWMutex
	factories map[Format]Factory
}

// Default is the process-wide registry used by the package-level functions.
// It is pre-seeded with the builtin formats.
var Default = NewRegistry()

// NewRegistry returns a registry seeded with the builtin formats. Tests and
// embedders that need isolation should construct their own rather than mutate
// [Default].
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[Format]Factory)}
	r.factories[JSON] = func() Renderer { return &JSONRenderer{Indent: 2} }
	r.factories[YAML] = func() Renderer { return &YAMLRenderer{} }
	r.factories[CSV] = func() Renderer { return &CSVRenderer{Delimiter: ','} }
	r.factories[TSV] = func() Renderer { return &TSVRenderer{} }
	r.factories[Table] = func() Renderer { return &TableRenderer{Border: BorderRounded} }
	r.factories[Markdown] = func() Renderer { return &MarkdownRenderer{} }
	r.factories[Plain] = func() Renderer { return &PlainRenderer{} }
	r.factories[JSONL] = func() Renderer { return &JSONLRenderer{} }
	r.factories[HTML] = func() Renderer { return &HTMLRenderer{} }
	return r
}

// Register adds or overwrites the factory for name. Blank names are rejected
// with [ErrInvalidFormatName].
func (r *Registry) Register(name Format, factory Factory) error {
	if strings.TrimSpace(string(name)) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidFormatName)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
	return nil
}

// Create returns a fresh renderer for name. go-template=<tmpl> names produce
// a [TemplateRenderer] without requiring registration. Unknown names fail
// with [ErrUnknownFormat]; the message lists the registered formats.
func (r *Registry) Create(name Format) (Renderer, error) {
	if tmpl, ok := strings.CutPrefix(string(name), goTemplatePrefix); ok {
		return NewTemplateRenderer(tmpl), nil
	}
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid formats: %s)", ErrUnknownFormat, name, strings.Join(r.names(), ", "))
	}
	return factory(), nil
}

// List returns the registered format names, sorted. The returned slice is a
// snapshot; mutating it does not affect the registry.
func (r *Registry) List() []Format {
	names := r.names()
	out := make([]Format, len(names))
	for i, n := range names {
		out[i] = Format(n)
	}
	return out
}

// Parse validates a format string against the registry. go-template=<tmpl>
// strings are always accepted.
func (r *Registry) Parse(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	r.mu.RLock()
	_, ok := r.factories[Format(s)]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %q (valid formats: %s)", ErrUnknownFormat, s, strings.Join(r.names(), ", "))
	}
	return Format(s), nil
}

func (r *Registry) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for f := range r.factories {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}
