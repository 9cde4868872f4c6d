package render

// Options carries the resolved per-call rendering knobs. Each renderer reads
// only the fields it understands.
type Options struct {
	// Indent is the number of spaces for JSON indentation. Zero means
	// compact output.
	Indent int
	// Delimiter is the CSV field separator.
	Delimiter rune
	// Border selects the table border style.
	Border BorderStyle
	// MaxCellWidth truncates table cells wider than this many columns.
	// Zero means no limit.
	MaxCellWidth int
}

// Option mutates the per-call Options.
type Option func(*Options)

func buildOptions(opts []Option) Options {
	o := Options{Indent: 2, Delimiter: ',', Border: BorderRounded}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithIndent sets the JSON indent width. Zero produces compact output.
func WithIndent(n int) Option {
	return func(o *Options) { o.Indent = n }
}

// WithDelimiter sets the CSV field delimiter.
func WithDelimiter(d rune) Option {
	return func(o *Options) { o.Delimiter = d }
}

// WithBorder sets the table border style.
func WithBorder(b BorderStyle) Option {
	return func(o *Options) { o.Border = b }
}

// WithMaxCellWidth sets the maximum table cell width. Wider cells are
// truncated with "...".
func WithMaxCellWidth(n int) Option {
	return func(o *Options) { o.MaxCellWidth = n }
}
