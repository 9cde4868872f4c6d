// Package cli implements the flext command: read structured data on stdin or
// from a file, optionally filter it with a jq expression, and render it in
// the requested output format.
package cli

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/flextcli/render"
	"github.com/flextcli/render/internal/ui"
)

type options struct {
	format    string
	input     string
	output    string
	query     string
	indent    int
	delimiter string
	border    string
	noColor   bool
}

var borderStyles = map[string]render.BorderStyle{
	"rounded": render.BorderRounded,
	"none":    render.BorderNone,
	"ascii":   render.BorderASCII,
	"heavy":   render.BorderHeavy,
	"double":  render.BorderDouble,
}

// NewRootCmd builds the flext root command. Each invocation gets its own
// registry so registrations never leak between tests.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "flext",
		Short: "Render structured data as json, yaml, csv, table, and more",
		Long: `flext reads JSON or YAML from stdin (or --input) and renders it in the
requested output format. Tabular formats derive columns from the data shape:
a list of objects becomes a multi-column table, a single object becomes
Key/Value rows, and scalars become a single Value column.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, render.NewRegistry())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.format, "format", "f", "", "output format (default: table on a terminal, json otherwise)")
	f.StringVarP(&opts.input, "input", "i", "", "read input from file instead of stdin")
	f.StringVarP(&opts.output, "output", "o", "", "write output to file instead of stdout")
	f.StringVarP(&opts.query, "query", "q", "", "jq expression applied before rendering")
	f.IntVar(&opts.indent, "indent", 2, "json indent width (0 for compact)")
	f.StringVar(&opts.delimiter, "delimiter", ",", "csv field delimiter")
	f.StringVar(&opts.border, "border", "rounded", "table border style (rounded|none|ascii|heavy|double)")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colored messages")
	return cmd
}

func run(cmd *cobra.Command, opts *options, reg *render.Registry) error {
	data, err := readInput(cmd, opts.input)
	if err != nil {
		return err
	}

	if opts.query != "" {
		data, err = applyQuery(opts.query, data)
		if err != nil {
			return err
		}
	}

	format, err := resolveFormat(reg, opts.format)
	if err != nil {
		return err
	}

	renderOpts, err := buildRenderOptions(opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.output != "" {
		file, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		defer func() { _ = file.Close() }()
		out = file
	}

	return reg.Write(out, data, format, renderOpts...)
}

func readInput(cmd *cobra.Command, path string) (any, error) {
	var raw []byte
	var err error
	if path == "" || path == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	// YAML is a superset of JSON, so one decoder covers both.
	var data any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}
	return data, nil
}

// resolveFormat picks the output format: the explicit flag when given,
// otherwise table for humans at a terminal and json for pipes.
func resolveFormat(reg *render.Registry, flag string) (render.Format, error) {
	if flag != "" {
		return reg.Parse(flag)
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return render.Table, nil
	}
	return render.JSON, nil
}

func buildRenderOptions(opts *options) ([]render.Option, error) {
	out := []render.Option{render.WithIndent(opts.indent)}

	delim, size := utf8.DecodeRuneInString(opts.delimiter)
	if size == 0 || size != len(opts.delimiter) {
		return nil, fmt.Errorf("delimiter must be a single character, got %q", opts.delimiter)
	}
	out = append(out, render.WithDelimiter(delim))

	border, ok := borderStyles[opts.border]
	if !ok {
		return nil, fmt.Errorf("unknown border style %q (rounded|none|ascii|heavy|double)", opts.border)
	}
	out = append(out, render.WithBorder(border))
	return out, nil
}

// Execute runs the root command against os.Args and reports failures on
// stderr. It returns the process exit code.
func Execute() int {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		mode := ui.ColorAuto
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			mode = ui.ColorNever
		}
		ui.New(mode).Error("%s", err)
		return 1
	}
	return 0
}
