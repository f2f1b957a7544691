package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"braces.dev/errtrace"
	"github.com/alecthomas/chroma/v2"
	"go.abhg.dev/vsnew/internal/cattree"
	"go.abhg.dev/vsnew/internal/highlight"
	"go.abhg.dev/vsnew/stylespec"
	"go.abhg.dev/vsnew/styletable"
)

// Runner executes vsnew's operations against a style table.
//
// In terms of code organization,
// Runner's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Runner struct {
	Log   *log.Logger
	Table *styletable.Table
	Style *chroma.Style // Table converted for Chroma
	Out   io.Writer
}

// List prints every entry in the table,
// preceded by the background and default style.
// If tree is set, entries are printed as a category hierarchy.
func (r *Runner) List(tree bool) error {
	fmt.Fprintf(r.Out, "background\t%v\n", r.Table.Background())
	fmt.Fprintf(r.Out, "default\t%v\n", specString(r.Table.Default()))

	if !tree {
		for c, spec := range r.Table.All() {
			fmt.Fprintf(r.Out, "%v\t%v\n", c, specString(spec))
		}
		return nil
	}

	var t cattree.Root[stylespec.Spec]
	for c, spec := range r.Table.All() {
		t.Set(string(c), spec)
	}
	printTree(r.Out, 0, t.Snapshot())
	return nil
}

func printTree(w io.Writer, depth int, nodes []cattree.Snapshot[stylespec.Spec]) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		name := n.Category[strings.LastIndexByte(n.Category, '.')+1:]
		if n.Value != nil {
			fmt.Fprintf(w, "%v%v\t%v\n", indent, name, specString(*n.Value))
		} else {
			fmt.Fprintf(w, "%v%v\n", indent, name)
		}
		printTree(w, depth+1, n.Children)
	}
}

// Lookup prints the style for each of the given categories.
//
// Without resolve, only exact entries are reported.
// With resolve, categories fall back to their parents
// and then to the default style.
func (r *Runner) Lookup(cats []styletable.Category, resolve bool) error {
	if !resolve {
		for _, c := range cats {
			if spec, ok := r.Table.Lookup(c); ok {
				fmt.Fprintf(r.Out, "%v\t%v\n", c, specString(spec))
			} else {
				fmt.Fprintf(r.Out, "%v\t(not found)\n", c)
			}
		}
		return nil
	}

	res := newResolver(r.Table)
	for _, c := range cats {
		spec, from := res.Resolve(c)
		if len(from) == 0 {
			fmt.Fprintf(r.Out, "%v\t%v\t(default)\n", c, specString(spec))
		} else {
			fmt.Fprintf(r.Out, "%v\t%v\t(from %v)\n", c, specString(spec), from)
		}
	}
	return nil
}

// RenderOptions controls how [Runner.Render] highlights files.
type RenderOptions struct {
	Format  outputFormat
	Classes bool
	Lang    string // empty to guess
}

// codeHighlighter renders highlighted code.
type codeHighlighter interface {
	Highlight(*highlight.Code) string
}

var (
	_ codeHighlighter = (*highlight.Highlighter)(nil)
	_ codeHighlighter = (*highlight.Terminal)(nil)
)

// Render highlights the given files with the style
// and writes the result to the output.
func (r *Runner) Render(files []string, opts RenderOptions) error {
	var h codeHighlighter
	switch opts.Format {
	case formatTerminal:
		h = &highlight.Terminal{Style: r.Style}
	case formatHTML, "":
		hh := &highlight.Highlighter{Style: r.Style, UseClasses: opts.Classes}
		if opts.Classes {
			fmt.Fprintln(r.Out, "<style>")
			if err := hh.WriteCSS(r.Out); err != nil {
				return errtrace.Wrap(err)
			}
			fmt.Fprintln(r.Out, "</style>")
		}
		h = hh
	default:
		return errtrace.Errorf("unknown format %q", opts.Format)
	}

	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			return errtrace.Wrap(err)
		}

		lexer, err := highlight.LexerFor(opts.Lang, path, src)
		if err != nil {
			return errtrace.Errorf("%v: %w", path, err)
		}
		r.Log.Printf("Highlighting %v as %v", path, lexer.Name())

		if _, err := io.WriteString(r.Out, h.Highlight(highlight.Lex(lexer, src))); err != nil {
			return errtrace.Wrap(err)
		}
		if opts.Format == formatTerminal {
			fmt.Fprintln(r.Out)
		}
	}
	return nil
}

// specString formats a spec for display.
// The empty spec is shown as "(none)".
func specString(s stylespec.Spec) string {
	if s.IsZero() {
		return "(none)"
	}
	return s.String()
}
