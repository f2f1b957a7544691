package main

import (
	"encoding/xml"
	"io"
	"slices"
	"strings"
	"text/template"

	"braces.dev/errtrace"
	"go.abhg.dev/vsnew/internal/highlight"
	"go.abhg.dev/vsnew/styletable"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Export writes the style in the given format.
func (r *Runner) Export(format exportFormat) error {
	switch format {
	case exportChroma:
		enc := xml.NewEncoder(r.Out)
		enc.Indent("", "  ")
		if err := enc.Encode(r.Style); err != nil {
			return errtrace.Wrap(err)
		}
		_, err := io.WriteString(r.Out, "\n")
		return errtrace.Wrap(err)

	case exportCSS:
		h := highlight.Highlighter{Style: r.Style, UseClasses: true}
		return errtrace.Wrap(h.WriteCSS(r.Out))

	case exportPygments:
		return errtrace.Wrap(writePygments(r.Out, r.Style.Name, r.Table))

	default:
		return errtrace.Errorf("unknown export format %q", format)
	}
}

var _pygmentsTmpl = template.Must(template.New("pygments").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(
	`# -*- coding: utf-8 -*-
"""
    {{ .Name }} Pygments style.

    Generated by vsnew {{ .Version }}.
"""

from pygments.style import Style
from pygments.token import {{ join .Imports ", " }}


class {{ .ClassName }}(Style):

    background_color = "{{ .Background }}"
    default_style = "{{ .Default }}"

    styles = {
{{- range .Entries }}
        {{ printf "%-26s" (print .Token ":") }} "{{ .Style }}",
{{- end }}
    }
`))

type pygmentsEntry struct {
	Token string // e.g. "Comment.Preproc"
	Style string
}

type pygmentsStyle struct {
	Name       string
	Version    string
	ClassName  string
	Background string
	Default    string
	Imports    []string
	Entries    []pygmentsEntry
}

// writePygments writes the table as a Pygments Style class.
func writePygments(w io.Writer, name string, t *styletable.Table) error {
	title := cases.Title(language.Und)

	data := pygmentsStyle{
		Name:       name,
		Version:    _version,
		ClassName:  title.String(name) + "Style",
		Background: t.Background().String(),
		Default:    t.Default().String(),
	}
	for c, spec := range t.All() {
		segs := strings.Split(string(c), ".")
		for i, seg := range segs {
			segs[i] = title.String(seg)
		}
		if !slices.Contains(data.Imports, segs[0]) {
			data.Imports = append(data.Imports, segs[0])
		}
		data.Entries = append(data.Entries, pygmentsEntry{
			Token: strings.Join(segs, "."),
			Style: spec.String(),
		})
	}
	slices.Sort(data.Imports)

	if err := _pygmentsTmpl.Execute(w, data); err != nil {
		return errtrace.Errorf("render pygments style: %w", err)
	}
	return nil
}
