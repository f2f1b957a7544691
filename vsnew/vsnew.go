// Package vsnew defines the vsnew syntax highlighting style,
// a dark style loosely based on Visual Studio.
//
// Build the style once at start-up and share it:
//
//	tbl, err := vsnew.New()
//	if err != nil {
//		return err
//	}
//	style, err := vsnew.Register(tbl) // make it available to Chroma as "vsnew"
package vsnew

import (
	"sync"

	"braces.dev/errtrace"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"go.abhg.dev/vsnew/internal/chromastyle"
	"go.abhg.dev/vsnew/internal/must"
	"go.abhg.dev/vsnew/styletable"
)

// Name identifies the style among other installed styles.
const Name = "vsnew"

// Source returns the authored form of the style.
// Each call returns a new copy.
func Source() styletable.Source {
	return styletable.Source{
		Background: "#1e1e1e",
		Default:    "",
		Entries: []styletable.SourceEntry{
			{Category: "comment", Style: "#57a64a"},
			{Category: "comment.preproc", Style: "#9b9b9b"},
			{Category: "keyword", Style: "#569cd6"},
			{Category: "operator.word", Style: "#0000ff"},
			{Category: "keyword.type", Style: "#569cd6"},
			{Category: "name.class", Style: "#4ec9b0"},
			{Category: "name.builtin", Style: "#569cd6"},
			{Category: "string", Style: "#d69d85"},
			{Category: "number", Style: "#b5cea8"},
			{Category: "literal", Style: "#dcdcdc"},

			{Category: "generic.heading", Style: "bold"},
			{Category: "generic.subheading", Style: "bold"},
			{Category: "generic.emph", Style: "italic"},
			{Category: "generic.strong", Style: "bold"},
			{Category: "generic.prompt", Style: "bold"},

			{Category: "error", Style: "border:#FF0000"},
		},
	}
}

// New builds the style table.
func New() (*styletable.Table, error) {
	return errtrace.Wrap2(styletable.New(Source()))
}

// MustNew is like [New] but panics if the table cannot be built.
func MustNew() *styletable.Table {
	t, err := New()
	must.NotErrorf(err, "build %v style", Name)
	return t
}

// Chroma converts the table into a Chroma style named [Name].
func Chroma(t *styletable.Table) (*chroma.Style, error) {
	return errtrace.Wrap2(chromastyle.Build(Name, t))
}

// Chroma's registry is a plain map.
var _registerMu sync.Mutex

// Register converts the table into a Chroma style
// and adds it to Chroma's style registry,
// where Chroma-based tools can find it by [Name].
//
// Nothing is registered if the conversion fails.
func Register(t *styletable.Table) (*chroma.Style, error) {
	style, err := Chroma(t)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	_registerMu.Lock()
	defer _registerMu.Unlock()
	return styles.Register(style), nil
}
