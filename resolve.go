package main

import (
	"go.abhg.dev/vsnew/internal/cattree"
	"go.abhg.dev/vsnew/internal/chromastyle"
	"go.abhg.dev/vsnew/stylespec"
	"go.abhg.dev/vsnew/styletable"
)

// resolver looks up styles the way a highlighting engine does:
// a category without an entry uses its nearest parent's entry,
// and the default style if none of its parents have one.
type resolver struct {
	tree     cattree.Root[resolvedEntry]
	fallback stylespec.Spec
}

type resolvedEntry struct {
	Category styletable.Category // as authored
	Style    stylespec.Spec
}

func newResolver(t *styletable.Table) *resolver {
	r := resolver{fallback: t.Default()}
	for c, spec := range t.All() {
		r.tree.Set(canonical(c), resolvedEntry{Category: c, Style: spec})
	}
	return &r
}

// Resolve returns the style for a category
// and the category that supplied it.
// from is empty if the default style was used.
func (r *resolver) Resolve(c styletable.Category) (spec stylespec.Spec, from styletable.Category) {
	e, _, ok := r.tree.Lookup(canonical(c))
	if !ok {
		return r.fallback, ""
	}
	return e.Style, e.Category
}

// canonical spells out shorthand categories
// so that "string.doc" and "literal.string.doc" resolve alike.
func canonical(c styletable.Category) string {
	return string(chromastyle.Canonical(c))
}
