// Package styletable holds an immutable mapping
// from token categories to display attributes.
//
// A [Table] is built once from a [Source] with [New]
// and never changes afterwards,
// so it may be shared freely between goroutines.
//
// Tables answer exact lookups only.
// Falling back from "comment.preproc" to "comment"
// and then to the default style is left to the highlighting engine.
package styletable

import (
	"errors"
	"fmt"
	"iter"

	"braces.dev/errtrace"
	"go.abhg.dev/vsnew/stylespec"
)

var (
	// ErrDuplicateCategory matches errors reported by [New]
	// when the same category appears more than once.
	ErrDuplicateCategory = errors.New("duplicate category")

	// ErrEmptyCategory is reported by [New] for entries without a category.
	ErrEmptyCategory = errors.New("empty category")
)

// DuplicateCategoryError is returned by [New]
// if a category is listed twice in a [Source].
type DuplicateCategoryError struct {
	Category Category

	// Indexes of the two entries in Source.Entries.
	First, Second int
}

func (e *DuplicateCategoryError) Error() string {
	return fmt.Sprintf("%v %q: entries %d and %d", ErrDuplicateCategory, e.Category, e.First, e.Second)
}

// Is reports whether target is [ErrDuplicateCategory].
func (e *DuplicateCategoryError) Is(target error) bool {
	return target == ErrDuplicateCategory
}

// Source is the authored form of a style table.
type Source struct {
	// Background is the background color in the form "#rrggbb".
	// It is required.
	Background string

	// Default is the style applied to categories without an entry.
	// It may be empty to leave text unchanged.
	Default string

	// Entries lists the explicit styles.
	// Their order is preserved by the table.
	Entries []SourceEntry
}

// SourceEntry is a single authored category-style pair.
type SourceEntry struct {
	Category Category
	Style    string
}

// Entry is a parsed category-style pair held by a [Table].
type Entry struct {
	Category Category
	Style    stylespec.Spec
}

// Table maps token categories to styles.
//
// The zero value is not usable; build tables with [New].
type Table struct {
	background stylespec.Color
	fallback   stylespec.Spec
	entries    []Entry
	index      map[Category]int // category -> position in entries
}

// New builds a table from the given source.
//
// All styles are parsed up front.
// If any of them is malformed, or a category is repeated,
// New returns an error and no table.
// Malformed styles match [stylespec.ErrMalformed]
// and repeated categories match [ErrDuplicateCategory].
func New(src Source) (*Table, error) {
	bg, err := stylespec.ParseColor(src.Background)
	if err != nil {
		return nil, errtrace.Errorf("background: %w", err)
	}

	fallback, err := stylespec.Parse(src.Default)
	if err != nil {
		return nil, errtrace.Errorf("default style: %w", err)
	}

	t := Table{
		background: bg,
		fallback:   fallback,
		entries:    make([]Entry, 0, len(src.Entries)),
		index:      make(map[Category]int, len(src.Entries)),
	}
	for i, e := range src.Entries {
		if len(e.Category) == 0 {
			return nil, errtrace.Errorf("entry %d: %w", i, ErrEmptyCategory)
		}

		if first, ok := t.index[e.Category]; ok {
			return nil, errtrace.Wrap(&DuplicateCategoryError{
				Category: e.Category,
				First:    first,
				Second:   i,
			})
		}

		spec, err := stylespec.Parse(e.Style)
		if err != nil {
			return nil, errtrace.Errorf("category %q: %w", e.Category, err)
		}

		t.index[e.Category] = len(t.entries)
		t.entries = append(t.entries, Entry{Category: e.Category, Style: spec})
	}

	return &t, nil
}

// Background returns the background color of the style.
func (t *Table) Background() stylespec.Color {
	return t.background
}

// Default returns the style for categories that have no entry.
func (t *Table) Default() stylespec.Spec {
	return t.fallback
}

// Lookup returns the style registered for exactly this category.
// It reports false if the category has no entry of its own,
// even if one of its parents does.
func (t *Table) Lookup(c Category) (stylespec.Spec, bool) {
	idx, ok := t.index[c]
	if !ok {
		return stylespec.Spec{}, false
	}
	return t.entries[idx].Style, true
}

// Len reports the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// All iterates over the entries of the table in the order they were authored.
// The sequence may be consumed any number of times.
func (t *Table) All() iter.Seq2[Category, stylespec.Spec] {
	return func(yield func(Category, stylespec.Spec) bool) {
		for _, e := range t.entries {
			if !yield(e.Category, e.Style) {
				return
			}
		}
	}
}

// Entries returns a copy of the entries of the table
// in the order they were authored.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, len(t.entries))
	copy(entries, t.entries)
	return entries
}
