// Package chromastyle turns style tables into Chroma styles.
//
// Chroma resolves categories without an entry
// by walking up to their parent category,
// so a table converted here behaves in Chroma the way it was authored:
// "comment.single" has no entry of its own in most tables
// and renders with the style of "comment".
package chromastyle

import (
	"errors"
	"strings"

	"braces.dev/errtrace"
	"github.com/alecthomas/chroma/v2"
	"go.abhg.dev/vsnew/styletable"
)

// ErrUnknownCategory is returned by [Build]
// for table entries that have no Chroma equivalent.
var ErrUnknownCategory = errors.New("category unknown to chroma")

// Build builds a Chroma style with the given name from a table.
//
// The table's background and default style
// are applied to [chroma.Background],
// from which all other token types inherit.
func Build(name string, t *styletable.Table) (*chroma.Style, error) {
	if t == nil {
		return nil, errtrace.New("no style table")
	}

	bg := backgroundEntry(t)
	entries := chroma.StyleEntries{
		chroma.Background: bg,
		chroma.PreWrapper: bg,
	}
	for c, spec := range t.All() {
		tt, ok := TokenType(c)
		if !ok {
			return nil, errtrace.Errorf("%w: %q", ErrUnknownCategory, c)
		}
		entries[tt] = spec.String()
	}

	style, err := chroma.NewStyle(name, entries)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return style, nil
}

func backgroundEntry(t *styletable.Table) string {
	tokens := []string{"bg:" + t.Background().String()}
	if def := t.Default(); !def.IsZero() {
		tokens = append(tokens, def.String())
	}
	return strings.Join(tokens, " ")
}
