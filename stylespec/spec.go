package stylespec

import (
	"errors"
	"fmt"
	"strings"

	"braces.dev/errtrace"
)

const _borderPrefix = "border:"

// ErrMalformed matches all errors reported for input
// that does not follow the style spec grammar.
//
//	if errors.Is(err, stylespec.ErrMalformed) { ... }
var ErrMalformed = errors.New("malformed style spec")

// SyntaxError is returned when a style spec cannot be parsed.
type SyntaxError struct {
	// Input is the full spec that failed to parse.
	Input string

	// Token is the offending token inside Input.
	Token string

	// Reason describes what was wrong with Token.
	Reason string
}

func (e *SyntaxError) Error() string {
	if e.Token == e.Input {
		return fmt.Sprintf("%v %q: %v", ErrMalformed, e.Input, e.Reason)
	}
	return fmt.Sprintf("%v %q: token %q: %v", ErrMalformed, e.Input, e.Token, e.Reason)
}

// Is reports whether target is [ErrMalformed].
func (e *SyntaxError) Is(target error) bool {
	return target == ErrMalformed
}

// Spec holds the display attributes for a token category.
//
// Spec values are comparable:
// two specs are equal if they describe the same attributes,
// regardless of how they were written.
type Spec struct {
	// Foreground is the text color, if set.
	Foreground Color

	Bold   bool
	Italic bool

	// Border is the color of a border drawn around the text, if set.
	Border Color
}

// IsZero reports whether this spec sets no attributes.
func (s Spec) IsZero() bool {
	return s == Spec{}
}

// String returns the canonical form of the spec.
// Parsing the result with [Parse] yields an equal Spec.
func (s Spec) String() string {
	var tokens []string
	if s.Foreground.IsSet() {
		tokens = append(tokens, s.Foreground.String())
	}
	if s.Bold {
		tokens = append(tokens, "bold")
	}
	if s.Italic {
		tokens = append(tokens, "italic")
	}
	if s.Border.IsSet() {
		tokens = append(tokens, _borderPrefix+s.Border.String())
	}
	return strings.Join(tokens, " ")
}

// Parse parses a style spec.
//
// The returned error matches [ErrMalformed]
// and can be inspected as a [*SyntaxError].
func Parse(input string) (Spec, error) {
	var (
		spec Spec
		seen = make(map[string]struct{}, 4)
	)
	for _, tok := range strings.Fields(input) {
		fail := func(reason string) (Spec, error) {
			return Spec{}, errtrace.Wrap(&SyntaxError{
				Input:  input,
				Token:  tok,
				Reason: reason,
			})
		}

		var kind string
		switch {
		case tok == "bold":
			kind = "bold"
			spec.Bold = true
		case tok == "italic":
			kind = "italic"
			spec.Italic = true
		case strings.HasPrefix(tok, _borderPrefix):
			kind = "border"
			c := strings.TrimPrefix(tok, _borderPrefix)
			if !isHexColor(c) {
				return fail(`expected a border color in the form "border:#rrggbb"`)
			}
			spec.Border, _ = ParseColor(c)
		case strings.HasPrefix(tok, "#"):
			kind = "color"
			if !isHexColor(tok) {
				return fail(`expected a color in the form "#rrggbb"`)
			}
			spec.Foreground, _ = ParseColor(tok)
		default:
			return fail(`expected "bold", "italic", "#rrggbb", or "border:#rrggbb"`)
		}

		if _, dup := seen[kind]; dup {
			return fail("repeated " + kind + " attribute")
		}
		seen[kind] = struct{}{}
	}
	return spec, nil
}

// MustParse is like [Parse] but panics if the spec is malformed.
// Use it only for specs written in source code.
func MustParse(input string) Spec {
	s, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return s
}
