package stylespec

import (
	"braces.dev/errtrace"
	"github.com/alecthomas/chroma/v2"
)

// Color is an RGB color.
// The zero value is an unset color.
//
// Color is the same type Chroma uses
// so that parsed specs can be handed to it directly.
type Color = chroma.Colour

// ParseColor parses a color in the form "#rrggbb".
// Shorthand forms ("#rgb") and named colors are not accepted.
func ParseColor(s string) (Color, error) {
	if !isHexColor(s) {
		return 0, errtrace.Wrap(&SyntaxError{
			Input:  s,
			Token:  s,
			Reason: `expected a color in the form "#rrggbb"`,
		})
	}
	return chroma.ParseColour(s), nil
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}
