// Package stylespec implements the small attribute grammar
// used to describe how a token category is displayed.
//
// A style spec is a whitespace-separated list of tokens.
// Each token is one of:
//
//	#rrggbb         foreground color
//	bold            bold text
//	italic          italic text
//	border:#rrggbb  border color
//
// Tokens may appear in any order, but each kind may appear at most once.
// The empty string is a valid spec that changes nothing.
//
// Specs are parsed once into a [Spec] value
// and printed back in a canonical order with [Spec.String].
package stylespec
