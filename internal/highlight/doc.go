// Package highlight drives Chroma to highlight source files
// with a given style.
//
// Source files are lexed into [Code] values,
// which are comprised of multiple [Span]s.
// A span is either a run of highlighted tokens
// or a failure that must be shown to the reader.
//
// [Highlighter] renders Code to HTML
// and [Terminal] renders it with 24-bit ANSI escape sequences.
package highlight
