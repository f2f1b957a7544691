package highlight

import (
	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Lexer analyzes source code and generates a stream of tokens.
type Lexer interface {
	// Name of the language recognized by this lexer.
	Name() string

	Lex(src []byte) ([]chroma.Token, error)
}

// LexerFor picks a Chroma lexer for a source file.
//
// If lang is non-empty, it names the language explicitly
// and LexerFor fails if Chroma does not know it.
// Otherwise, the lexer is picked by file name,
// then by analyzing the contents,
// and finally falls back to plain text.
func LexerFor(lang, filename string, src []byte) (Lexer, error) {
	var l chroma.Lexer
	if len(lang) > 0 {
		l = lexers.Get(lang)
		if l == nil {
			return nil, errtrace.Errorf("unknown language %q", lang)
		}
	} else {
		l = lexers.Match(filename)
		if l == nil {
			l = lexers.Analyse(string(src))
		}
		if l == nil {
			l = lexers.Fallback
		}
	}
	return &chromaLexer{l: chroma.Coalesce(l)}, nil
}

// chromaLexer builds a [Lexer] from a Chroma lexer.
type chromaLexer struct{ l chroma.Lexer }

// Name reports the language name of the underlying Chroma lexer.
func (cl *chromaLexer) Name() string {
	return cl.l.Config().Name
}

// Lex lexically analyzes the given source code using Chroma.
func (cl *chromaLexer) Lex(src []byte) ([]chroma.Token, error) {
	return errtrace.Wrap2(chroma.Tokenise(cl.l, nil, string(src)))
}

// Lex lexes src with the given lexer and wraps the result in [Code].
// A lexing failure becomes an [ErrorSpan] followed by the raw source,
// so that the output still shows the file.
func Lex(l Lexer, src []byte) *Code {
	tokens, err := l.Lex(src)
	if err != nil {
		return &Code{
			Spans: []Span{
				&ErrorSpan{Msg: "Failed to highlight source", Err: err},
				&TextSpan{Text: src},
			},
		}
	}
	return &Code{Spans: []Span{&TokenSpan{Tokens: tokens}}}
}
