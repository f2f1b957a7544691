package chromastyle

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"go.abhg.dev/vsnew/styletable"
)

// Chroma token types by their dotted category names.
var _tokenTypes = map[styletable.Category]chroma.TokenType{
	"error": chroma.Error,
	"other": chroma.Other,

	"keyword":             chroma.Keyword,
	"keyword.constant":    chroma.KeywordConstant,
	"keyword.declaration": chroma.KeywordDeclaration,
	"keyword.namespace":   chroma.KeywordNamespace,
	"keyword.pseudo":      chroma.KeywordPseudo,
	"keyword.reserved":    chroma.KeywordReserved,
	"keyword.type":        chroma.KeywordType,

	"name":                    chroma.Name,
	"name.attribute":          chroma.NameAttribute,
	"name.builtin":            chroma.NameBuiltin,
	"name.builtin.pseudo":     chroma.NameBuiltinPseudo,
	"name.class":              chroma.NameClass,
	"name.constant":           chroma.NameConstant,
	"name.decorator":          chroma.NameDecorator,
	"name.entity":             chroma.NameEntity,
	"name.exception":          chroma.NameException,
	"name.function":           chroma.NameFunction,
	"name.label":              chroma.NameLabel,
	"name.namespace":          chroma.NameNamespace,
	"name.other":              chroma.NameOther,
	"name.property":           chroma.NameProperty,
	"name.tag":                chroma.NameTag,
	"name.variable":           chroma.NameVariable,
	"name.variable.anonymous": chroma.NameVariableAnonymous,
	"name.variable.class":     chroma.NameVariableClass,
	"name.variable.global":    chroma.NameVariableGlobal,
	"name.variable.instance":  chroma.NameVariableInstance,

	"literal":       chroma.Literal,
	"literal.date":  chroma.LiteralDate,
	"literal.other": chroma.LiteralOther,

	"literal.string":           chroma.LiteralString,
	"literal.string.affix":     chroma.LiteralStringAffix,
	"literal.string.backtick":  chroma.LiteralStringBacktick,
	"literal.string.char":      chroma.LiteralStringChar,
	"literal.string.delimiter": chroma.LiteralStringDelimiter,
	"literal.string.doc":       chroma.LiteralStringDoc,
	"literal.string.double":    chroma.LiteralStringDouble,
	"literal.string.escape":    chroma.LiteralStringEscape,
	"literal.string.heredoc":   chroma.LiteralStringHeredoc,
	"literal.string.interpol":  chroma.LiteralStringInterpol,
	"literal.string.other":     chroma.LiteralStringOther,
	"literal.string.regex":     chroma.LiteralStringRegex,
	"literal.string.single":    chroma.LiteralStringSingle,
	"literal.string.symbol":    chroma.LiteralStringSymbol,

	"literal.number":              chroma.LiteralNumber,
	"literal.number.bin":          chroma.LiteralNumberBin,
	"literal.number.float":        chroma.LiteralNumberFloat,
	"literal.number.hex":          chroma.LiteralNumberHex,
	"literal.number.integer":      chroma.LiteralNumberInteger,
	"literal.number.integer.long": chroma.LiteralNumberIntegerLong,
	"literal.number.oct":          chroma.LiteralNumberOct,

	"operator":      chroma.Operator,
	"operator.word": chroma.OperatorWord,

	"punctuation": chroma.Punctuation,

	"comment":              chroma.Comment,
	"comment.hashbang":     chroma.CommentHashbang,
	"comment.multiline":    chroma.CommentMultiline,
	"comment.single":       chroma.CommentSingle,
	"comment.special":      chroma.CommentSpecial,
	"comment.preproc":      chroma.CommentPreproc,
	"comment.preproc.file": chroma.CommentPreprocFile,

	"generic":            chroma.Generic,
	"generic.deleted":    chroma.GenericDeleted,
	"generic.emph":       chroma.GenericEmph,
	"generic.error":      chroma.GenericError,
	"generic.heading":    chroma.GenericHeading,
	"generic.inserted":   chroma.GenericInserted,
	"generic.output":     chroma.GenericOutput,
	"generic.prompt":     chroma.GenericPrompt,
	"generic.strong":     chroma.GenericStrong,
	"generic.subheading": chroma.GenericSubheading,
	"generic.traceback":  chroma.GenericTraceback,

	"text":            chroma.Text,
	"text.whitespace": chroma.TextWhitespace,
	"text.symbol":     chroma.TextSymbol,
}

var _categories = invert(_tokenTypes)

func invert(m map[styletable.Category]chroma.TokenType) map[chroma.TokenType]styletable.Category {
	out := make(map[chroma.TokenType]styletable.Category, len(m))
	for c, tt := range m {
		out[tt] = c
	}
	return out
}

// Top-level shorthands for categories nested under "literal".
var _shorthands = map[string]styletable.Category{
	"string": "literal.string",
	"number": "literal.number",
}

// TokenType returns the Chroma token type for a category.
//
// The shorthands "string" and "number" may be used
// in place of "literal.string" and "literal.number".
func TokenType(c styletable.Category) (chroma.TokenType, bool) {
	tt, ok := _tokenTypes[Canonical(c)]
	return tt, ok
}

// Category returns the dotted category name for a Chroma token type.
// It returns an empty category for types that aren't token categories,
// such as [chroma.Background].
func Category(tt chroma.TokenType) styletable.Category {
	return _categories[tt]
}

// Canonical spells out the shorthands "string" and "number"
// at the start of a category:
//
//	Canonical("string.doc") // == "literal.string.doc"
//	Canonical("comment")    // == "comment"
func Canonical(c styletable.Category) styletable.Category {
	head, tail, hasTail := strings.Cut(string(c), ".")
	full, ok := _shorthands[head]
	if !ok {
		return c
	}
	if hasTail {
		return full + "." + styletable.Category(tail)
	}
	return full
}
