package chromastyle

import (
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/vsnew/styletable"
)

func TestTokenType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give styletable.Category
		want chroma.TokenType
	}{
		{give: "comment", want: chroma.Comment},
		{give: "comment.preproc", want: chroma.CommentPreproc},
		{give: "keyword.type", want: chroma.KeywordType},
		{give: "operator.word", want: chroma.OperatorWord},
		{give: "name.class", want: chroma.NameClass},
		{give: "name.builtin", want: chroma.NameBuiltin},
		{give: "string", want: chroma.LiteralString},
		{give: "string.doc", want: chroma.LiteralStringDoc},
		{give: "literal.string", want: chroma.LiteralString},
		{give: "number", want: chroma.LiteralNumber},
		{give: "number.integer.long", want: chroma.LiteralNumberIntegerLong},
		{give: "literal", want: chroma.Literal},
		{give: "generic.heading", want: chroma.GenericHeading},
		{give: "generic.prompt", want: chroma.GenericPrompt},
		{give: "error", want: chroma.Error},
	}

	for _, tt := range tests {
		t.Run(tt.give.String(), func(t *testing.T) {
			t.Parallel()

			got, ok := TokenType(tt.give)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenType_unknown(t *testing.T) {
	t.Parallel()

	for _, give := range []styletable.Category{"", "Comment", "comment.", "strings", "background"} {
		_, ok := TokenType(give)
		assert.False(t, ok, "%q", give)
	}
}

func TestCategory(t *testing.T) {
	t.Parallel()

	assert.Equal(t, styletable.Category("comment.preproc"), Category(chroma.CommentPreproc))
	assert.Equal(t, styletable.Category("literal.string.doc"), Category(chroma.LiteralStringDoc))
	assert.Equal(t, styletable.Category("generic.subheading"), Category(chroma.GenericSubheading))
	assert.Empty(t, Category(chroma.Background))
}

func TestCategory_roundTrip(t *testing.T) {
	t.Parallel()

	for c, tt := range _tokenTypes {
		got, ok := TokenType(Category(tt))
		if assert.True(t, ok, "%q", c) {
			assert.Equal(t, tt, got, "%q", c)
		}
	}
}

func TestCanonical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give styletable.Category
		want styletable.Category
	}{
		{give: "", want: ""},
		{give: "comment", want: "comment"},
		{give: "string", want: "literal.string"},
		{give: "string.doc", want: "literal.string.doc"},
		{give: "number.float", want: "literal.number.float"},
		{give: "strings", want: "strings"},
		{give: "literal.string", want: "literal.string"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Canonical(tt.give), "%q", tt.give)
	}
}
