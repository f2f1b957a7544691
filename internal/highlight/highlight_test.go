package highlight

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _testStyle = chroma.MustNewStyle("test", chroma.StyleEntries{
	chroma.Comment:    "#57a64a",
	chroma.PreWrapper: "bg:#1e1e1e",
	chroma.Background: "bg:#1e1e1e",
})

func TestHighlighter_Highlight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give Span
		want string
	}{
		{
			desc: "text",
			give: &TextSpan{
				Text: []byte("a < b"),
			},
			want: "a &lt; b",
		},
		{
			desc: "error",
			give: &ErrorSpan{
				Msg: "Something went wrong",
				Err: errors.New("great sadness"),
			},
			want: "<strong>Something went wrong</strong>" +
				"<pre><code>great sadness</code></pre>",
		},
		{
			desc: "highlight",
			give: &TokenSpan{
				Tokens: []chroma.Token{
					{Type: chroma.Comment, Value: "/* foo */"},
					{Type: chroma.Text, Value: "bar"},
				},
			},
			want: `<span class="c">/* foo */</span>bar`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			h := Highlighter{
				Style:      _testStyle,
				UseClasses: true,
			}
			want := `<pre class="chroma">` + tt.want + "</pre>"
			got := h.Highlight(&Code{
				Spans: []Span{tt.give},
			})
			assert.Equal(t, want, got)
		})
	}

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		h := Highlighter{Style: _testStyle}
		assert.Empty(t, h.Highlight(nil))
	})

	t.Run("unknown", func(t *testing.T) {
		type unknownSpan struct{ Span }

		assert.Panics(t, func() {
			h := Highlighter{
				Style: _testStyle,
			}
			h.Highlight(&Code{
				Spans: []Span{unknownSpan{}},
			})
		})
	})
}

func TestHighlighter_Highlight_noClasses(t *testing.T) {
	t.Parallel()

	h := Highlighter{Style: _testStyle}
	got := h.Highlight(&Code{
		Spans: []Span{
			&TokenSpan{
				Tokens: []chroma.Token{
					{Type: chroma.Comment, Value: "/* foo */"},
					{Type: chroma.Text, Value: "bar"},
				},
			},
		},
	})
	assert.True(t, strings.HasPrefix(got, "<pre style="), "got %q", got)
	assert.Contains(t, got, "#1e1e1e")
	assert.Contains(t, got, "#57a64a")
	assert.Contains(t, got, "/* foo */</span>bar</pre>")
}

func TestHighlighter_WriteCSS(t *testing.T) {
	t.Parallel()

	t.Run("classes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		h := Highlighter{Style: _testStyle, UseClasses: true}
		require.NoError(t, h.WriteCSS(&buf))
		assert.Contains(t, buf.String(), "#57a64a")
	})

	t.Run("inline", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		h := Highlighter{Style: _testStyle}
		require.NoError(t, h.WriteCSS(&buf))
		assert.Empty(t, buf.String())
	})
}

func TestTerminal_Highlight(t *testing.T) {
	t.Parallel()

	term := Terminal{Style: _testStyle}
	got := term.Highlight(&Code{
		Spans: []Span{
			&TokenSpan{
				Tokens: []chroma.Token{
					{Type: chroma.Comment, Value: "// foo"},
				},
			},
			&ErrorSpan{Msg: "oops", Err: errors.New("great sadness")},
			&TextSpan{Text: []byte("raw")},
		},
	})

	// #57a64a as a 24-bit foreground color.
	assert.Contains(t, got, "38;2;87;166;74")
	assert.Contains(t, got, "// foo")
	assert.Contains(t, got, "oops: great sadness")
	assert.True(t, strings.HasSuffix(got, "raw"), "got %q", got)

	assert.Empty(t, term.Highlight(nil))
}
