package stylespec

import (
	"errors"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want Spec
	}{
		{desc: "empty"},
		{desc: "blank", give: "  \t "},
		{
			desc: "color",
			give: "#57a64a",
			want: Spec{Foreground: chroma.NewColour(0x57, 0xa6, 0x4a)},
		},
		{
			desc: "color/uppercase",
			give: "#FF0000",
			want: Spec{Foreground: chroma.NewColour(0xff, 0, 0)},
		},
		{desc: "bold", give: "bold", want: Spec{Bold: true}},
		{desc: "italic", give: "italic", want: Spec{Italic: true}},
		{
			desc: "border",
			give: "border:#FF0000",
			want: Spec{Border: chroma.NewColour(0xff, 0, 0)},
		},
		{
			desc: "black",
			give: "#000000",
			want: Spec{Foreground: chroma.NewColour(0, 0, 0)},
		},
		{
			desc: "everything",
			give: "italic border:#000000 bold #dcdcdc",
			want: Spec{
				Foreground: chroma.NewColour(0xdc, 0xdc, 0xdc),
				Bold:       true,
				Italic:     true,
				Border:     chroma.NewColour(0, 0, 0),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc      string
		give      string
		wantToken string
	}{
		{desc: "repeated bold", give: "bold bold", wantToken: "bold"},
		{desc: "repeated italic", give: "italic bold italic", wantToken: "italic"},
		{desc: "two colors", give: "#000000 #ffffff", wantToken: "#ffffff"},
		{desc: "two borders", give: "border:#000000 border:#000000", wantToken: "border:#000000"},
		{desc: "unknown word", give: "boldx", wantToken: "boldx"},
		{desc: "short color", give: "#fff", wantToken: "#fff"},
		{desc: "long color", give: "#1234567", wantToken: "#1234567"},
		{desc: "not hex", give: "#gggggg", wantToken: "#gggggg"},
		{desc: "missing hash", give: "57a64a", wantToken: "57a64a"},
		{desc: "bad border", give: "border:red", wantToken: "border:red"},
		{desc: "background", give: "bg:#000000", wantToken: "bg:#000000"},
		{desc: "noinherit", give: "bold noinherit", wantToken: "noinherit"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.give)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)

			var synErr *SyntaxError
			require.True(t, errors.As(err, &synErr), "want *SyntaxError, got %T", err)
			assert.Equal(t, tt.give, synErr.Input)
			assert.Equal(t, tt.wantToken, synErr.Token)
		})
	}
}

func TestSpec_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want string
	}{
		{desc: "empty", give: "", want: ""},
		{desc: "color", give: "#57A64A", want: "#57a64a"},
		{desc: "border", give: "border:#FF0000", want: "border:#ff0000"},
		{
			desc: "reordered",
			give: "border:#000000 italic bold #dcdcdc",
			want: "#dcdcdc bold italic border:#000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			spec, err := Parse(tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, spec.String())

			// The canonical form must parse back to the same value.
			again, err := Parse(spec.String())
			require.NoError(t, err)
			assert.Equal(t, spec, again)
		})
	}
}

func TestSpec_IsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, Spec{}.IsZero())
	assert.True(t, MustParse("").IsZero())
	assert.False(t, MustParse("bold").IsZero())
	assert.False(t, MustParse("#000000").IsZero())
}

func TestMustParse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Spec{Italic: true}, MustParse("italic"))
	assert.Panics(t, func() {
		MustParse("bold bold")
	})
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		c, err := ParseColor("#1E1E1E")
		require.NoError(t, err)
		assert.True(t, c.IsSet())
		assert.Equal(t, "#1e1e1e", c.String())
	})

	for _, give := range []string{"", "#", "1e1e1e", "#1e1e1", "#1e1e1g", "ansired"} {
		t.Run("invalid/"+give, func(t *testing.T) {
			t.Parallel()

			_, err := ParseColor(give)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}
