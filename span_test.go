package mdhtml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpanEqual(t *testing.T) {
	require.True(t, BoldSpan("This is a text node").Equal(BoldSpan("This is a text node")))
	require.False(t, BoldSpan("This is a text node").Equal(BoldSpan("This is a different node")))
	require.False(t, BoldSpan("Same text").Equal(ItalicSpan("Same text")))
	require.False(t, LinkSpan("Link text", "https://example.com/a").Equal(LinkSpan("Link text", "https://example.com/b")))
	require.True(t, LinkSpan("Link text", "https://example.com/a").Equal(LinkSpan("Link text", "https://example.com/a")))

	empty := ""
	require.False(t, PlainSpan("x").Equal(Span{Content: "x", Kind: SpanPlain, Target: &empty}))
}

func TestSpanTarget(t *testing.T) {
	for _, s := range []Span{PlainSpan("a"), BoldSpan("a"), ItalicSpan("a"), CodeSpan("a")} {
		require.Nil(t, s.Target, s.Kind.String())
	}
	require.NotNil(t, ImageSpan("alt", "").Target)
	require.Equal(t, "/u", LinkSpan("a", "/u").URL())
}

func TestSpanNode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		span Span
		want string
	}{
		{span: PlainSpan("This is a text node"), want: "This is a text node"},
		{span: BoldSpan("bold"), want: "<b>bold</b>"},
		{span: ItalicSpan("italic"), want: "<i>italic</i>"},
		{span: CodeSpan("x := 1"), want: "<code>x := 1</code>"},
		{span: CodeSpan(""), want: "<code></code>"},
		{span: LinkSpan("click", "https://boot.dev"), want: `<a href="https://boot.dev">click</a>`},
		{span: ImageSpan("alt", "x.png"), want: `<img src="x.png" alt="alt">`},
	}
	for _, tc := range tests {
		t.Run(tc.span.Kind.String(), func(t *testing.T) {
			got, err := tc.span.Node().Render()
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSpanImageNodeAttributes(t *testing.T) {
	n := ImageSpan("alt text", "/img.png").Node()
	require.Equal(t, "img", n.Tag())
	v, ok := n.Value()
	require.True(t, ok)
	require.Equal(t, "", v)
	require.Equal(t, Attributes{{Name: "src", Value: "/img.png"}, {Name: "alt", Value: "alt text"}}, n.Attributes())
}
