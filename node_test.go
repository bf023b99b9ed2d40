package mdhtml

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeafRender(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		node Node
		want string
	}{
		{name: "p", node: Leaf("p", "Hello, world!"), want: "<p>Hello, world!</p>"},
		{name: "a", node: Leaf("a", "Click me!", Attr{Name: "href", Value: "https://www.google.com"}), want: `<a href="https://www.google.com">Click me!</a>`},
		{name: "no tag", node: Text("This is raw text"), want: "This is raw text"},
		{name: "no tag ignores attributes", node: Leaf("", "raw", Attr{Name: "class", Value: "x"}), want: "raw"},
		{name: "empty value", node: Leaf("span", ""), want: "<span></span>"},
		{name: "void element", node: Leaf("img", "", Attr{Name: "src", Value: "/image.png"}, Attr{Name: "alt", Value: "An image"}), want: `<img src="/image.png" alt="An image">`},
		{name: "markup is not escaped", node: Leaf("b", "<i>&</i>"), want: "<b><i>&</i></b>"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.node.Render()
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestLeafWithoutValueFails(t *testing.T) {
	var n Node
	require.True(t, n.IsLeaf())
	_, err := n.Render()
	require.ErrorIs(t, err, ErrMissingValue)

	parent, err := Parent("div", []Node{Text("ok"), {}})
	require.NoError(t, err)
	_, err = Render(parent)
	require.ErrorIs(t, err, ErrMissingValue)
}

func TestParentRender(t *testing.T) {
	t.Parallel()
	grandchild := Leaf("b", "grandchild")
	child, err := Parent("span", []Node{grandchild})
	require.NoError(t, err)
	parent, err := Parent("div", []Node{child, Text(" text")}, Attr{Name: "class", Value: "wrapper"}, Attr{Name: "id", Value: "main"})
	require.NoError(t, err)

	got, err := parent.Render()
	require.NoError(t, err)
	require.Equal(t, `<div class="wrapper" id="main"><span><b>grandchild</b></span> text</div>`, got)
}

func TestParentDeepNesting(t *testing.T) {
	node := Leaf("b", "content")
	for _, tag := range []string{"span", "div", "p", "section"} {
		var err error
		node, err = Parent(tag, []Node{node})
		require.NoError(t, err)
	}
	got, err := node.Render()
	require.NoError(t, err)
	require.Equal(t, "<section><p><div><span><b>content</b></span></div></p></section>", got)
}

func TestParentEmptyChildren(t *testing.T) {
	n, err := Parent("div", nil)
	require.NoError(t, err)
	got, err := n.Render()
	require.NoError(t, err)
	require.Equal(t, "<div></div>", got)
}

func TestParentWithoutTagFails(t *testing.T) {
	_, err := Parent("", []Node{Leaf("span", "child")})
	require.ErrorIs(t, err, ErrMissingTag)

	broken := Node{kind: kindParent}
	_, err = broken.Render()
	require.ErrorIs(t, err, ErrMissingTag)
}

func TestParentOwnsChildren(t *testing.T) {
	children := []Node{Text("a")}
	n, err := Parent("p", children)
	require.NoError(t, err)
	children[0] = Text("b")

	got, err := n.Render()
	require.NoError(t, err)
	require.Equal(t, "<p>a</p>", got)

	copied := n.Children()
	copied[0] = Text("c")
	got, err = n.Render()
	require.NoError(t, err)
	require.Equal(t, "<p>a</p>", got)
}

func TestAttributesString(t *testing.T) {
	require.Equal(t, "", Attributes(nil).String())
	require.Equal(t, "", Attributes{}.String())
	attrs := Attributes{{Name: "src", Value: "/path/to/image.png"}, {Name: "alt", Value: ""}}
	require.Equal(t, ` src="/path/to/image.png" alt=""`, attrs.String())

	v, ok := attrs.Get("src")
	require.True(t, ok)
	require.Equal(t, "/path/to/image.png", v)
	_, ok = attrs.Get("href")
	require.False(t, ok)
}

func TestRenderToWritesNothingOnError(t *testing.T) {
	parent, err := Parent("div", []Node{Leaf("p", "fine"), {}})
	require.NoError(t, err)
	var out bytes.Buffer
	require.ErrorIs(t, RenderTo(&out, parent), ErrMissingValue)
	require.Zero(t, out.Len())

	require.NoError(t, RenderTo(&out, Leaf("p", "fine")))
	require.Equal(t, "<p>fine</p>", out.String())
}

func TestVoidElementOmitsValue(t *testing.T) {
	got, err := Leaf("br", "dropped").Render()
	require.NoError(t, err)
	require.Equal(t, "<br>", got)
}
