package mdhtml

import (
	"errors"
	"io"
	"strings"
)

var (
	// ErrMissingTag reports a parent node without a tag.
	ErrMissingTag = errors.New("parent node has no tag")
	// ErrMissingValue reports a leaf node rendered without a value.
	ErrMissingValue = errors.New("leaf node has no value")
)

type nodeKind uint8

const (
	kindLeaf nodeKind = iota
	kindParent
)

// Attr is a single HTML attribute.
type Attr struct {
	Name  string
	Value string
}

// Attributes is an ordered attribute list. Attributes render in insertion order.
type Attributes []Attr

// Get returns the value of the first attribute named name.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// String serializes the attributes as ` name="value"` pairs. Values are
// emitted verbatim.
func (a Attributes) String() string {
	if len(a) == 0 {
		return ""
	}
	var b strings.Builder
	a.writeTo(&b)
	return b.String()
}

func (a Attributes) writeTo(b *strings.Builder) {
	for _, attr := range a {
		b.WriteByte(' ')
		b.WriteString(attr.Name)
		b.WriteString(`="`)
		b.WriteString(attr.Value)
		b.WriteByte('"')
	}
}

// Node is an element of the HTML document tree. A node is either a leaf,
// carrying a text value, or a parent owning an ordered list of children.
//
// The zero Node is a leaf without a value; rendering it fails with
// ErrMissingValue. Nodes are built bottom-up with Leaf, Text and Parent and
// are not modified afterwards.
type Node struct {
	kind     nodeKind
	tag      string
	value    string
	hasValue bool
	children []Node
	attrs    Attributes
}

// Leaf returns a leaf node wrapped in tag. An empty tag renders value
// verbatim. A void element tag such as img or br renders only its opening
// tag, so value is not part of the output.
func Leaf(tag, value string, attrs ...Attr) Node {
	return Node{
		kind:     kindLeaf,
		tag:      tag,
		value:    value,
		hasValue: true,
		attrs:    cloneAttrs(attrs),
	}
}

// Text returns a leaf node without a tag.
func Text(value string) Node {
	return Leaf("", value)
}

// Parent returns a parent node owning children. It fails with ErrMissingTag
// when tag is empty.
func Parent(tag string, children []Node, attrs ...Attr) (Node, error) {
	if tag == "" {
		return Node{}, ErrMissingTag
	}
	owned := make([]Node, len(children))
	copy(owned, children)
	return Node{
		kind:     kindParent,
		tag:      tag,
		children: owned,
		attrs:    cloneAttrs(attrs),
	}, nil
}

func cloneAttrs(attrs []Attr) Attributes {
	if len(attrs) == 0 {
		return nil
	}
	out := make(Attributes, len(attrs))
	copy(out, attrs)
	return out
}

// IsLeaf reports whether n is a leaf node.
func (n Node) IsLeaf() bool { return n.kind == kindLeaf }

// IsParent reports whether n is a parent node.
func (n Node) IsParent() bool { return n.kind == kindParent }

// Tag returns the element name, empty for an untagged leaf.
func (n Node) Tag() string { return n.tag }

// Value returns the leaf text and whether it is set.
func (n Node) Value() (string, bool) { return n.value, n.hasValue }

// Attributes returns a copy of the node's attributes.
func (n Node) Attributes() Attributes { return cloneAttrs(n.attrs) }

// Children returns a copy of the node's children. Leaves have none.
func (n Node) Children() []Node {
	if len(n.children) == 0 {
		return nil
	}
	out := make([]Node, len(n.children))
	copy(out, n.children)
	return out
}

// Render returns the HTML for n.
func (n Node) Render() (string, error) {
	var b strings.Builder
	if err := n.render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (n Node) render(b *strings.Builder) error {
	switch n.kind {
	case kindParent:
		if n.tag == "" {
			return ErrMissingTag
		}
		openTag(b, n.tag, n.attrs)
		for _, child := range n.children {
			if err := child.render(b); err != nil {
				return err
			}
		}
		closeTag(b, n.tag)
		return nil
	default:
		if !n.hasValue {
			return ErrMissingValue
		}
		if n.tag == "" {
			b.WriteString(n.value)
			return nil
		}
		openTag(b, n.tag, n.attrs)
		if isVoidElement(n.tag) {
			return nil
		}
		b.WriteString(n.value)
		closeTag(b, n.tag)
		return nil
	}
}

// Void elements have no end tag; a leaf value on them is not rendered.
var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {}, "img": {},
	"input": {}, "link": {}, "meta": {}, "source": {}, "track": {}, "wbr": {},
}

func isVoidElement(tag string) bool {
	_, ok := voidElements[tag]
	return ok
}

func openTag(b *strings.Builder, tag string, attrs Attributes) {
	b.WriteByte('<')
	b.WriteString(tag)
	attrs.writeTo(b)
	b.WriteByte('>')
}

func closeTag(b *strings.Builder, tag string) {
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

// Render returns the HTML for node.
func Render(node Node) (string, error) {
	return node.Render()
}

// RenderTo renders node and writes the HTML to w. Nothing is written when
// rendering fails.
func RenderTo(w io.Writer, node Node) error {
	out, err := node.Render()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
