package mdhtml

// Span is a typed run of inline text produced by Tokenize.
type Span struct {
	// Content is the visible text; alt text for images, anchor text for links.
	Content string
	Kind    SpanKind
	// Target is the URL of an image or link span and nil for every other kind.
	Target *string
}

// SpanKind identifies the inline markup of a Span.
type SpanKind uint8

const (
	// SpanPlain is unstyled text.
	SpanPlain SpanKind = iota
	// SpanBold is text between ** delimiters.
	SpanBold
	// SpanItalic is text between _ delimiters.
	SpanItalic
	// SpanCode is text between backticks.
	SpanCode
	// SpanImage is ![alt](url) syntax.
	SpanImage
	// SpanLink is [text](url) syntax.
	SpanLink
)

var spanKindNames = [...]string{
	SpanPlain:  "plain",
	SpanBold:   "bold",
	SpanItalic: "italic",
	SpanCode:   "code",
	SpanImage:  "image",
	SpanLink:   "link",
}

func (k SpanKind) String() string {
	if int(k) < len(spanKindNames) {
		return spanKindNames[k]
	}
	return "unknown"
}

// PlainSpan returns an unstyled span.
func PlainSpan(content string) Span { return Span{Content: content, Kind: SpanPlain} }

// BoldSpan returns a bold span.
func BoldSpan(content string) Span { return Span{Content: content, Kind: SpanBold} }

// ItalicSpan returns an italic span.
func ItalicSpan(content string) Span { return Span{Content: content, Kind: SpanItalic} }

// CodeSpan returns an inline code span.
func CodeSpan(content string) Span { return Span{Content: content, Kind: SpanCode} }

// ImageSpan returns an image span with alt text and source URL.
func ImageSpan(alt, url string) Span { return Span{Content: alt, Kind: SpanImage, Target: &url} }

// LinkSpan returns a link span with anchor text and URL.
func LinkSpan(text, url string) Span { return Span{Content: text, Kind: SpanLink, Target: &url} }

// URL returns the span target, empty when the span has none.
func (s Span) URL() string {
	if s.Target == nil {
		return ""
	}
	return *s.Target
}

// Equal reports whether s and o have the same content, kind and target.
func (s Span) Equal(o Span) bool {
	if s.Content != o.Content || s.Kind != o.Kind {
		return false
	}
	if (s.Target == nil) != (o.Target == nil) {
		return false
	}
	return s.Target == nil || *s.Target == *o.Target
}

// Node converts s to a document tree node.
func (s Span) Node() Node {
	switch s.Kind {
	case SpanBold:
		return Leaf("b", s.Content)
	case SpanItalic:
		return Leaf("i", s.Content)
	case SpanCode:
		return Leaf("code", s.Content)
	case SpanImage:
		return Leaf("img", "", Attr{Name: "src", Value: s.URL()}, Attr{Name: "alt", Value: s.Content})
	case SpanLink:
		return Leaf("a", s.Content, Attr{Name: "href", Value: s.URL()})
	default:
		return Text(s.Content)
	}
}

// SpanNodes converts spans to document tree nodes in order.
func SpanNodes(spans []Span) []Node {
	nodes := make([]Node, len(spans))
	for i, span := range spans {
		nodes[i] = span.Node()
	}
	return nodes
}
