package mdhtml

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrUnmatchedDelimiter reports an inline delimiter without a closing pair.
	ErrUnmatchedDelimiter = errors.New("unmatched delimiter")
	// ErrEmptyDelimiter reports a split requested with an empty delimiter.
	ErrEmptyDelimiter = errors.New("delimiter must not be empty")
)

// DelimiterError carries the delimiter and the text it was unmatched in.
type DelimiterError struct {
	Delimiter string
	Text      string
}

func (e *DelimiterError) Error() string {
	return fmt.Sprintf("unmatched delimiter %q in text %q", e.Delimiter, e.Text)
}

func (e *DelimiterError) Unwrap() error { return ErrUnmatchedDelimiter }

var (
	imagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// Match is an image or link found in inline text.
type Match struct {
	Text string
	URL  string
}

type matchLoc struct {
	start, end int
	Match
}

// ExtractImages returns the alt text and URL of every ![alt](url) in text.
func ExtractImages(text string) []Match {
	return matchesOf(findImages(text))
}

// ExtractLinks returns the anchor text and URL of every [text](url) in text
// that is not part of an image.
func ExtractLinks(text string) []Match {
	return matchesOf(findLinks(text))
}

func matchesOf(locs []matchLoc) []Match {
	if len(locs) == 0 {
		return nil
	}
	out := make([]Match, len(locs))
	for i, loc := range locs {
		out[i] = loc.Match
	}
	return out
}

func findImages(text string) []matchLoc {
	var out []matchLoc
	for _, m := range imagePattern.FindAllStringSubmatchIndex(text, -1) {
		out = append(out, matchLoc{
			start: m[0],
			end:   m[1],
			Match: Match{Text: text[m[2]:m[3]], URL: text[m[4]:m[5]]},
		})
	}
	return out
}

// findLinks scans like imagePattern but rejects a candidate whose opening
// bracket follows '!' and retries one byte later.
func findLinks(text string) []matchLoc {
	var out []matchLoc
	pos := 0
	for pos < len(text) {
		m := linkPattern.FindStringSubmatchIndex(text[pos:])
		if m == nil {
			break
		}
		start := pos + m[0]
		if start > 0 && text[start-1] == '!' {
			pos = start + 1
			continue
		}
		out = append(out, matchLoc{
			start: start,
			end:   pos + m[1],
			Match: Match{Text: text[pos+m[2] : pos+m[3]], URL: text[pos+m[4] : pos+m[5]]},
		})
		pos += m[1]
	}
	return out
}

// SplitDelimiter splits every plain span on delim and turns the enclosed
// segments into spans of kind. Other spans pass through unchanged. Empty
// plain segments are dropped; empty enclosed segments are kept.
func SplitDelimiter(spans []Span, delim string, kind SpanKind) ([]Span, error) {
	if delim == "" {
		return nil, ErrEmptyDelimiter
	}
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != SpanPlain {
			out = append(out, span)
			continue
		}
		count := strings.Count(span.Content, delim)
		if count == 0 {
			out = append(out, span)
			continue
		}
		if count%2 != 0 {
			return nil, &DelimiterError{Delimiter: delim, Text: span.Content}
		}
		for i, part := range strings.Split(span.Content, delim) {
			if i%2 == 1 {
				out = append(out, Span{Content: part, Kind: kind})
				continue
			}
			if part != "" {
				out = append(out, PlainSpan(part))
			}
		}
	}
	return out, nil
}

// SplitImages extracts ![alt](url) syntax from plain spans into image spans.
func SplitImages(spans []Span) []Span {
	return splitMatches(spans, findImages, ImageSpan)
}

// SplitLinks extracts [text](url) syntax from plain spans into link spans.
func SplitLinks(spans []Span) []Span {
	return splitMatches(spans, findLinks, LinkSpan)
}

func splitMatches(spans []Span, find func(string) []matchLoc, build func(text, url string) Span) []Span {
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != SpanPlain {
			out = append(out, span)
			continue
		}
		locs := find(span.Content)
		if len(locs) == 0 {
			out = append(out, span)
			continue
		}
		text := span.Content
		last := 0
		for _, loc := range locs {
			if loc.start > last {
				out = append(out, PlainSpan(text[last:loc.start]))
			}
			out = append(out, build(loc.Text, loc.URL))
			last = loc.end
		}
		if last < len(text) {
			out = append(out, PlainSpan(text[last:]))
		}
	}
	return out
}

type delimiterPass struct {
	delim string
	kind  SpanKind
}

// Pass order matters for ambiguous input such as "`**x**`".
var delimiterPasses = [...]delimiterPass{
	{delim: "`", kind: SpanCode},
	{delim: "**", kind: SpanBold},
	{delim: "_", kind: SpanItalic},
}

// Tokenize splits inline markdown into spans. Code, bold and italic
// delimiters are split first, then images, then links.
func Tokenize(text string) ([]Span, error) {
	spans := []Span{PlainSpan(text)}
	for _, pass := range delimiterPasses {
		var err error
		spans, err = SplitDelimiter(spans, pass.delim, pass.kind)
		if err != nil {
			return nil, err
		}
	}
	spans = SplitImages(spans)
	spans = SplitLinks(spans)
	return spans, nil
}

// InlineNodes tokenizes text and converts the spans to document tree nodes.
func InlineNodes(text string) ([]Node, error) {
	spans, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	return SpanNodes(spans), nil
}
