// Package mdhtml converts a small Markdown subset to HTML.
//
// Conversion runs in two steps. Convert splits a document into blocks on
// blank lines, classifies every block (heading, fenced code, quote,
// unordered list, ordered list or paragraph), tokenizes the inline markup of
// each block into spans and builds a tree of Node values rooted at a div.
// Render then serializes the tree to an HTML string.
//
// Supported inline markup is **bold**, _italic_, `code`, ![alt](url) images
// and [text](url) links. There is no escaping and no nesting of blocks; an
// unpaired inline delimiter fails the conversion with ErrUnmatchedDelimiter.
//
// Example:
//
//	node, err := mdhtml.Convert("# Hello\n\nMarkdown in, **HTML** out.")
//	if err != nil {
//		log.Fatal(err)
//	}
//	html, err := mdhtml.Render(node)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(html)
//
// ConvertStream and HTTPConvert read a document from an io.Reader or an
// HTTP(S) URL. Behavior is customized with Option values such as
// WithFrontMatter and WithParallelBlocks.
package mdhtml
