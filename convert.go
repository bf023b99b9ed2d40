package mdhtml

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"
)

// ErrNoTitleFound reports a document without a top-level heading.
var ErrNoTitleFound = errors.New("no h1 header found in markdown")

// BlockError reports the block a conversion failed on.
type BlockError struct {
	Index int
	Type  BlockType
	Block string
	Err   error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("block %d (%s): %v", e.Index, e.Type, e.Err)
}

func (e *BlockError) Unwrap() error { return e.Err }

// Convert parses markdown into a document tree rooted at a div element.
// Conversion is all-or-nothing: on error no tree is returned. Input is only
// validated when WithValidation(true) is given.
func Convert(markdown string, opts ...Option) (Node, error) {
	cfg := newConfig(opts)
	return convert(markdown, cfg)
}

// Prepare applies the input steps Convert runs before splitting blocks:
// validation, NFC normalization and front matter stripping, each only when
// its option is enabled. Run ExtractTitle on the result to get the title of
// the document Convert sees.
func Prepare(markdown string, opts ...Option) (string, error) {
	return prepare(markdown, newConfig(opts))
}

func prepare(markdown string, cfg config) (string, error) {
	if cfg.validate {
		if err := ValidateInput([]byte(markdown)); err != nil {
			return "", err
		}
	}
	if cfg.nfc {
		markdown = norm.NFC.String(markdown)
	}
	if cfg.frontMatter {
		markdown = stripFrontMatter(markdown)
	}
	return markdown, nil
}

func convert(markdown string, cfg config) (Node, error) {
	markdown, err := prepare(markdown, cfg)
	if err != nil {
		return Node{}, err
	}
	blocks := SplitBlocks(markdown)
	children := make([]Node, len(blocks))
	convertOne := func(i int) error {
		block := blocks[i]
		typ := Classify(block)
		cfg.logger.Debug().Int("block", i).Stringer("type", typ).Int("bytes", len(block)).Msg("classified block")
		node, err := blockNode(block, typ)
		if err != nil {
			return &BlockError{Index: i, Type: typ, Block: block, Err: err}
		}
		children[i] = node
		return nil
	}
	if cfg.workers > 1 && len(blocks) > 1 {
		var g errgroup.Group
		g.SetLimit(cfg.workers)
		for i := range blocks {
			g.Go(func() error { return convertOne(i) })
		}
		if err := g.Wait(); err != nil {
			return Node{}, err
		}
	} else {
		for i := range blocks {
			if err := convertOne(i); err != nil {
				return Node{}, err
			}
		}
	}
	return Parent("div", children)
}

// BlockNode converts a single trimmed block to a document tree node.
func BlockNode(block string) (Node, error) {
	return blockNode(block, Classify(block))
}

func blockNode(block string, typ BlockType) (Node, error) {
	switch typ.Kind {
	case BlockHeading:
		return headingNode(block, typ.Level)
	case BlockCode:
		return codeNode(block)
	case BlockQuote:
		return quoteNode(block)
	case BlockUnorderedList:
		return listNode(block, "ul", unorderedItem)
	case BlockOrderedList:
		return listNode(block, "ol", orderedItem)
	default:
		return paragraphNode(block)
	}
}

func inlineParent(tag, text string) (Node, error) {
	children, err := InlineNodes(text)
	if err != nil {
		return Node{}, err
	}
	return Parent(tag, children)
}

func paragraphNode(block string) (Node, error) {
	return inlineParent("p", strings.Join(strings.Fields(block), " "))
}

func headingNode(block string, level int) (Node, error) {
	return inlineParent("h"+strconv.Itoa(level), block[level+1:])
}

// codeNode keeps the fenced text verbatim, without inline markup.
func codeNode(block string) (Node, error) {
	code := ""
	if len(block) >= 2*len(codeFence) {
		code = block[len(codeFence) : len(block)-len(codeFence)]
	}
	code = strings.TrimPrefix(code, "\n")
	inner, err := Parent("code", []Node{Text(code)})
	if err != nil {
		return Node{}, err
	}
	return Parent("pre", []Node{inner})
}

func quoteNode(block string) (Node, error) {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if rest, ok := strings.CutPrefix(line, "> "); ok {
			lines[i] = rest
			continue
		}
		lines[i] = strings.TrimPrefix(line, ">")
	}
	return inlineParent("blockquote", strings.Join(lines, "\n"))
}

func unorderedItem(line string) string {
	return strings.TrimPrefix(line, "- ")
}

func orderedItem(line string) string {
	dot := strings.IndexByte(line, '.')
	if dot < 0 || dot+2 > len(line) {
		return line
	}
	return line[dot+2:]
}

func listNode(block, tag string, item func(string) string) (Node, error) {
	lines := strings.Split(block, "\n")
	items := make([]Node, 0, len(lines))
	for _, line := range lines {
		li, err := inlineParent("li", item(line))
		if err != nil {
			return Node{}, err
		}
		items = append(items, li)
	}
	return Parent(tag, items)
}

// ExtractTitle returns the text of the first "# " heading line in markdown.
func ExtractTitle(markdown string) (string, error) {
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") && !strings.HasPrefix(line, "## ") {
			return strings.TrimSpace(line[2:]), nil
		}
	}
	return "", ErrNoTitleFound
}

// ConvertString converts markdown and renders the document tree to HTML.
func ConvertString(markdown string, opts ...Option) (string, error) {
	node, err := Convert(markdown, opts...)
	if err != nil {
		return "", err
	}
	return node.Render()
}
