package mdhtml

import (
	"strconv"
	"strings"
)

const (
	blockSeparator = "\n\n"
	codeFence      = "```"
	maxHeading     = 6
)

// BlockKind identifies the structure of a block.
type BlockKind uint8

const (
	// BlockParagraph is the fallback for blocks matching no other kind.
	BlockParagraph BlockKind = iota
	// BlockHeading is a line starting with 1-6 '#' and a space.
	BlockHeading
	// BlockCode is a block fenced by three backticks.
	BlockCode
	// BlockQuote is a block where every line starts with '>'.
	BlockQuote
	// BlockUnorderedList is a block where every line starts with "- ".
	BlockUnorderedList
	// BlockOrderedList is a block numbered "1. ", "2. ", ... without gaps.
	BlockOrderedList
)

var blockKindNames = [...]string{
	BlockParagraph:     "paragraph",
	BlockHeading:       "heading",
	BlockCode:          "code",
	BlockQuote:         "quote",
	BlockUnorderedList: "unordered_list",
	BlockOrderedList:   "ordered_list",
}

func (k BlockKind) String() string {
	if int(k) < len(blockKindNames) {
		return blockKindNames[k]
	}
	return "unknown"
}

// BlockType is the classification of a block. Level is set for headings
// only.
type BlockType struct {
	Kind  BlockKind
	Level int
}

func (t BlockType) String() string {
	if t.Kind == BlockHeading {
		return "heading" + strconv.Itoa(t.Level)
	}
	return t.Kind.String()
}

// SplitBlocks splits a document on blank lines. Blocks are trimmed and
// blocks without content are dropped.
func SplitBlocks(text string) []string {
	parts := strings.Split(text, blockSeparator)
	blocks := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		blocks = append(blocks, part)
	}
	return blocks
}

// JoinBlocks joins blocks with a single blank line.
func JoinBlocks(blocks []string) string {
	return strings.Join(blocks, blockSeparator)
}

// Classify returns the type of a trimmed, non-empty block. The first
// matching rule wins: heading, code, quote, unordered list, ordered list,
// paragraph.
func Classify(block string) BlockType {
	lines := strings.Split(block, "\n")
	if level, ok := headingLevel(lines[0]); ok {
		return BlockType{Kind: BlockHeading, Level: level}
	}
	if strings.HasPrefix(block, codeFence) && strings.HasSuffix(block, codeFence) {
		return BlockType{Kind: BlockCode}
	}
	if allHavePrefix(lines, ">") {
		return BlockType{Kind: BlockQuote}
	}
	if allHavePrefix(lines, "- ") {
		return BlockType{Kind: BlockUnorderedList}
	}
	if isOrderedList(lines) {
		return BlockType{Kind: BlockOrderedList}
	}
	return BlockType{Kind: BlockParagraph}
}

func headingLevel(line string) (int, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > maxHeading {
		return 0, false
	}
	if level >= len(line) || line[level] != ' ' {
		return 0, false
	}
	return level, true
}

func allHavePrefix(lines []string, prefix string) bool {
	for _, line := range lines {
		if !strings.HasPrefix(line, prefix) {
			return false
		}
	}
	return true
}

func isOrderedList(lines []string) bool {
	for i, line := range lines {
		num, rest, ok := orderedMarker(line)
		if !ok || num != i+1 || !strings.HasPrefix(rest, ". ") {
			return false
		}
	}
	return true
}

// orderedMarker parses the leading decimal number of line.
func orderedMarker(line string) (int, string, bool) {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, "", false
	}
	num, err := strconv.Atoi(line[:i])
	if err != nil {
		return 0, "", false
	}
	return num, line[i:], true
}
