package mdhtml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitBlocks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "paragraphs and list",
			text: "This is **bolded** paragraph\n\nThis is another paragraph with _italic_ text and `code` here\nThis is the same paragraph on a new line\n\n- This is a list\n- with items\n",
			want: []string{
				"This is **bolded** paragraph",
				"This is another paragraph with _italic_ text and `code` here\nThis is the same paragraph on a new line",
				"- This is a list\n- with items",
			},
		},
		{
			name: "extra blank lines",
			text: "\n\n  first  \n\n\n\nsecond\n\n\n",
			want: []string{"first", "second"},
		},
		{
			name: "odd newline run",
			text: "a\n\n\nb",
			want: []string{"a", "b"},
		},
		{
			name: "whitespace only",
			text: " \n\n\t\n\n  ",
			want: []string{},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, SplitBlocks(tc.text))
		})
	}
}

func TestSplitBlocksRoundTrip(t *testing.T) {
	docs := []string{
		"# Title\n\n\n\nBody text\n\n- a\n- b\n",
		"  lead\n\n> quote\n> more\n\n```\ncode\n```  ",
		"single",
	}
	for _, doc := range docs {
		blocks := SplitBlocks(doc)
		require.Equal(t, blocks, SplitBlocks(JoinBlocks(blocks)), "doc %q", doc)
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		block string
		want  BlockType
	}{
		{block: "# heading", want: BlockType{Kind: BlockHeading, Level: 1}},
		{block: "## heading", want: BlockType{Kind: BlockHeading, Level: 2}},
		{block: "###### heading", want: BlockType{Kind: BlockHeading, Level: 6}},
		{block: "####### heading", want: BlockType{Kind: BlockParagraph}},
		{block: "#heading", want: BlockType{Kind: BlockParagraph}},
		{block: "#", want: BlockType{Kind: BlockParagraph}},
		{block: "# heading\nsecond line", want: BlockType{Kind: BlockHeading, Level: 1}},
		{block: "```\ncode\n```", want: BlockType{Kind: BlockCode}},
		{block: "```code```", want: BlockType{Kind: BlockCode}},
		{block: "```", want: BlockType{Kind: BlockCode}},
		{block: "```\ncode", want: BlockType{Kind: BlockParagraph}},
		{block: "> quote\n> more", want: BlockType{Kind: BlockQuote}},
		{block: ">no space\n> space", want: BlockType{Kind: BlockQuote}},
		{block: "> quote\nnot quote", want: BlockType{Kind: BlockParagraph}},
		{block: "- a\n- b", want: BlockType{Kind: BlockUnorderedList}},
		{block: "- a\n-b", want: BlockType{Kind: BlockParagraph}},
		{block: "* a\n* b", want: BlockType{Kind: BlockParagraph}},
		{block: "1. a\n2. b", want: BlockType{Kind: BlockOrderedList}},
		{block: "1. a\n2. b\n3. c\n4. d\n5. e\n6. f\n7. g\n8. h\n9. i\n10. j", want: BlockType{Kind: BlockOrderedList}},
		{block: "1. a\n3. b", want: BlockType{Kind: BlockParagraph}},
		{block: "2. a\n3. b", want: BlockType{Kind: BlockParagraph}},
		{block: "1.a", want: BlockType{Kind: BlockParagraph}},
		{block: "1) a", want: BlockType{Kind: BlockParagraph}},
		{block: "1.", want: BlockType{Kind: BlockParagraph}},
		{block: "just text", want: BlockType{Kind: BlockParagraph}},
	}
	for _, tc := range tests {
		t.Run(tc.block, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Classify(tc.block))
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	// A heading line wins over a code fence at the end of the block.
	require.Equal(t, BlockHeading, Classify("# x ```").Kind)
	// A fenced block whose lines all start with "- " is still code.
	require.Equal(t, BlockCode, Classify("```- a\n- b```").Kind)
}

func TestBlockTypeString(t *testing.T) {
	require.Equal(t, "heading3", BlockType{Kind: BlockHeading, Level: 3}.String())
	require.Equal(t, "ordered_list", BlockType{Kind: BlockOrderedList}.String())
	require.Equal(t, "unknown", BlockKind(200).String())
}
