package mdhtml

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestGoldenFiles(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "golden", "*.md"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), ".md")
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(path)
			require.NoError(t, err)
			want, err := os.ReadFile(strings.TrimSuffix(path, ".md") + ".html")
			require.NoError(t, err, "run cmd/gen-golden to create missing goldens")

			var out bytes.Buffer
			err = ConvertStream(ConvertRequest{
				Reader:  bytes.NewReader(src),
				Writer:  &out,
				Options: []Option{WithFrontMatter(true)},
			})
			require.NoError(t, err)
			require.Equal(t, string(want), out.String())
		})
	}
}

func TestGoldenDocumentStructure(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("testdata", "golden", "basic.md"))
	require.NoError(t, err)
	html, err := ConvertString(string(src))
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	root := doc.Find("body > div")
	require.Equal(t, 1, root.Length())
	require.Equal(t, 8, root.Children().Length())
	require.Equal(t, "Tolkien Fan Club", root.Find("h1").Text())
	require.Equal(t, "Reasons I like Tolkien", root.Find("h2").Text())

	src1, ok := root.Find("img").Attr("src")
	require.True(t, ok)
	require.Equal(t, "/images/tolkien.png", src1)
	alt, _ := root.Find("img").Attr("alt")
	require.Equal(t, "JRR Tolkien sitting", alt)

	require.Equal(t, 3, root.Find("ul > li").Length())
	require.Equal(t, "too", root.Find("ul > li i").Text())
	href, _ := root.Find("ul a").Attr("href")
	require.Equal(t, "https://en.wikipedia.org/wiki/Tolkien", href)

	var items []string
	root.Find("ol > li").Each(func(_ int, s *goquery.Selection) {
		items = append(items, s.Text())
	})
	require.Equal(t, []string{"The Hobbit", "The Lord of the Rings", "The Silmarillion"}, items)

	require.Contains(t, root.Find("pre > code").Text(), `fmt.Println("hi")`)
	require.Equal(t, "I like Tolkien", root.Find("p b").Text())
}
