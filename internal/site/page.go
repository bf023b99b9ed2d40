package site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"pkt.systems/mdhtml"
)

const (
	titlePlaceholder   = "{{ Title }}"
	contentPlaceholder = "{{ Content }}"
)

// Page is a generated HTML page.
type Page struct {
	Title   string
	Content string
}

// RenderPage converts markdown and returns its title and HTML body. The
// title is taken after opts have stripped front matter and normalized the
// text, so it matches the rendered h1.
func RenderPage(markdown string, opts ...mdhtml.Option) (Page, error) {
	node, err := mdhtml.Convert(markdown, opts...)
	if err != nil {
		return Page{}, err
	}
	content, err := node.Render()
	if err != nil {
		return Page{}, err
	}
	prepared, err := mdhtml.Prepare(markdown, opts...)
	if err != nil {
		return Page{}, err
	}
	title, err := mdhtml.ExtractTitle(prepared)
	if err != nil {
		return Page{}, err
	}
	return Page{Title: title, Content: content}, nil
}

// Fill substitutes the page into tmpl and points root-relative href and
// src attributes at basePath.
func Fill(tmpl string, page Page, basePath string) string {
	out := strings.ReplaceAll(tmpl, titlePlaceholder, page.Title)
	out = strings.ReplaceAll(out, contentPlaceholder, page.Content)
	base := NormalizeBasePath(basePath)
	if base == DefaultBasePath {
		return out
	}
	out = strings.ReplaceAll(out, `href="/`, `href="`+base)
	out = strings.ReplaceAll(out, `src="/`, `src="`+base)
	return out
}

// GeneratePage converts the markdown file at from, fills the template at
// templatePath and writes the result to dest. It returns the bytes written.
func GeneratePage(ctx context.Context, from, templatePath, dest, basePath string, opts ...mdhtml.Option) (int, error) {
	tmpl, err := os.ReadFile(templatePath)
	if err != nil {
		return 0, fmt.Errorf("generate page: read template: %w", err)
	}
	return generatePage(ctx, from, string(tmpl), dest, basePath, opts)
}

func generatePage(ctx context.Context, from, tmpl, dest, basePath string, opts []mdhtml.Option) (int, error) {
	zerolog.Ctx(ctx).Info().Str("from", from).Str("dest", dest).Msg("generating page")
	src, err := os.ReadFile(from)
	if err != nil {
		return 0, fmt.Errorf("generate page %s: %w", from, err)
	}
	page, err := RenderPage(string(src), opts...)
	if err != nil {
		return 0, fmt.Errorf("generate page %s: %w", from, err)
	}
	out := Fill(tmpl, page, basePath)
	if dir := filepath.Dir(dest); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("generate page %s: %w", from, err)
		}
	}
	if err := os.WriteFile(dest, []byte(out), 0o644); err != nil {
		return 0, fmt.Errorf("generate page %s: %w", from, err)
	}
	return len(out), nil
}
