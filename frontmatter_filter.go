package mdhtml

import "strings"

var frontMatterDelimiters = [...]string{"---", "+++", ";;;"}

// stripFrontMatter removes a leading YAML (---), TOML (+++) or JSON (;;;)
// front matter block. The block is only recognized when the line after the
// opening delimiter looks like metadata and a closing delimiter follows.
func stripFrontMatter(src string) string {
	openLine, next, ok := nextLine(src, 0)
	if !ok {
		return src
	}
	delim, ok := openingFrontMatterDelimiter(openLine)
	if !ok {
		return src
	}
	secondLine, _, ok := nextLine(src, next)
	if !ok || !frontMatterMetadataLikely(secondLine) {
		return src
	}
	end, found := closingFrontMatterDelimiter(src, next, delim)
	if !found {
		return src
	}
	return src[end:]
}

func nextLine(src string, start int) (string, int, bool) {
	if start >= len(src) {
		return "", start, false
	}
	i := strings.IndexByte(src[start:], '\n')
	if i < 0 {
		return strings.TrimSuffix(src[start:], "\r"), len(src), true
	}
	lineEnd := start + i
	return strings.TrimSuffix(src[start:lineEnd], "\r"), lineEnd + 1, true
}

func openingFrontMatterDelimiter(line string) (string, bool) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
	for _, delim := range frontMatterDelimiters {
		if trimmed == delim {
			return delim, true
		}
	}
	return "", false
}

func frontMatterMetadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.ContainsAny(trimmed, ":=")
}

func closingFrontMatterDelimiter(src string, start int, delim string) (int, bool) {
	for idx := start; idx < len(src); {
		line, next, ok := nextLine(src, idx)
		if !ok {
			return 0, false
		}
		if strings.TrimSpace(line) == delim {
			return next, true
		}
		idx = next
	}
	return 0, false
}
