package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"
	"pkt.systems/mdhtml"
)

const (
	excerptIndent   = 4
	maxExcerptLines = 6
)

// reportError prints err and, for conversion failures, the offending text
// wrapped to the terminal width.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "mdhtml: %v\n", summary(err))
	var blockErr *mdhtml.BlockError
	if errors.As(err, &blockErr) {
		fmt.Fprintf(w, "  in %s block %d:\n", blockErr.Type, blockErr.Index+1)
	}
	var delimErr *mdhtml.DelimiterError
	if errors.As(err, &delimErr) {
		fmt.Fprintln(w, excerpt(delimErr.Text, terminalWidth(defaultWidth)))
		return
	}
	if blockErr != nil {
		fmt.Fprintln(w, excerpt(blockErr.Block, terminalWidth(defaultWidth)))
	}
}

func summary(err error) string {
	var delimErr *mdhtml.DelimiterError
	if errors.As(err, &delimErr) {
		return fmt.Sprintf("unmatched delimiter %q", delimErr.Delimiter)
	}
	return err.Error()
}

// excerpt wraps text to width, indents it and keeps at most
// maxExcerptLines lines, each truncated with an ellipsis.
func excerpt(text string, width int) string {
	limit := width - excerptIndent
	if limit < 10 {
		limit = 10
	}
	wrapped := wordwrap.String(text, limit)
	lines := strings.Split(wrapped, "\n")
	if len(lines) > maxExcerptLines {
		lines = append(lines[:maxExcerptLines], "…")
	}
	for i, line := range lines {
		lines[i] = truncate.StringWithTail(line, uint(limit), "…")
	}
	return indent.String(strings.Join(lines, "\n"), excerptIndent)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stderr.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}
