package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/mdhtml"
	"pkt.systems/version"
)

const defaultWidth = 80

func init() {
	version.SetDefaultModule("pkt.systems/mdhtml")
}

func main() {
	var (
		outPath     string
		titleOnly   bool
		dump        bool
		frontMatter bool
		nfc         bool
		workers     int
		noValidate  bool
		verbose     bool
		showVersion bool
	)

	flags := pflag.NewFlagSet("mdhtml", pflag.ExitOnError)
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&titleOnly, "title", false, "Print the document title instead of HTML")
	flags.BoolVar(&dump, "dump", false, "Print the document tree instead of HTML")
	flags.BoolVar(&frontMatter, "front-matter", false, "Strip a leading front matter block")
	flags.BoolVar(&nfc, "nfc", false, "Normalize input to Unicode NFC")
	flags.IntVarP(&workers, "workers", "j", 1, "Convert blocks on up to N goroutines")
	flags.BoolVar(&noValidate, "no-validate", false, "Accept binary-looking or invalid UTF-8 input")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log block classification to stderr")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: mdhtml [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nInputs are files, file:// or http(s):// URLs. If no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return
	}

	logger := newLogger(os.Stderr, verbose)

	reader, closer, err := openInputs(flags.Args())
	if err != nil {
		logger.Error().Err(err).Msg("open input")
		os.Exit(1)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	src, err := io.ReadAll(reader)
	if err != nil {
		logger.Error().Err(err).Msg("read input")
		os.Exit(1)
	}

	opts := []mdhtml.Option{
		mdhtml.WithValidation(!noValidate),
		mdhtml.WithFrontMatter(frontMatter),
		mdhtml.WithNFC(nfc),
		mdhtml.WithParallelBlocks(workers),
		mdhtml.WithLogger(logger),
	}

	var out bytes.Buffer
	switch {
	case titleOnly:
		title, err := extractTitle(string(src), opts)
		if err != nil {
			reportError(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Fprintln(&out, title)
	case dump:
		node, err := mdhtml.Convert(string(src), opts...)
		if err != nil {
			reportError(os.Stderr, err)
			os.Exit(1)
		}
		pp.Fprintln(&out, treeOf(node))
	default:
		err := mdhtml.ConvertStream(mdhtml.ConvertRequest{
			Reader:  bytes.NewReader(src),
			Writer:  &out,
			Options: opts,
		})
		if err != nil {
			reportError(os.Stderr, err)
			os.Exit(1)
		}
		out.WriteByte('\n')
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		logger.Error().Err(err).Msg("open output")
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}
	if _, err := out.WriteTo(writer); err != nil {
		logger.Error().Err(err).Msg("write output")
		os.Exit(1)
	}
}

func extractTitle(src string, opts []mdhtml.Option) (string, error) {
	prepared, err := mdhtml.Prepare(src, opts...)
	if err != nil {
		return "", err
	}
	return mdhtml.ExtractTitle(prepared)
}

func newLogger(w *os.File, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	var out io.Writer = w
	if term.IsTerminal(int(w.Fd())) {
		out = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// tree is an exported mirror of mdhtml.Node for --dump.
type tree struct {
	Tag        string
	Value      *string
	Attributes mdhtml.Attributes
	Children   []tree
}

func treeOf(n mdhtml.Node) tree {
	t := tree{Tag: n.Tag(), Attributes: n.Attributes()}
	if n.IsLeaf() {
		if v, ok := n.Value(); ok {
			t.Value = &v
		}
		return t
	}
	for _, child := range n.Children() {
		t.Children = append(t.Children, treeOf(child))
	}
	return t
}

type inputSource struct {
	name string
	open func() (io.Reader, io.Closer, error)
}

// multiInputReader concatenates inputs, separating them with a blank line so
// the last block of one input never merges with the first of the next.
type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	curName   string
	sep       []byte
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if len(m.sep) > 0 {
			n := copy(p, m.sep)
			m.sep = m.sep[n:]
			return n, nil
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, fmt.Errorf("input %s: %w", m.sources[m.idx].name, err)
			}
			m.cur = reader
			m.curCloser = closer
			m.curName = m.sources[m.idx].name
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			if m.idx < len(m.sources) {
				m.sep = []byte("\n\n")
			}
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("input %s: %w", m.curName, err)
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return os.Stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	m := &multiInputReader{sources: sources}
	return m, m, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, errors.New("empty input argument")
	}
	if raw == "-" {
		return inputSource{name: "stdin", open: func() (io.Reader, io.Closer, error) {
			return os.Stdin, nil, nil
		}}, nil
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{name: raw, open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{name: path, open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{name: raw, open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("status %s", resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	if dir := filepath.Dir(clean); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
