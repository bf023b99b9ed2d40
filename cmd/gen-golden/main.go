package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/mdhtml"
)

func main() {
	root := "testdata/golden"
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && strings.HasSuffix(path, ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no markdown files found under %s", root)
	}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		var out bytes.Buffer
		err = mdhtml.ConvertStream(mdhtml.ConvertRequest{
			Reader:  bytes.NewReader(src),
			Writer:  &out,
			Options: []mdhtml.Option{mdhtml.WithFrontMatter(true)},
		})
		if err != nil {
			fatalf("convert %s: %v", path, err)
		}
		goldenPath := goldenPath(path)
		if err := os.WriteFile(goldenPath, out.Bytes(), 0o644); err != nil {
			fatalf("write %s: %v", goldenPath, err)
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", goldenPath)
	}
}

func goldenPath(mdPath string) string {
	return strings.TrimSuffix(mdPath, ".md") + ".html"
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
