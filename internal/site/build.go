package site

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"pkt.systems/mdhtml"
)

// Stats summarizes a build.
type Stats struct {
	Pages       int
	StaticFiles int
	PageBytes   int64
	StaticBytes int64
}

func (s Stats) String() string {
	return fmt.Sprintf("%s pages (%s), %s static files (%s)",
		humanize.Comma(int64(s.Pages)), humanize.Bytes(uint64(s.PageBytes)),
		humanize.Comma(int64(s.StaticFiles)), humanize.Bytes(uint64(s.StaticBytes)))
}

// GeneratePages converts every .md file below contentDir to an .html file
// at the same relative path below destDir. Pages are generated on up to
// workers goroutines; the first failure cancels the remaining pages.
func GeneratePages(ctx context.Context, contentDir, templatePath, destDir, basePath string, workers int, opts ...mdhtml.Option) (int, int64, error) {
	tmpl, err := os.ReadFile(templatePath)
	if err != nil {
		return 0, 0, fmt.Errorf("generate pages: read template: %w", err)
	}
	if !strings.Contains(string(tmpl), contentPlaceholder) {
		zerolog.Ctx(ctx).Warn().Str("template", templatePath).Msg("template has no content placeholder")
	}
	type job struct{ from, dest string }
	var jobs []job
	err = filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}
		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(destDir, strings.TrimSuffix(rel, filepath.Ext(rel))+".html")
		jobs = append(jobs, job{from: path, dest: dest})
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("generate pages: %w", err)
	}

	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	var pages atomic.Int64
	var written atomic.Int64
	for _, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			n, err := generatePage(gctx, j.from, string(tmpl), j.dest, basePath, opts)
			if err != nil {
				return err
			}
			pages.Add(1)
			written.Add(int64(n))
			return nil
		})
	}
	err = g.Wait()
	return int(pages.Load()), written.Load(), err
}

// Build copies static files and generates every page described by cfg.
func Build(ctx context.Context, cfg Config) (Stats, error) {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Stats{}, err
	}
	log := zerolog.Ctx(ctx)
	var stats Stats
	if cfg.StaticDir != "" {
		files, n, err := CopyStatic(ctx, cfg.StaticDir, cfg.DestDir)
		stats.StaticFiles, stats.StaticBytes = files, n
		if err != nil {
			return stats, err
		}
		log.Info().Str("from", cfg.StaticDir).Str("to", cfg.DestDir).Msg("static files copied")
	}
	opts := []mdhtml.Option{mdhtml.WithFrontMatter(cfg.FrontMatter), mdhtml.WithLogger(*log)}
	pages, n, err := GeneratePages(ctx, cfg.ContentDir, cfg.TemplatePath, cfg.DestDir, cfg.BasePath, cfg.Workers, opts...)
	stats.Pages, stats.PageBytes = pages, n
	if err != nil {
		return stats, err
	}
	log.Info().Stringer("stats", stats).Msg("site built")
	return stats, nil
}
