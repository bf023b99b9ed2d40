package site

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// CopyStatic replaces dst with a recursive copy of src. It returns the number
// of files and bytes copied.
func CopyStatic(ctx context.Context, src, dst string) (int, int64, error) {
	log := zerolog.Ctx(ctx)
	info, err := os.Stat(src)
	if err != nil {
		return 0, 0, fmt.Errorf("copy static: %w", err)
	}
	if !info.IsDir() {
		return 0, 0, fmt.Errorf("copy static: %s is not a directory", src)
	}
	if err := os.RemoveAll(dst); err != nil {
		return 0, 0, fmt.Errorf("copy static: clean %s: %w", dst, err)
	}
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return 0, 0, fmt.Errorf("copy static: %w", err)
	}
	var files int
	var total int64
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !d.Type().IsRegular() {
			log.Debug().Str("path", path).Msg("skipping non-regular file")
			return nil
		}
		n, err := copyFile(path, target)
		if err != nil {
			return err
		}
		files++
		total += n
		log.Info().Str("file", target).Int64("bytes", n).Msg("copied file")
		return nil
	})
	if err != nil {
		return files, total, fmt.Errorf("copy static: %w", err)
	}
	return files, total, nil
}

func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()
	info, err := in.Stat()
	if err != nil {
		return 0, err
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(out, in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return n, err
	}
	return n, os.Chtimes(dst, info.ModTime(), info.ModTime())
}
