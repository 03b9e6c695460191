// Package export writes the portfolio as a static site that needs no server.
package export

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/brettarda/brett-dev/internal/content"
	"github.com/brettarda/brett-dev/internal/theme"
	"github.com/brettarda/brett-dev/internal/view"
)

type Options struct {
	OutDir   string
	Site     *content.Site
	Theme    theme.Preference
	ThemeKey string
	Year     int
	// ResumePath is copied next to index.html when it exists.
	ResumePath string
}

// Write renders index.html into OutDir and copies the static assets beside
// it. The theme is resolved against a light color scheme, the same answer a
// browser without the client hint gets.
func Write(opts Options) error {
	if opts.OutDir == "" {
		return fmt.Errorf("export: output directory is required")
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	root := &theme.Element{}
	store, err := theme.NewStore(theme.Options{
		Key:     opts.ThemeKey,
		Default: opts.Theme,
		Storage: theme.NewMemoryStorage(),
		Scheme:  theme.NewSignal(theme.ModeLight),
		Root:    root,
		Logger:  zerolog.Nop(),
	})
	if err != nil {
		return fmt.Errorf("export theme: %w", err)
	}
	defer store.Close()

	var buf bytes.Buffer
	if err := view.Render(&buf, view.PageData{
		Site:       opts.Site,
		Root:       root,
		Resolved:   store.Resolved(),
		Preference: store.Preference(),
		Year:       opts.Year,
		ThemeKey:   opts.ThemeKey,
		Static:     true,
	}); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	if err := os.WriteFile(filepath.Join(opts.OutDir, "index.html"), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}

	if err := copyFS(view.Assets(), filepath.Join(opts.OutDir, "static")); err != nil {
		return err
	}
	return copyResume(opts)
}

func copyFS(src fs.FS, dst string) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", path, err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("write asset %s: %w", target, err)
		}
		return nil
	})
}

// copyResume places the résumé at the path the page links to. A missing
// source file is not an error; the link will 404 as it does when served.
func copyResume(opts Options) error {
	if opts.ResumePath == "" || opts.Site == nil || opts.Site.Resume.Href == "" {
		return nil
	}
	data, err := os.ReadFile(opts.ResumePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read résumé: %w", err)
	}
	target := filepath.Join(opts.OutDir, filepath.FromSlash(opts.Site.Resume.Href))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create résumé dir: %w", err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("write résumé: %w", err)
	}
	return nil
}
