// Package build exports the GenAI site as static files.
package build

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/openvinotoolkit/genai-site/internal/homepage"
	"github.com/openvinotoolkit/genai-site/internal/render"
)

// ErrNoOutDir is returned when Build isn't given a directory.
var ErrNoOutDir = errors.New("output directory is required")

// Build writes the homepage to outDir/index.html, the compiled CSS modules
// under outDir/assets/css and the static assets under outDir/static, so
// the site can be hosted by any file server. Existing files are
// overwritten. Nothing is written if the homepage fails to render.
func Build(ctx context.Context, site *homepage.Site, outDir string) error {
	if outDir == "" {
		return ErrNoOutDir
	}
	logger := render.Logger(ctx)

	page, err := homepage.NewHomePage(site)
	if err != nil {
		return fmt.Errorf("error building homepage: %w", err)
	}
	var index bytes.Buffer
	if err := render.Render(ctx, &index, site, page); err != nil {
		return fmt.Errorf("error rendering homepage: %w", err)
	}

	if err := writeFile(filepath.Join(outDir, "index.html"), index.Bytes()); err != nil {
		return err
	}
	for _, mod := range site.Styles.Modules() {
		if err := writeFile(filepath.Join(outDir, filepath.FromSlash(homepage.ModulePath(mod))), []byte(mod.CSS())); err != nil {
			return err
		}
	}
	static := site.StaticFS()
	err = fs.WalkDir(static, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return err
		}
		contents, err := fs.ReadFile(static, path)
		if err != nil {
			return fmt.Errorf("error reading static asset %q: %w", path, err)
		}
		return writeFile(filepath.Join(outDir, "static", filepath.FromSlash(path)), contents)
	})
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "built site", "dir", outDir, "modules", len(site.Styles.Modules()))
	return nil
}

func writeFile(path string, contents []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating %q: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil { // #nosec G306 -- public site files
		return fmt.Errorf("error writing %q: %w", path, err)
	}
	return nil
}
