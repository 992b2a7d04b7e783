package build_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/openvinotoolkit/genai-site/internal/build"
	"github.com/openvinotoolkit/genai-site/internal/homepage"
)

func newSite(t *testing.T, opts homepage.Options) *homepage.Site {
	t.Helper()
	site, err := homepage.NewSite(context.Background(), opts)
	if err != nil {
		t.Fatalf("error creating site: %v", err)
	}
	return site
}

// linkedFiles returns the href and src of every link, image and script
// that points into the site.
func linkedFiles(t *testing.T, doc []byte, base string) []string {
	t.Helper()
	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		t.Fatalf("error parsing index.html: %v", err)
	}
	var results []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.DataAtom == atom.Link || n.DataAtom == atom.Img || n.DataAtom == atom.Script) {
			for _, a := range n.Attr {
				if (a.Key == "href" || a.Key == "src") && strings.HasPrefix(a.Val, base) {
					results = append(results, strings.TrimPrefix(a.Val, base))
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return results
}

func TestBuild(t *testing.T) {
	t.Parallel()

	site := newSite(t, homepage.Options{})
	dir := t.TempDir()
	if err := build.Build(context.Background(), site, dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("error reading index.html: %v", err)
	}
	if !bytes.Contains(index, []byte(homepage.Description)) {
		t.Errorf("expected index.html to be the homepage, got %s", index)
	}

	linked := linkedFiles(t, index, "/")
	if len(linked) < 2 {
		t.Fatalf("expected stylesheets and images to be linked, got %v", linked)
	}
	for _, path := range linked {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(path))); err != nil {
			t.Errorf("index.html links %q, which wasn't written: %v", path, err)
		}
	}

	for _, mod := range site.Styles.Modules() {
		contents, err := os.ReadFile(filepath.Join(dir, "assets", "css", mod.FileName()))
		if err != nil {
			t.Errorf("error reading module %q: %v", mod.Name(), err)
			continue
		}
		if string(contents) != mod.CSS() {
			t.Errorf("module %q: expected compiled CSS on disk", mod.Name())
		}
	}
}

func TestBuildOverwrites(t *testing.T) {
	t.Parallel()

	site := newSite(t, homepage.Options{})
	dir := t.TempDir()
	stale := filepath.Join(dir, "index.html")
	if err := os.WriteFile(stale, []byte("stale"), 0o600); err != nil {
		t.Fatalf("error writing stale file: %v", err)
	}
	for range 2 {
		if err := build.Build(context.Background(), site, dir); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	contents, err := os.ReadFile(stale)
	if err != nil {
		t.Fatalf("error reading index.html: %v", err)
	}
	if string(contents) == "stale" {
		t.Error("expected index.html to be replaced")
	}
}

func TestBuildNoOutDir(t *testing.T) {
	t.Parallel()

	err := build.Build(context.Background(), newSite(t, homepage.Options{}), "")
	if !errors.Is(err, build.ErrNoOutDir) {
		t.Errorf("expected %v, got %v", build.ErrNoOutDir, err)
	}
}
