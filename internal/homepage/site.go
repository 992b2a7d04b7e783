// Package homepage assembles the OpenVINO GenAI landing page from its
// components, templates, CSS modules and static assets.
package homepage

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"github.com/openvinotoolkit/genai-site/internal/cssmodule"
	"github.com/openvinotoolkit/genai-site/internal/render"
)

//go:embed templates styles static
var content embed.FS

// ErrUnknownIcon is returned when a template asks for an icon the Site
// didn't load.
var ErrUnknownIcon = errors.New("unknown icon")

var (
	_ render.Site             = &Site{}
	_ render.ServerErrorPager = &Site{}
	_ render.FuncMapExtender  = &Site{}
)

// Options configures a Site.
type Options struct {
	// Title is the site name used in the <title> element and navbar.
	Title string

	// BaseURL is the path the site is served under. It defaults to "/".
	BaseURL string
}

// Site is the render.Site for the GenAI website. It is safe for
// concurrent use once built.
type Site struct {
	*render.CachedSite

	Title   string
	BaseURL string

	// Styles holds the compiled CSS modules the components use.
	Styles *cssmodule.Registry

	static fs.FS
	icons  map[string]template.HTML
}

// NewSite loads the embedded templates, stylesheets and static assets.
func NewSite(ctx context.Context, opts Options) (*Site, error) {
	templates, err := fs.Sub(content, "templates")
	if err != nil {
		return nil, fmt.Errorf("error opening templates: %w", err)
	}
	styles, err := fs.Sub(content, "styles")
	if err != nil {
		return nil, fmt.Errorf("error opening styles: %w", err)
	}
	static, err := fs.Sub(content, "static")
	if err != nil {
		return nil, fmt.Errorf("error opening static assets: %w", err)
	}
	registry, err := cssmodule.Load(styles)
	if err != nil {
		return nil, fmt.Errorf("error compiling CSS modules: %w", err)
	}
	icons, err := loadIcons(ctx, static)
	if err != nil {
		return nil, err
	}

	title := opts.Title
	if title == "" {
		title = "OpenVINO GenAI"
	}
	return &Site{
		CachedSite: render.NewCachedSite(templates),
		Title:      title,
		BaseURL:    normalizeBaseURL(opts.BaseURL),
		Styles:     registry,
		static:     static,
		icons:      icons,
	}, nil
}

func normalizeBaseURL(base string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return "/"
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}

// StaticFS returns the static assets served under static/.
func (s *Site) StaticFS() fs.FS {
	return s.static
}

// URL returns the site URL of p, relative to BaseURL.
func (s *Site) URL(p string) string {
	return s.BaseURL + strings.TrimPrefix(p, "/")
}

// Asset returns the URL of the static asset at p.
func (s *Site) Asset(p string) string {
	return s.URL("static/" + strings.TrimPrefix(p, "/"))
}

// ModuleURL returns the URL the compiled CSS module called name is served
// from.
func (s *Site) ModuleURL(name string) (string, error) {
	mod, err := s.Styles.Module(name)
	if err != nil {
		return "", err
	}
	return s.URL(ModulePath(mod)), nil
}

// ModulePath returns the path, relative to the site root, of the compiled
// stylesheet of mod.
func ModulePath(mod *cssmodule.Module) string {
	return "assets/css/" + mod.FileName()
}

// Icon returns the inline SVG markup of the icon called name.
func (s *Site) Icon(name string) (template.HTML, error) {
	icon, ok := s.icons[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownIcon, name)
	}
	return icon, nil
}

// FuncMap returns the functions every template on the site can use.
func (s *Site) FuncMap(_ context.Context) template.FuncMap {
	return template.FuncMap{
		"css":     s.Styles.Class,
		"classes": cssmodule.Join,
		"heading": NewHeading,
		"icon":    s.Icon,
		"asset":   s.Asset,
		"url":     s.URL,
	}
}

// ServerErrorPage returns the page rendered when another page fails.
func (s *Site) ServerErrorPage(_ context.Context) render.Page {
	return NewErrorPage(s)
}

// moduleStylesheet links the compiled CSS module called name, after the
// global stylesheet so module rules win.
func (s *Site) moduleStylesheet(name string) (render.CSSLink, error) {
	href, err := s.ModuleURL(name)
	if err != nil {
		return render.CSSLink{}, err
	}
	global := s.globalStylesheet().Href
	return render.CSSLink{
		Href: href,
		Rel:  "stylesheet",
		Type: "text/css",
		CSSLinkRelationCalculator: func(_ context.Context, other render.CSSLink) render.ResourceRelationship {
			if other.Href == global {
				return render.ResourceRelationshipAfter
			}
			return render.ResourceRelationshipNeutral
		},
	}, nil
}

func (s *Site) globalStylesheet() render.CSSLink {
	return render.CSSLink{
		Href: s.Asset("css/site.css"),
		Rel:  "stylesheet",
		Type: "text/css",
	}
}
