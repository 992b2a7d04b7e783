package render

import (
	"context"
	"html/template"
	"io/fs"
	"sync"
)

// Site is the singleton used to render Pages. It holds whatever
// configuration and clients the templates need, and exposes the templates
// every Page relies on as an fs.FS.
type Site interface {
	// TemplateDir returns an fs.FS containing all the templates needed to
	// render every Page on the Site. Template paths returned by
	// Components are resolved against it.
	TemplateDir(ctx context.Context) fs.FS
}

// TemplateCacher is an optional interface for Sites. Sites implementing it
// have their parsed templates cached under each Page's Key, so the
// templates for a Key must not change between renders. The data passed to
// them still does, so the output is not cacheable.
type TemplateCacher interface {
	// GetCachedTemplate returns the template stored under key, or nil.
	GetCachedTemplate(ctx context.Context, key string) *template.Template

	// SetCachedTemplate stores tmpl under key. It is best effort; errors
	// are logged, not returned.
	SetCachedTemplate(ctx context.Context, key string, tmpl *template.Template)
}

// ResourceCacher is an optional interface for Sites. Sites implementing it
// have the sources of their inline CSS and JavaScript templates cached by
// template path.
type ResourceCacher interface {
	// GetCachedResource returns the source stored under key, or nil.
	GetCachedResource(ctx context.Context, key string) *string

	// SetCachedResource stores resource under key. It is best effort;
	// errors are logged, not returned.
	SetCachedResource(ctx context.Context, key, resource string)
}

// ServerErrorPager is an optional interface for Sites. When Render fails
// and the Site implements ServerErrorPager, the Page it returns is
// rendered in place of the one that failed.
type ServerErrorPager interface {
	ServerErrorPage(ctx context.Context) Page
}

var (
	_ Site           = &CachedSite{}
	_ TemplateCacher = &CachedSite{}
	_ ResourceCacher = &CachedSite{}
)

// CachedSite is a Site that keeps parsed templates and inline resource
// sources in memory. It is meant to be embedded in the Site type of an
// application. Use NewCachedSite; the zero value is not usable.
type CachedSite struct {
	templates *syncCache[*template.Template]
	resources *syncCache[string]

	templateDir fs.FS
}

// NewCachedSite returns a CachedSite serving templates from the passed
// fs.FS.
func NewCachedSite(templates fs.FS) *CachedSite {
	return &CachedSite{
		templates:   newSyncCache[*template.Template](),
		resources:   newSyncCache[string](),
		templateDir: templates,
	}
}

// GetCachedTemplate returns the template cached under key, or nil. It is
// safe for concurrent use.
func (s *CachedSite) GetCachedTemplate(_ context.Context, key string) *template.Template {
	tmpl, ok := s.templates.get(key)
	if !ok {
		return nil
	}
	return tmpl
}

// SetCachedTemplate caches tmpl under key. It is safe for concurrent use.
func (s *CachedSite) SetCachedTemplate(_ context.Context, key string, tmpl *template.Template) {
	s.templates.set(key, tmpl)
}

// GetCachedResource returns the resource source cached under key, or nil.
// It is safe for concurrent use.
func (s *CachedSite) GetCachedResource(_ context.Context, key string) *string {
	res, ok := s.resources.get(key)
	if !ok {
		return nil
	}
	return &res
}

// SetCachedResource caches resource under key. It is safe for concurrent
// use.
func (s *CachedSite) SetCachedResource(_ context.Context, key, resource string) {
	s.resources.set(key, resource)
}

// TemplateDir returns the fs.FS passed to NewCachedSite.
func (s *CachedSite) TemplateDir(_ context.Context) fs.FS {
	return s.templateDir
}

type syncCache[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
}

func newSyncCache[V any]() *syncCache[V] {
	return &syncCache[V]{entries: map[string]V{}}
}

func (c *syncCache[V]) get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	val, ok := c.entries[key]
	return val, ok
}

func (c *syncCache[V]) set(key string, val V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = val
}
