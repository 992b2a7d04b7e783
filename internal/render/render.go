package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrNoTemplatePath is returned when a Page and its Components
	// don't list any templates.
	ErrNoTemplatePath = errors.New("need at least one template path")

	// ErrTemplatePatternMatchesNoFiles is returned when a template path
	// is a pattern that doesn't match any files.
	ErrTemplatePatternMatchesNoFiles = errors.New("pattern matches no files")
)

// serverErrorMessage is written when a Page fails and the Site has no
// error page, or the error page fails too.
const serverErrorMessage = "Server error."

// Component is a piece of UI that can be rendered to HTML.
type Component interface {
	// Templates returns the paths, or fs.Glob patterns, of the
	// html/template files that must be parsed to render the Component.
	Templates(context.Context) []string
}

// ComponentUser is implemented by Components that rely on other
// Components. The Components it returns are walked recursively and
// everything they need is included when the parent renders. A Component
// that uses others without listing them here must include their templates,
// functions and resources itself.
type ComponentUser interface {
	// UseComponents returns the Components this Component relies on.
	UseComponents(context.Context) []Component
}

// FuncMapExtender is implemented by Sites and Components that add
// functions to their templates. Component functions win over Site
// functions with the same name.
type FuncMapExtender interface {
	FuncMap(context.Context) template.FuncMap
}

// Page is a Component that can be passed to Render.
type Page interface {
	Component

	// Key identifies the set of templates the Page parses, for caching.
	// Pages that parse different templates need different keys.
	Key(context.Context) string

	// ExecutedTemplate is the name of the template to execute. It is
	// usually the layout template the Page fills blocks in, not the
	// Page's own template.
	ExecutedTemplate(context.Context) string
}

// RenderData is the data templates are executed with.
type RenderData[SiteType Site, PageType Page] struct {
	// Site is the Site passed to Render.
	Site SiteType

	// Page is the Page being rendered.
	Page PageType

	// CSS holds the <link> and <style> elements for every stylesheet
	// the Page and its Components declared, in order.
	CSS template.HTML

	// HeaderJS holds the <script> elements that belong in the head.
	HeaderJS template.HTML

	// FooterJS holds the <script> elements that belong at the end of the
	// body.
	FooterJS template.HTML
}

// Render renders page to out. The output is buffered, so nothing reaches
// out unless a complete document was produced.
//
// If page can't be rendered, the error is logged and a server error page
// is written instead: the Site's, if it implements ServerErrorPager,
// otherwise a short plain text message. The error that stopped page from
// rendering is returned so callers can pick a status code.
//
// If out is an io.Closer, it is closed before Render returns.
func Render[SiteType Site, PageType Page](ctx context.Context, out io.Writer, site SiteType, page PageType) error {
	ctx, span := startSpan(ctx, "render.Render", trace.WithAttributes(
		attribute.String("render.page.key", page.Key(ctx)),
		attribute.String("render.page.type", fmt.Sprintf("%T", page)),
	))
	defer span.End()

	defer func() {
		closer, ok := out.(io.Closer)
		if !ok {
			return
		}
		if err := closer.Close(); err != nil {
			Logger(ctx).ErrorContext(ctx, "error closing output", "error", err)
		}
	}()

	start := time.Now()
	var buf bytes.Buffer
	err := basicRender(ctx, &buf, site, page)
	recordRender(ctx, page, time.Since(start), err)
	if err == nil {
		if _, err := buf.WriteTo(out); err != nil {
			span.RecordError(err)
			Logger(ctx).ErrorContext(ctx, "error writing page", "error", err)
			return fmt.Errorf("error writing %T: %w", page, err)
		}
		return nil
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, "page failed to render")
	Logger(ctx).ErrorContext(ctx, "error rendering page", "error", err, "page", fmt.Sprintf("%T", page))

	buf.Reset()
	if pager, ok := Site(site).(ServerErrorPager); ok {
		errPage := pager.ServerErrorPage(ctx)
		renderErr := basicRender(ctx, &buf, site, errPage)
		if renderErr == nil {
			writeFallback(ctx, out, buf.Bytes())
			return err
		}
		Logger(ctx).ErrorContext(ctx, "error rendering server error page", "error", renderErr, "page", fmt.Sprintf("%T", errPage))
	}
	writeFallback(ctx, out, []byte(serverErrorMessage))
	return err
}

func writeFallback(ctx context.Context, out io.Writer, contents []byte) {
	if _, err := out.Write(contents); err != nil {
		Logger(ctx).ErrorContext(ctx, "error writing server error page", "error", err)
	}
}

func basicRender[SiteType Site, PageType Page](ctx context.Context, out io.Writer, site SiteType, page PageType) error {
	components := collectComponents(ctx, page)
	funcs := collectFuncMap(ctx, site, components)

	tmpl, err := pageTemplate(ctx, site, page, components, funcs)
	if err != nil {
		return err
	}

	data := RenderData[SiteType, PageType]{
		Site: site,
		Page: page,
	}
	resources, err := renderResources(ctx, site, funcs, components, data)
	if err != nil {
		return fmt.Errorf("error rendering resources for %T: %w", page, err)
	}
	data.CSS = resources.css
	data.HeaderJS = resources.headerJS
	data.FooterJS = resources.footerJS

	executed := page.ExecutedTemplate(ctx)
	err = tmpl.ExecuteTemplate(out, executed, data)
	if err != nil {
		return fmt.Errorf("error executing template %q for %T: %w", executed, page, err)
	}
	return nil
}

func pageTemplate(ctx context.Context, site Site, page Page, components []Component, funcs template.FuncMap) (*template.Template, error) {
	key := page.Key(ctx)
	cache, cacheable := site.(TemplateCacher)
	if cacheable {
		if cached := cache.GetCachedTemplate(ctx, key); cached != nil {
			return cached, nil
		}
	}
	paths := collectTemplatePaths(ctx, components)
	if len(paths) < 1 {
		return nil, fmt.Errorf("error rendering %T: %w", page, ErrNoTemplatePath)
	}
	parsed, err := parseTemplates(site.TemplateDir(ctx), funcs, paths...)
	if err != nil {
		return nil, fmt.Errorf("error parsing templates %v for %T: %w", paths, page, err)
	}
	if cacheable {
		cache.SetCachedTemplate(ctx, key, parsed)
	}
	return parsed, nil
}

// collectComponents returns component followed by every Component it
// uses, depth first.
func collectComponents(ctx context.Context, component Component) []Component {
	results := []Component{component}
	if user, ok := component.(ComponentUser); ok {
		for _, child := range user.UseComponents(ctx) {
			results = append(results, collectComponents(ctx, child)...)
		}
	}
	return results
}

func collectTemplatePaths(ctx context.Context, components []Component) []string {
	var results []string
	seen := map[string]struct{}{}
	for _, comp := range components {
		for _, path := range comp.Templates(ctx) {
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}
			results = append(results, path)
		}
	}
	return results
}

func collectFuncMap(ctx context.Context, site Site, components []Component) template.FuncMap {
	results := template.FuncMap{}
	if extender, ok := site.(FuncMapExtender); ok {
		for name, fn := range extender.FuncMap(ctx) {
			results[name] = fn
		}
	}
	for _, comp := range components {
		extender, ok := comp.(FuncMapExtender)
		if !ok {
			continue
		}
		for name, fn := range extender.FuncMap(ctx) {
			results[name] = fn
		}
	}
	return results
}

func parseTemplates(fsys fs.FS, funcs template.FuncMap, patterns ...string) (*template.Template, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("error listing files for %q: %w", pattern, err)
		}
		if len(matches) < 1 {
			return nil, fmt.Errorf("error parsing %q: %w", pattern, ErrTemplatePatternMatchesNoFiles)
		}
		files = append(files, matches...)
	}
	if len(files) < 1 {
		return nil, ErrNoTemplatePath
	}
	tmpl := template.New("").Funcs(funcs)
	for _, file := range files {
		contents, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("error reading %q: %w", file, err)
		}
		if _, err := tmpl.New(file).Parse(string(contents)); err != nil {
			return nil, fmt.Errorf("error parsing %q: %w", file, err)
		}
	}
	return tmpl, nil
}
