package render

import (
	"context"
	"fmt"
	"html"
	"html/template"
	"io/fs"
	"strings"
)

// renderedResources is the HTML for every resource of a Page.
type renderedResources struct {
	css      template.HTML
	headerJS template.HTML
	footerJS template.HTML
}

func renderResources(ctx context.Context, site Site, funcs template.FuncMap, components []Component, data any) (renderedResources, error) {
	graphs := buildGraphs(ctx, components)
	var result renderedResources
	var err error
	result.css, err = renderGraph(ctx, site, funcs, graphs.css, data)
	if err != nil {
		return result, fmt.Errorf("error rendering CSS: %w", err)
	}
	result.headerJS, err = renderGraph(ctx, site, funcs, graphs.headJS, data)
	if err != nil {
		return result, fmt.Errorf("error rendering header JavaScript: %w", err)
	}
	result.footerJS, err = renderGraph(ctx, site, funcs, graphs.footJS, data)
	if err != nil {
		return result, fmt.Errorf("error rendering footer JavaScript: %w", err)
	}
	return result, nil
}

func renderGraph(ctx context.Context, site Site, funcs template.FuncMap, resources *graph, data any) (template.HTML, error) {
	ordered, err := resources.sorted()
	if err != nil {
		return "", err
	}
	var out strings.Builder
	for _, res := range ordered {
		switch res := res.(type) {
		case CSSLink:
			writeCSSLink(&out, res)
		case JSLink:
			writeJSLink(&out, res)
		case CSSInline:
			err = renderInline(ctx, &out, site, funcs, "style", res.TemplatePath, data)
		case JSInline:
			err = renderInline(ctx, &out, site, funcs, "script", res.TemplatePath, data)
		default:
			err = fmt.Errorf("unexpected resource type %T", res)
		}
		if err != nil {
			return "", fmt.Errorf("error rendering %s: %w", res.describe(), err)
		}
		out.WriteString("\n")
	}
	return template.HTML(out.String()), nil // #nosec G203 -- attributes escaped, inline blocks executed by html/template
}

func writeCSSLink(out *strings.Builder, link CSSLink) {
	out.WriteString("<link")
	writeAttr(out, "href", link.Href)
	writeAttr(out, "rel", link.Rel)
	writeAttr(out, "type", link.Type)
	writeAttr(out, "media", link.Media)
	out.WriteString(">")
}

func writeJSLink(out *strings.Builder, link JSLink) {
	out.WriteString("<script")
	writeAttr(out, "type", link.Type)
	if link.Async {
		out.WriteString(" async")
	}
	if link.Defer {
		out.WriteString(" defer")
	}
	writeAttr(out, "src", link.Src)
	out.WriteString("></script>")
}

// writeAttr writes a quoted, escaped attribute, or nothing when value is
// empty.
func writeAttr(out *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	out.WriteString(" " + name + `="` + html.EscapeString(value) + `"`)
}

// renderInline executes the template at path wrapped in element, so
// html/template escapes its actions for CSS or JavaScript.
func renderInline(ctx context.Context, out *strings.Builder, site Site, funcs template.FuncMap, element, path string, data any) error {
	src, err := resourceSource(ctx, site, path)
	if err != nil {
		return err
	}
	tmpl, err := template.New(path).Funcs(funcs).Parse("<" + element + ">\n" + src + "\n</" + element + ">")
	if err != nil {
		return fmt.Errorf("error parsing %q: %w", path, err)
	}
	err = tmpl.Execute(out, data)
	if err != nil {
		return fmt.Errorf("error executing %q: %w", path, err)
	}
	return nil
}

func resourceSource(ctx context.Context, site Site, path string) (string, error) {
	cache, cacheable := site.(ResourceCacher)
	if cacheable {
		if cached := cache.GetCachedResource(ctx, path); cached != nil {
			return *cached, nil
		}
	}
	contents, err := fs.ReadFile(site.TemplateDir(ctx), path)
	if err != nil {
		return "", fmt.Errorf("error reading %q: %w", path, err)
	}
	if cacheable {
		cache.SetCachedResource(ctx, path, string(contents))
	}
	return string(contents), nil
}
