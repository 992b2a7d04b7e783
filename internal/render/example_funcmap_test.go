package render_test

import (
	"context"
	"html/template"
	"log/slog"
	"os"
	"strings"

	"github.com/openvinotoolkit/genai-site/internal/render"
)

type FuncMapSite struct {
	*render.CachedSite

	Title string
}

func (FuncMapSite) FuncMap(_ context.Context) template.FuncMap {
	// available to every component and page
	return template.FuncMap{
		"device":   strings.ToUpper,
		"greeting": func() string { return "Hello" },
	}
}

type FuncMapPage struct {
	Pipeline string
	Layout   BasicLayout
}

func (FuncMapPage) Templates(_ context.Context) []string {
	return []string{"home.html.tmpl"}
}

func (p FuncMapPage) UseComponents(_ context.Context) []render.Component {
	return []render.Component{p.Layout}
}

func (FuncMapPage) Key(_ context.Context) string {
	return "home.html.tmpl"
}

func (p FuncMapPage) ExecutedTemplate(_ context.Context) string {
	return p.Layout.BaseTemplate()
}

func (FuncMapPage) FuncMap(_ context.Context) template.FuncMap {
	// component functions win over the site's
	return template.FuncMap{
		"greeting": func() string { return "Welcome" },
	}
}

func ExampleRender_funcMaps() {
	templates := templateFS(map[string]string{
		"home.html.tmpl": `{{ define "body" }}{{ greeting }}. Run {{ .Page.Pipeline }} on {{ device "gpu" }}.{{ end }}`,
		"base.html.tmpl": exampleBaseTemplate,
	})

	ctx := render.LoggingContext(context.Background(), slog.Default())

	site := FuncMapSite{
		CachedSite: render.NewCachedSite(templates),
		Title:      "My Example Site",
	}
	page := FuncMapPage{Pipeline: "LLMPipeline"}
	_ = render.Render(ctx, os.Stdout, site, page)

	//Output:
	// <!doctype html>
	// <html lang="en">
	// 	<head>
	// 		<title>My Example Site</title></head>
	// 	<body>
	// 		Welcome. Run LLMPipeline on GPU.</body>
	// </html>
}
