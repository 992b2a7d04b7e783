package render_test

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/openvinotoolkit/genai-site/internal/render"
)

type ErrorSite struct {
	*render.CachedSite

	Title string
}

func (ErrorSite) ServerErrorPage(_ context.Context) render.Page {
	return ErrorPage{}
}

type ErrorHomePage struct {
	Layout ErrorLayout
}

func (ErrorHomePage) Templates(_ context.Context) []string {
	return []string{"home.html.tmpl"}
}

func (h ErrorHomePage) UseComponents(_ context.Context) []render.Component {
	return []render.Component{h.Layout}
}

func (ErrorHomePage) Key(_ context.Context) string {
	return "home.html.tmpl"
}

func (h ErrorHomePage) ExecutedTemplate(_ context.Context) string {
	return h.Layout.BaseTemplate()
}

type ErrorLayout struct{}

func (l ErrorLayout) Templates(_ context.Context) []string {
	return []string{l.BaseTemplate()}
}

func (ErrorLayout) BaseTemplate() string {
	return "base.html.tmpl"
}

type ErrorPage struct{}

func (ErrorPage) Templates(_ context.Context) []string {
	return []string{"server_error.html.tmpl"}
}

func (ErrorPage) Key(_ context.Context) string {
	return "server_error.html.tmpl"
}

func (ErrorPage) ExecutedTemplate(_ context.Context) string {
	return "server_error.html.tmpl"
}

func ExampleRender_serverErrorPage() {
	templates := templateFS(map[string]string{
		"home.html.tmpl": `{{ define "body" }}Hello.{{ end }}`,
		"base.html.tmpl": `<!doctype html>
<html lang="en">
	<head>
		<title>{{ .Site.Title }}</title>
	</head>
	<body>
		{{ block "body" . }}{{ end }}
		<!-- purposefully fail here -->
		{{ .ImaginaryData }}
	</body>
</html>`,
		"server_error.html.tmpl": `<!doctype html>
<html lang="en">
	<head>
		<title>Server Error</title>
	</head>
	<body>
		<h1>Server error</h1>
	</body>
</html>`,
	})

	ctx := render.LoggingContext(context.Background(), slog.New(slog.DiscardHandler))

	site := ErrorSite{
		CachedSite: render.NewCachedSite(templates),
		Title:      "My Example Site",
	}
	err := render.Render(ctx, os.Stdout, site, ErrorHomePage{})
	fmt.Println()
	fmt.Println(err != nil)

	//Output:
	// <!doctype html>
	// <html lang="en">
	// 	<head>
	// 		<title>Server Error</title>
	// 	</head>
	// 	<body>
	// 		<h1>Server error</h1>
	// 	</body>
	// </html>
	// true
}
