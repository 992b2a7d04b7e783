package render_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/openvinotoolkit/genai-site/internal/render"
)

type OrderingPage struct {
	Layout BasicLayout
}

func (OrderingPage) Templates(_ context.Context) []string {
	return []string{"home.html.tmpl"}
}

func (p OrderingPage) UseComponents(_ context.Context) []render.Component {
	return []render.Component{p.Layout}
}

func (OrderingPage) Key(_ context.Context) string {
	return "home.html.tmpl"
}

func (p OrderingPage) ExecutedTemplate(_ context.Context) string {
	return p.Layout.BaseTemplate()
}

func (OrderingPage) LinkJS(_ context.Context) []render.JSLink {
	// Scripts declared by one component keep their order within the head
	// and within the footer, so tabs.js follows highlight.js and
	// analytics.js follows consent.js. vendor.js and cookies.js opt out,
	// so they're placed by Src among whatever is ready when they are.
	return []render.JSLink{
		{Src: "https://example.com/vendor.js", DisableImplicitOrdering: true},
		{Src: "https://example.com/cookies.js", PlaceInFooter: true, DisableImplicitOrdering: true},
		{Src: "https://example.com/highlight.js"},
		{Src: "https://example.com/consent.js", PlaceInFooter: true},
		{Src: "https://example.com/tabs.js", Defer: true},
		{Src: "https://example.com/analytics.js", PlaceInFooter: true, Async: true},
	}
}

func ExampleRender_implicitOrdering() {
	templates := templateFS(map[string]string{
		"home.html.tmpl": `{{ define "body" }}Hello, world.{{ end }}`,
		"base.html.tmpl": exampleBaseTemplate,
	})

	ctx := render.LoggingContext(context.Background(), slog.Default())

	site := BasicSite{
		CachedSite: render.NewCachedSite(templates),
		Title:      "My Example Site",
	}
	_ = render.Render(ctx, os.Stdout, site, OrderingPage{})

	//Output:
	// <!doctype html>
	// <html lang="en">
	// 	<head>
	// 		<title>My Example Site</title><script src="https://example.com/highlight.js"></script>
	// <script defer src="https://example.com/tabs.js"></script>
	// <script src="https://example.com/vendor.js"></script>
	// </head>
	// 	<body>
	// 		Hello, world.<script src="https://example.com/consent.js"></script>
	// <script async src="https://example.com/analytics.js"></script>
	// <script src="https://example.com/cookies.js"></script>
	// </body>
	// </html>
}
