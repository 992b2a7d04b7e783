package homepage

import (
	"context"

	"github.com/openvinotoolkit/genai-site/internal/render"
)

// LayoutDescription is the meta description of the homepage.
const LayoutDescription = "Description will go into a meta tag in <head />"

const baseTemplate = "base.html.tmpl"

var (
	_ render.Component = Layout{}
	_ render.CSSLinker = Layout{}
)

// NavLink is an entry in the navigation bar.
type NavLink struct {
	Label string
	Href  string
}

// Layout is the page chrome shared by every page: the document head, the
// navigation bar and the footer. Pages fill its "content" block.
type Layout struct {
	Description string
	Logo        string
	Favicon     string
	Links       []NavLink
	Copyright   string

	stylesheet render.CSSLink
}

// NewLayout returns the Layout used across site.
func NewLayout(site *Site, description string) Layout {
	return Layout{
		Description: description,
		Logo:        site.Asset("img/openvino.svg"),
		Favicon:     site.Asset("img/openvino.svg"),
		Links: []NavLink{
			{Label: "Getting Started", Href: site.URL("docs/getting-started/introduction")},
			{Label: "Guides", Href: site.URL("docs/guides/model-preparation")},
			{Label: "Samples", Href: site.URL("docs/samples")},
			{Label: "GitHub", Href: "https://github.com/openvinotoolkit/openvino.genai"},
		},
		Copyright:  "Copyright © Intel Corporation",
		stylesheet: site.globalStylesheet(),
	}
}

// BaseTemplate is the template name pages using the Layout execute.
func (Layout) BaseTemplate() string {
	return baseTemplate
}

func (Layout) Templates(_ context.Context) []string {
	return []string{baseTemplate}
}

func (l Layout) LinkCSS(_ context.Context) []render.CSSLink {
	return []render.CSSLink{l.stylesheet}
}
