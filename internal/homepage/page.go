package homepage

import (
	"context"
	"fmt"

	"github.com/openvinotoolkit/genai-site/internal/render"
)

var (
	_ render.Page          = HomePage{}
	_ render.ComponentUser = HomePage{}
	_ render.CSSLinker     = HomePage{}
	_ render.Page          = ErrorPage{}
	_ render.ComponentUser = ErrorPage{}
	_ render.CSSLinker     = ErrorPage{}
)

// HomePage is the landing page: the Header and Features inside the main
// container, then the five content sections in a fixed order.
type HomePage struct {
	Layout   Layout
	Header   Header
	Features Features

	Installation    Installation
	TextGeneration  CapabilitySection
	ImageGeneration CapabilitySection
	SpeechToText    CapabilitySection
	ImageProcessing CapabilitySection

	stylesheet render.CSSLink
}

// NewHomePage assembles the HomePage from site's components.
func NewHomePage(site *Site) (HomePage, error) {
	page := HomePage{Layout: NewLayout(site, LayoutDescription)}
	var err error
	if page.Header, err = NewHeader(site); err != nil {
		return HomePage{}, fmt.Errorf("error building header: %w", err)
	}
	if page.Features, err = NewFeatures(site); err != nil {
		return HomePage{}, fmt.Errorf("error building features: %w", err)
	}
	if page.Installation, err = NewInstallation(site); err != nil {
		return HomePage{}, fmt.Errorf("error building installation section: %w", err)
	}
	if page.TextGeneration, err = NewTextGeneration(site); err != nil {
		return HomePage{}, fmt.Errorf("error building text generation section: %w", err)
	}
	if page.ImageGeneration, err = NewImageGeneration(site); err != nil {
		return HomePage{}, fmt.Errorf("error building image generation section: %w", err)
	}
	if page.SpeechToText, err = NewSpeechToText(site); err != nil {
		return HomePage{}, fmt.Errorf("error building speech to text section: %w", err)
	}
	if page.ImageProcessing, err = NewImageProcessing(site); err != nil {
		return HomePage{}, fmt.Errorf("error building image processing section: %w", err)
	}
	if page.stylesheet, err = site.moduleStylesheet("index"); err != nil {
		return HomePage{}, err
	}
	return page, nil
}

// Sections returns the content sections in the order they render.
func (p HomePage) Sections() []render.Component {
	return []render.Component{
		p.Installation,
		p.TextGeneration,
		p.ImageGeneration,
		p.SpeechToText,
		p.ImageProcessing,
	}
}

func (HomePage) Key(_ context.Context) string {
	return "home"
}

func (p HomePage) ExecutedTemplate(_ context.Context) string {
	return p.Layout.BaseTemplate()
}

func (HomePage) Templates(_ context.Context) []string {
	return []string{"home.html.tmpl"}
}

func (p HomePage) UseComponents(_ context.Context) []render.Component {
	return append([]render.Component{p.Layout, p.Header, p.Features}, p.Sections()...)
}

func (p HomePage) LinkCSS(_ context.Context) []render.CSSLink {
	return []render.CSSLink{p.stylesheet}
}

// ErrorPage is rendered in place of a page that failed.
type ErrorPage struct {
	Layout  Layout
	Title   string
	Message string

	stylesheet render.CSSLink
}

// NewErrorPage returns the server error page of site.
func NewErrorPage(site *Site) ErrorPage {
	page := ErrorPage{
		Layout:  NewLayout(site, "Something went wrong."),
		Title:   "Something went wrong",
		Message: "We couldn't render this page. Please try again later.",
	}
	// a missing module fails the template and Render falls back to plain
	// text, so there's nothing to report here
	if stylesheet, err := site.moduleStylesheet("error"); err == nil {
		page.stylesheet = stylesheet
	}
	return page
}

func (ErrorPage) Key(_ context.Context) string {
	return "error"
}

func (p ErrorPage) ExecutedTemplate(_ context.Context) string {
	return p.Layout.BaseTemplate()
}

func (ErrorPage) Templates(_ context.Context) []string {
	return []string{"error.html.tmpl"}
}

func (p ErrorPage) UseComponents(_ context.Context) []render.Component {
	return []render.Component{p.Layout}
}

func (p ErrorPage) LinkCSS(_ context.Context) []render.CSSLink {
	if p.stylesheet.Href == "" {
		return nil
	}
	return []render.CSSLink{p.stylesheet}
}
