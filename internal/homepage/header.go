package homepage

import (
	"context"

	"github.com/openvinotoolkit/genai-site/internal/render"
)

const (
	// Subtitle is the tagline under the homepage title.
	Subtitle = "Deploy Generative AI with ease"

	// Description is the paragraph under the tagline.
	Description = "OpenVINO™ GenAI provides developers the necessary tools to optimize and deploy Generative AI models"
)

var (
	_ render.Component = Header{}
	_ render.CSSLinker = Header{}
)

// Header is the hero banner at the top of the homepage: the OpenVINO logo
// and "GenAI" as the page's only h1, then Subtitle and Description.
type Header struct {
	Subtitle    string
	Description string

	stylesheet render.CSSLink
}

// NewHeader returns the homepage Header.
func NewHeader(site *Site) (Header, error) {
	stylesheet, err := site.moduleStylesheet("index")
	if err != nil {
		return Header{}, err
	}
	return Header{
		Subtitle:    Subtitle,
		Description: Description,
		stylesheet:  stylesheet,
	}, nil
}

func (Header) Templates(_ context.Context) []string {
	return []string{"header.html.tmpl"}
}

func (h Header) LinkCSS(_ context.Context) []render.CSSLink {
	return []render.CSSLink{h.stylesheet}
}
