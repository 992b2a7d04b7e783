package homepage

import (
	"context"

	"github.com/openvinotoolkit/genai-site/internal/render"
)

var (
	_ render.Component = Features{}
	_ render.CSSLinker = Features{}
)

// Feature is one column of the Features block.
type Feature struct {
	Title       string
	Icon        string
	Description string
}

// Features is the row of selling points under the Header.
type Features struct {
	Items []Feature

	stylesheet render.CSSLink
}

// NewFeatures returns the homepage Features block.
func NewFeatures(site *Site) (Features, error) {
	stylesheet, err := site.moduleStylesheet("features")
	if err != nil {
		return Features{}, err
	}
	return Features{
		Items: []Feature{
			{
				Title:       "Simple API",
				Icon:        "feature-api",
				Description: "Run generative models in a few lines of Python or C++, with the tokenization, sampling and caching handled for you.",
			},
			{
				Title:       "Hardware acceleration",
				Icon:        "feature-hardware",
				Description: "Optimized inference on Intel CPUs, GPUs and NPUs, with the same code on every device.",
			},
			{
				Title:       "Compact runtime",
				Icon:        "feature-compact",
				Description: "A small footprint with few dependencies, ready to ship in desktop apps and on the edge.",
			},
		},
		stylesheet: stylesheet,
	}, nil
}

func (Features) Templates(_ context.Context) []string {
	return []string{"features.html.tmpl"}
}

func (f Features) LinkCSS(_ context.Context) []render.CSSLink {
	return []render.CSSLink{f.stylesheet}
}
