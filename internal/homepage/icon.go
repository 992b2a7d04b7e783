package homepage

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/a-h/templ"
)

// ErrNotSVG is returned when an icon file has no <svg> element.
var ErrNotSVG = errors.New("icon is not an SVG document")

type iconFile struct {
	path  string
	label string
}

var iconFiles = map[string]iconFile{
	"openvino":         {path: "img/openvino.svg", label: "OpenVINO"},
	"feature-api":      {path: "img/feature-api.svg", label: "Simple API"},
	"feature-hardware": {path: "img/feature-hardware.svg", label: "Hardware acceleration"},
	"feature-compact":  {path: "img/feature-compact.svg", label: "Compact runtime"},
}

// Icon returns a templ component rendering the SVG document svg inline,
// as an image labelled label. Any prolog before the root element is
// dropped, and role and aria-label on the root element are replaced.
func Icon(svg, label string) (templ.Component, error) {
	dec := xml.NewDecoder(strings.NewReader(svg))
	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			return nil, ErrNotSVG
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotSVG, err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "svg" {
			return nil, fmt.Errorf("%w: root element is <%s>", ErrNotSVG, start.Name.Local)
		}

		attrs := templ.Attributes{}
		for _, a := range start.Attr {
			name := a.Name.Local
			if a.Name.Space != "" {
				name = a.Name.Space + ":" + name
			}
			if name == "role" || name == "aria-label" {
				continue
			}
			attrs[name] = a.Value
		}

		var inner string
		if end := strings.LastIndex(svg, "</svg>"); end >= int(dec.InputOffset()) {
			inner = svg[dec.InputOffset():end]
		}
		return svgIcon(label, attrs, inner), nil
	}
}

// loadIcons renders every known icon once, so templates can inline them.
func loadIcons(ctx context.Context, static fs.FS) (map[string]template.HTML, error) {
	icons := make(map[string]template.HTML, len(iconFiles))
	for name, file := range iconFiles {
		contents, err := fs.ReadFile(static, file.path)
		if err != nil {
			return nil, fmt.Errorf("error reading icon %q: %w", name, err)
		}
		component, err := Icon(string(contents), file.label)
		if err != nil {
			return nil, fmt.Errorf("error loading icon %q: %w", name, err)
		}
		rendered, err := templ.ToGoHTML(ctx, component)
		if err != nil {
			return nil, fmt.Errorf("error rendering icon %q: %w", name, err)
		}
		icons[name] = rendered
	}
	return icons, nil
}
