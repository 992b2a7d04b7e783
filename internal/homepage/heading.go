package homepage

import (
	"errors"
	"fmt"
	"html/template"
	"strconv"
)

// ErrHeadingLevel is returned for heading levels outside 1 to 6.
var ErrHeadingLevel = errors.New("heading level must be between 1 and 6")

// Heading renders the opening and closing tags of an <h1> to <h6>
// element. Templates get one from the heading function:
//
//	{{ $h := heading 2 (css "section" "title") }}{{ $h.Open }}Title{{ $h.Close }}
type Heading struct {
	Level int
	Class string
}

// NewHeading returns a Heading of the given level and class. An empty
// class omits the attribute.
func NewHeading(level int, class string) (Heading, error) {
	if level < 1 || level > 6 {
		return Heading{}, fmt.Errorf("%w: got %d", ErrHeadingLevel, level)
	}
	return Heading{Level: level, Class: class}, nil
}

func (h Heading) tag() string {
	return "h" + strconv.Itoa(h.Level)
}

// Open returns the opening tag.
func (h Heading) Open() template.HTML {
	if h.Class == "" {
		return template.HTML("<" + h.tag() + ">") // #nosec G203 -- fixed tag name
	}
	return template.HTML("<" + h.tag() + ` class="` + template.HTMLEscapeString(h.Class) + `">`) // #nosec G203 -- class is escaped
}

// Close returns the closing tag.
func (h Heading) Close() template.HTML {
	return template.HTML("</" + h.tag() + ">") // #nosec G203 -- fixed tag name
}
