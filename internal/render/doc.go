// Package render turns trees of Components into HTML documents using the
// html/template package.
//
// A Component is any piece of the document that needs templates to render:
// the site layout, the homepage header, a content section. A Page is a
// Component that is rendered on its own rather than included in another
// Component. Components that rely on other Components list them through
// UseComponents, and everything those children need (templates, template
// functions, stylesheets, scripts) is pulled in when the parent renders.
//
// Each server or build has one Site. The Site provides the fs.FS holding
// the templates, optionally caches parsed templates, and is available to
// every template as .Site. The Page being rendered is available as .Page.
//
// Stylesheets and scripts are declared by Components as CSSLink, CSSInline,
// JSLink and JSInline values. Render deduplicates them, orders them (see
// ResourceRelationship), renders them, and exposes the results to the
// templates as .CSS, .HeaderJS and .FooterJS.
package render
