package render

import "context"

// CSSLinker is implemented by Components that load stylesheets through
// <link> elements.
type CSSLinker interface {
	// LinkCSS returns the stylesheets to link to, in the order they
	// should be rendered.
	LinkCSS(context.Context) []CSSLink
}

// CSSEmbedder is implemented by Components that embed CSS directly in the
// document inside <style> elements.
type CSSEmbedder interface {
	// EmbedCSS returns the CSS templates to embed, in the order they
	// should be rendered.
	EmbedCSS(context.Context) []CSSInline
}

// CSSLink is a stylesheet loaded with a <link> element. Links are
// deduplicated by Href.
type CSSLink struct {
	// Href is the URL of the stylesheet.
	Href string

	// Rel, Type and Media fill the attributes of the same name. Empty
	// values omit the attribute.
	Rel   string
	Type  string
	Media string

	// DisableImplicitOrdering stops this link from being ordered after
	// the link listed before it by the same Component.
	DisableImplicitOrdering bool

	// CSSInlineRelationCalculator and CSSLinkRelationCalculator place
	// this link relative to other CSS resources. Setting either one
	// disables implicit ordering.
	CSSInlineRelationCalculator func(context.Context, CSSInline) ResourceRelationship
	CSSLinkRelationCalculator   func(context.Context, CSSLink) ResourceRelationship
}

func (l CSSLink) identity() string { return l.Href }

func (CSSLink) inline() bool { return false }

func (l CSSLink) implicitlyOrdered() bool {
	return !l.DisableImplicitOrdering && l.CSSInlineRelationCalculator == nil && l.CSSLinkRelationCalculator == nil
}

func (l CSSLink) relationTo(ctx context.Context, other resource) ResourceRelationship {
	return cssRelation(ctx, other, l.CSSInlineRelationCalculator, l.CSSLinkRelationCalculator)
}

func (l CSSLink) describe() string { return "CSSLink(" + l.Href + ")" }

// CSSInline is a CSS template embedded in a <style> element. TemplatePath
// is resolved against the Site's TemplateDir and executed with the same
// data as the Page, in a CSS context. Inline blocks are deduplicated by
// TemplatePath.
type CSSInline struct {
	TemplatePath string

	// DisableImplicitOrdering stops this block from being ordered after
	// the block listed before it by the same Component.
	DisableImplicitOrdering bool

	// CSSInlineRelationCalculator and CSSLinkRelationCalculator place
	// this block relative to other CSS resources. Setting either one
	// disables implicit ordering.
	CSSInlineRelationCalculator func(context.Context, CSSInline) ResourceRelationship
	CSSLinkRelationCalculator   func(context.Context, CSSLink) ResourceRelationship
}

func (i CSSInline) identity() string { return i.TemplatePath }

func (CSSInline) inline() bool { return true }

func (i CSSInline) implicitlyOrdered() bool {
	return !i.DisableImplicitOrdering && i.CSSInlineRelationCalculator == nil && i.CSSLinkRelationCalculator == nil
}

func (i CSSInline) relationTo(ctx context.Context, other resource) ResourceRelationship {
	return cssRelation(ctx, other, i.CSSInlineRelationCalculator, i.CSSLinkRelationCalculator)
}

func (i CSSInline) describe() string { return "CSSInline(" + i.TemplatePath + ")" }

func cssRelation(ctx context.Context, other resource, inlineCalc func(context.Context, CSSInline) ResourceRelationship, linkCalc func(context.Context, CSSLink) ResourceRelationship) ResourceRelationship {
	switch res := other.(type) {
	case CSSInline:
		if inlineCalc != nil {
			return inlineCalc(ctx, res)
		}
	case CSSLink:
		if linkCalc != nil {
			return linkCalc(ctx, res)
		}
	}
	return ResourceRelationshipNeutral
}
