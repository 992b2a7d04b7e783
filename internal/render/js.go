package render

import "context"

// JSLinker is implemented by Components that load scripts through <script>
// elements with a src attribute.
type JSLinker interface {
	// LinkJS returns the scripts to load, in the order they should be
	// rendered.
	LinkJS(context.Context) []JSLink
}

// JSEmbedder is implemented by Components that embed JavaScript directly
// in the document.
type JSEmbedder interface {
	// EmbedJS returns the JavaScript templates to embed, in the order
	// they should be rendered.
	EmbedJS(context.Context) []JSInline
}

// JSLink is a script loaded from Src. Links are deduplicated by Src.
type JSLink struct {
	Src  string
	Type string

	Async bool
	Defer bool

	// PlaceInFooter renders the script at the end of the body (.FooterJS)
	// instead of in the head (.HeaderJS).
	PlaceInFooter bool

	// DisableImplicitOrdering stops this script from being ordered after
	// the script listed before it by the same Component.
	DisableImplicitOrdering bool

	// JSInlineRelationCalculator and JSLinkRelationCalculator place this
	// script relative to other scripts in the same position. Setting
	// either one disables implicit ordering.
	JSInlineRelationCalculator func(context.Context, JSInline) ResourceRelationship
	JSLinkRelationCalculator   func(context.Context, JSLink) ResourceRelationship
}

func (l JSLink) identity() string { return l.Src }

func (JSLink) inline() bool { return false }

func (l JSLink) implicitlyOrdered() bool {
	return !l.DisableImplicitOrdering && l.JSInlineRelationCalculator == nil && l.JSLinkRelationCalculator == nil
}

func (l JSLink) relationTo(ctx context.Context, other resource) ResourceRelationship {
	return jsRelation(ctx, other, l.JSInlineRelationCalculator, l.JSLinkRelationCalculator)
}

func (l JSLink) describe() string { return "JSLink(" + l.Src + ")" }

// JSInline is a JavaScript template embedded in a <script> element.
// TemplatePath is resolved against the Site's TemplateDir and executed with
// the same data as the Page, in a JavaScript context. Inline scripts are
// deduplicated by TemplatePath.
type JSInline struct {
	TemplatePath string

	// PlaceInFooter renders the script at the end of the body (.FooterJS)
	// instead of in the head (.HeaderJS).
	PlaceInFooter bool

	// DisableImplicitOrdering stops this script from being ordered after
	// the script listed before it by the same Component.
	DisableImplicitOrdering bool

	// JSInlineRelationCalculator and JSLinkRelationCalculator place this
	// script relative to other scripts in the same position. Setting
	// either one disables implicit ordering.
	JSInlineRelationCalculator func(context.Context, JSInline) ResourceRelationship
	JSLinkRelationCalculator   func(context.Context, JSLink) ResourceRelationship
}

func (i JSInline) identity() string { return i.TemplatePath }

func (JSInline) inline() bool { return true }

func (i JSInline) implicitlyOrdered() bool {
	return !i.DisableImplicitOrdering && i.JSInlineRelationCalculator == nil && i.JSLinkRelationCalculator == nil
}

func (i JSInline) relationTo(ctx context.Context, other resource) ResourceRelationship {
	return jsRelation(ctx, other, i.JSInlineRelationCalculator, i.JSLinkRelationCalculator)
}

func (i JSInline) describe() string { return "JSInline(" + i.TemplatePath + ")" }

func jsRelation(ctx context.Context, other resource, inlineCalc func(context.Context, JSInline) ResourceRelationship, linkCalc func(context.Context, JSLink) ResourceRelationship) ResourceRelationship {
	switch res := other.(type) {
	case JSInline:
		if inlineCalc != nil {
			return inlineCalc(ctx, res)
		}
	case JSLink:
		if linkCalc != nil {
			return linkCalc(ctx, res)
		}
	}
	return ResourceRelationshipNeutral
}
