package render

// ResourceRelationship describes where a resource must be rendered relative
// to another resource of the same kind. Relation calculators on CSSLink,
// CSSInline, JSLink and JSInline return one for every resource they are
// compared against.
type ResourceRelationship string

const (
	// ResourceRelationshipAfter renders the resource after the one it
	// is compared to.
	ResourceRelationshipAfter ResourceRelationship = "after"

	// ResourceRelationshipBefore renders the resource before the one it
	// is compared to.
	ResourceRelationshipBefore ResourceRelationship = "before"

	// ResourceRelationshipNeutral places no constraint on the pair. A
	// calculator that never returns anything else is better left nil.
	ResourceRelationshipNeutral ResourceRelationship = "neutral"
)
