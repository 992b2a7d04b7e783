package render

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrResourceCycle is returned when the ordering constraints between
// resources can't all be satisfied. It always means the relation
// calculators on some resources contradict each other.
var ErrResourceCycle = errors.New("resource cycle detected")

// resource is implemented by CSSLink, CSSInline, JSLink and JSInline.
type resource interface {
	// identity is the URL or template path of the resource.
	identity() string
	inline() bool
	implicitlyOrdered() bool
	relationTo(ctx context.Context, other resource) ResourceRelationship
	// describe identifies the resource in errors and deduplicates it.
	describe() string
}

// graph is a directed acyclic graph of resources. Edges point from a
// resource to the resources that must be rendered before it.
type graph struct {
	nodes []resource
	index map[string]int

	// deps maps a node to the set of nodes that must precede it.
	deps map[int]map[int]struct{}
}

func newGraph() *graph {
	return &graph{
		index: map[string]int{},
		deps:  map[int]map[int]struct{}{},
	}
}

// add inserts res unless a resource with the same identity is already
// present. It returns the position of the resource and whether it was
// added.
func (g *graph) add(res resource) (int, bool) {
	key := res.describe()
	if pos, ok := g.index[key]; ok {
		return pos, false
	}
	g.nodes = append(g.nodes, res)
	pos := len(g.nodes) - 1
	g.index[key] = pos
	return pos, true
}

// follow records that node must be rendered after dep.
func (g *graph) follow(node, dep int) {
	if node == dep {
		return
	}
	if g.deps[node] == nil {
		g.deps[node] = map[int]struct{}{}
	}
	g.deps[node][dep] = struct{}{}
}

// addAll inserts the resources one Component declared. Each new resource
// that allows it follows the previous such resource, which preserves the
// Component's own ordering.
func (g *graph) addAll(resources []resource) {
	last := -1
	for _, res := range resources {
		pos, added := g.add(res)
		if !added || !res.implicitlyOrdered() {
			continue
		}
		if last >= 0 {
			g.follow(pos, last)
		}
		last = pos
	}
}

// relate adds the edges requested by relation calculators. Resources
// without calculators relate neutrally to everything.
func (g *graph) relate(ctx context.Context) {
	for pos, res := range g.nodes {
		for otherPos, other := range g.nodes {
			if pos == otherPos {
				continue
			}
			switch res.relationTo(ctx, other) {
			case ResourceRelationshipAfter:
				g.follow(pos, otherPos)
			case ResourceRelationshipBefore:
				g.follow(otherPos, pos)
			case ResourceRelationshipNeutral:
			}
		}
	}
}

// compare orders nodes that are ready at the same time: links before inline
// blocks, then by identity, so output is stable across renders.
func (g *graph) compare(a, b int) int {
	first, second := g.nodes[a], g.nodes[b]
	if first.inline() != second.inline() {
		if first.inline() {
			return 1
		}
		return -1
	}
	return strings.Compare(first.identity(), second.identity())
}

// sorted walks the graph in dependency order. If some nodes can never be
// reached because of a cycle, the nodes that could be walked are returned
// along with an error wrapping ErrResourceCycle.
func (g *graph) sorted() ([]resource, error) {
	waiting := make(map[int]map[int]struct{}, len(g.deps))
	dependents := map[int][]int{}
	for node, deps := range g.deps {
		if len(deps) < 1 {
			continue
		}
		waiting[node] = make(map[int]struct{}, len(deps))
		for dep := range deps {
			waiting[node][dep] = struct{}{}
			dependents[dep] = append(dependents[dep], node)
		}
	}

	ready := make([]int, 0, len(g.nodes))
	for pos := range g.nodes {
		if _, ok := waiting[pos]; !ok {
			ready = append(ready, pos)
		}
	}
	slices.SortFunc(ready, g.compare)

	results := make([]resource, 0, len(g.nodes))
	for len(ready) > 0 {
		pos := ready[0]
		ready = ready[1:]
		results = append(results, g.nodes[pos])
		var changed bool
		for _, child := range dependents[pos] {
			delete(waiting[child], pos)
			if len(waiting[child]) < 1 {
				delete(waiting, child)
				ready = append(ready, child)
				changed = true
			}
		}
		if changed {
			slices.SortFunc(ready, g.compare)
		}
	}

	if len(waiting) > 0 {
		var blocked []string
		for node, deps := range waiting {
			var on []string
			for dep := range deps {
				on = append(on, g.nodes[dep].describe())
			}
			slices.Sort(on)
			blocked = append(blocked, fmt.Sprintf("%s waits on %s", g.nodes[node].describe(), strings.Join(on, ", ")))
		}
		slices.Sort(blocked)
		return results, fmt.Errorf("%w: %s", ErrResourceCycle, strings.Join(blocked, "; "))
	}
	return results, nil
}

// resourceGraphs holds one graph per place resources are rendered.
type resourceGraphs struct {
	css    *graph
	headJS *graph
	footJS *graph
}

// buildGraphs collects the resources declared by components, in the order
// the components are passed, and computes every ordering constraint
// between them.
func buildGraphs(ctx context.Context, components []Component) resourceGraphs {
	graphs := resourceGraphs{
		css:    newGraph(),
		headJS: newGraph(),
		footJS: newGraph(),
	}
	for _, component := range components {
		if linker, ok := component.(CSSLinker); ok {
			graphs.css.addAll(asResources(linker.LinkCSS(ctx)))
		}
		if embedder, ok := component.(CSSEmbedder); ok {
			graphs.css.addAll(asResources(embedder.EmbedCSS(ctx)))
		}
		if linker, ok := component.(JSLinker); ok {
			links := linker.LinkJS(ctx)
			graphs.headJS.addAll(asResources(filterFooter(links, false, func(l JSLink) bool { return l.PlaceInFooter })))
			graphs.footJS.addAll(asResources(filterFooter(links, true, func(l JSLink) bool { return l.PlaceInFooter })))
		}
		if embedder, ok := component.(JSEmbedder); ok {
			blocks := embedder.EmbedJS(ctx)
			graphs.headJS.addAll(asResources(filterFooter(blocks, false, func(i JSInline) bool { return i.PlaceInFooter })))
			graphs.footJS.addAll(asResources(filterFooter(blocks, true, func(i JSInline) bool { return i.PlaceInFooter })))
		}
	}
	graphs.css.relate(ctx)
	graphs.headJS.relate(ctx)
	graphs.footJS.relate(ctx)
	return graphs
}

func asResources[R resource](in []R) []resource {
	out := make([]resource, 0, len(in))
	for _, res := range in {
		out = append(out, res)
	}
	return out
}

func filterFooter[R any](in []R, footer bool, inFooter func(R) bool) []R {
	var out []R
	for _, res := range in {
		if inFooter(res) == footer {
			out = append(out, res)
		}
	}
	return out
}
