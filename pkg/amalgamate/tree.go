package amalgamate

import (
	"github.com/disiqueira/gotree/v3"
)

// IncludeGraph records the first-time expansion edges of one run. Re-seen
// directives add no edge, so the rendered tree mirrors the generated
// file: each header appears under the file whose directive caused its
// body to be emitted.
type IncludeGraph struct {
	root  gotree.Tree
	nodes map[string]gotree.Tree
}

func newIncludeGraph() *IncludeGraph {
	return &IncludeGraph{nodes: make(map[string]gotree.Tree)}
}

// start roots the graph at the entry header.
func (g *IncludeGraph) start(entry string) {
	g.root = gotree.New(entry)
	g.nodes[entry] = g.root
}

// add attaches child under parent. An unknown parent falls back to the
// root, which only happens if edges arrive before start.
func (g *IncludeGraph) add(parent, child string) {
	if g.root == nil {
		g.start(parent)
	}
	p, ok := g.nodes[parent]
	if !ok {
		p = g.root
	}
	g.nodes[child] = p.Add(child)
}

// Render returns the expansion tree in box-drawing layout, or the empty
// string for a graph that never started.
func (g *IncludeGraph) Render() string {
	if g.root == nil {
		return ""
	}
	return g.root.Print()
}
