package skeleton

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Graph is an undirected graph of skeleton arcs. Vertices are identified by
// exact point value.
type Graph struct {
	g        *simple.UndirectedGraph
	vertices []Point
	index    map[Point]int64
	// edges keeps the order arcs were added in, gonum iterates its maps
	edges []Segment
}

func newGraph(arcs []Segment) *Graph {
	g := &Graph{
		g:     simple.NewUndirectedGraph(),
		index: make(map[Point]int64),
	}
	for _, a := range arcs {
		u, v := g.vertex(a.Start), g.vertex(a.End)
		if u == v || g.g.HasEdgeBetween(u, v) {
			continue
		}
		g.g.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
		g.edges = append(g.edges, a)
	}
	return g
}

// vertex returns the node ID of p, adding it on first sight. IDs follow
// the order points were met in.
func (g *Graph) vertex(p Point) int64 {
	if id, ok := g.index[p]; ok {
		return id
	}
	id := int64(len(g.vertices))
	g.index[p] = id
	g.vertices = append(g.vertices, p)
	g.g.AddNode(simple.Node(id))
	return id
}

// Vertices returns the points in the order they were first met.
func (g *Graph) Vertices() []Point { return slices.Clone(g.vertices) }

// Edges returns each undirected edge once, in the order of the arcs.
func (g *Graph) Edges() []Segment { return slices.Clone(g.edges) }

func (g *Graph) NumVertices() int { return g.g.Nodes().Len() }
func (g *Graph) NumEdges() int { return len(g.edges) }

// Neighbors returns the points joined to p by an arc, in vertex order.
// Unknown points have none.
func (g *Graph) Neighbors(p Point) []Point {
	id, ok := g.index[p]
	if !ok {
		return nil
	}
	nodes := graph.NodesOf(g.g.From(id))
	slices.SortFunc(nodes, func(a, b graph.Node) int { return cmp.Compare(a.ID(), b.ID()) })
	out := make([]Point, len(nodes))
	for i, n := range nodes {
		out[i] = g.vertices[n.ID()]
	}
	return out
}

// Degree returns the number of arcs at p.
func (g *Graph) Degree(p Point) int {
	id, ok := g.index[p]
	if !ok {
		return 0
	}
	return g.g.From(id).Len()
}

// Connected reports whether every vertex can be reached from every other.
func (g *Graph) Connected() bool {
	return len(topo.ConnectedComponents(g.g)) <= 1
}

// isTree reports whether the arcs form one connected graph without cycles.
func (g *Graph) isTree() bool {
	return g.NumEdges() == g.NumVertices()-1 && g.Connected()
}
