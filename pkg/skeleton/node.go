package skeleton

type nodeID int

const noNode nodeID = -1

// node is a vertex of the moving wavefront. It sits between two original
// edges and travels along its bisector from the point where it was created.
type node struct {
	id           nodeID
	vertex       Point
	previousEdge int
	currentEdge  int
	reflex       bool
	// sliver marks a node between antiparallel edges whose wavefronts
	// already lie on one line: the strip behind it has zero width.
	sliver   bool
	bisector Ray
	// speed is how fast the offset grows per unit travelled along the
	// bisector. Zero for slivers.
	speed        float64
	previous     nodeID
	next         nodeID
	processed    bool
	time         float64
	startMovedTo nodeID
	// pending is the last event queued for the node, nil if none.
	pending event
}

// arena owns every node of one computation. Nodes are never removed.
type arena struct {
	nodes []*node
}

func (a *arena) add(vertex Point, previousEdge, currentEdge int, time float64) *node {
	n := &node{
		id:           nodeID(len(a.nodes)),
		vertex:       vertex,
		previousEdge: previousEdge,
		currentEdge:  currentEdge,
		previous:     noNode,
		next:         noNode,
		time:         time,
		startMovedTo: noNode,
	}
	a.nodes = append(a.nodes, n)
	return n
}

func (a *arena) get(id nodeID) *node {
	return a.nodes[id]
}

func (a *arena) len() int { return len(a.nodes) }
