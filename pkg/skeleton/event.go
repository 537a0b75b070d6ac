package skeleton

// EventKind tells edge events from split events.
type EventKind int

const (
	EdgeEvent EventKind = iota
	SplitEvent
)

func (k EventKind) String() string {
	switch k {
	case EdgeEvent:
		return "edge"
	case SplitEvent:
		return "split"
	default:
		return "unknown"
	}
}

// EventInfo describes a popped event to Config.OnEvent.
type EventInfo struct {
	Kind     EventKind
	Point    Point
	Distance float64
	// Nodes are the arena handles of the participating wavefront vertices:
	// va and vb for edge events, the reflex vertex for split events.
	Nodes []int
	// Stale is set for events that were discarded without effect.
	Stale bool
	// Consumed lists the nodes the event marked as processed.
	Consumed []int
}

type event interface {
	kind() EventKind
	at() Point
	dist() float64
	seq() int
}

type eventBase struct {
	point    Point
	distance float64
	serial   int
}

func (e eventBase) at() Point { return e.point }
func (e eventBase) dist() float64 { return e.distance }
func (e eventBase) seq() int { return e.serial }

// edgeEvent: the wavefront edge between va and vb shrinks to a point.
type edgeEvent struct {
	eventBase
	va nodeID
	vb nodeID
}

func (edgeEvent) kind() EventKind { return EdgeEvent }

// splitEvent: reflex vertex va hits the wavefront of the opposite edge.
type splitEvent struct {
	eventBase
	va       nodeID
	opposite int
}

func (splitEvent) kind() EventKind { return SplitEvent }

// eventOrder sorts by distance, treating distances within tie as equal;
// ties go to edge events first and then to the older event.
func eventOrder(tie float64) func(a, b event) int {
	return func(a, b event) int {
		if !equalWithEpsilon(a.dist(), b.dist(), tie) {
			if a.dist() < b.dist() {
				return -1
			}
			return 1
		}
		if a.kind() != b.kind() {
			if a.kind() == EdgeEvent {
				return -1
			}
			return 1
		}
		switch {
		case a.seq() < b.seq():
			return -1
		case a.seq() > b.seq():
			return 1
		default:
			return 0
		}
	}
}
