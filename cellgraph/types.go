package cellgraph

import mapset "github.com/deckarep/golang-set/v2"

// NodeID indexes a node in the system's arena. IDs are allocated
// monotonically, so ordering by id is creation order.
type NodeID uint32

type nodeKind uint8

const (
	kindCell nodeKind = iota
	kindDerived
	kindReaction
	kindScope
)

// node carries the graph bookkeeping shared by every reactive primitive.
// Values live in the typed handles; edges live here as plain id sets so
// disposal is an O(degree) index operation and the graph can be cyclic
// without ownership problems.
type node struct {
	id      NodeID
	kind    nodeKind
	version uint64

	// dependents are the nodes that read us during their last run.
	dependents mapset.Set[NodeID]
	// deps maps each dependency to the version observed at our last run.
	deps map[NodeID]uint64

	dirty     bool
	computing bool
	enqueued  bool
	disposed  bool

	// ref points back at the typed handle (CellHandle, DerivedHandle, ...).
	ref any
}

// Reactive is implemented by every handle the system hands out. It is the
// "from" argument of OnErrorFunc.
type Reactive interface {
	isReactive()
}

// Readable is any reactive value that can be read with dependency tracking.
type Readable[T any] interface {
	Get() T
}

// settler is implemented by derived handles so the scheduler can resolve a
// dirty node without knowing its value type.
type settler interface {
	settle()
}
