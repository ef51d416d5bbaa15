package cellgraph

import mapset "github.com/deckarep/golang-set/v2"

// OnErrorFunc receives every surfaced engine error. The "from" handle is nil
// when the error cannot be pinned to a single node (e.g. a blown pass
// ceiling covering a whole flush).
type OnErrorFunc func(from Reactive, err error)

const DefaultMaxPasses = 100

type Option func(rs *ReactiveSystem)

// WithMaxPasses overrides the re-entrant propagation ceiling. A flush that
// needs more passes than this is cut off with ErrUnboundedPropagation.
func WithMaxPasses(n int) Option {
	return func(rs *ReactiveSystem) {
		rs.maxPasses = n
	}
}

// ReactiveSystem is one engine instance: the node arena, the dependency
// tracker stack, the scope forest and the pending reaction queue. Instances
// are independent; tests routinely run several side by side.
//
// All graph mutation, propagation and reaction execution happen
// synchronously on the calling goroutine. The arena and queue are not safe
// for concurrent mutation; a multi-threaded embedding must serialize whole
// operations around the system externally.
type ReactiveSystem struct {
	onError   OnErrorFunc
	maxPasses int

	nodes  []*node
	frames []*trackFrame

	rootScope   *Scope
	activeScope *Scope

	batchDepth int
	queue      []NodeID
	flushing   bool
}

func CreateReactiveSystem(onError OnErrorFunc, opts ...Option) *ReactiveSystem {
	rs := &ReactiveSystem{
		onError:   onError,
		maxPasses: DefaultMaxPasses,
	}
	for _, opt := range opts {
		opt(rs)
	}
	rs.rootScope = rs.CreateScope(nil)
	rs.activeScope = rs.rootScope
	return rs
}

// RootScope returns the scope that owns nodes created outside any
// scope.Run. It lives as long as the system and is never disposed.
func (rs *ReactiveSystem) RootScope() *Scope {
	return rs.rootScope
}

// CurrentScope returns the scope that owns nodes created right now.
func (rs *ReactiveSystem) CurrentScope() *Scope {
	return rs.activeScope
}

func (rs *ReactiveSystem) fail(from Reactive, err error) {
	if rs.onError != nil {
		rs.onError(from, err)
	}
}

// newNode allocates an arena slot and registers ownership with the current
// scope. Scope nodes track their own lifecycle through the scope forest.
func (rs *ReactiveSystem) newNode(kind nodeKind, ref any) *node {
	n := &node{
		id:         NodeID(len(rs.nodes)),
		kind:       kind,
		dependents: mapset.NewThreadUnsafeSet[NodeID](),
		deps:       map[NodeID]uint64{},
		ref:        ref,
	}
	rs.nodes = append(rs.nodes, n)
	if kind != kindScope && rs.activeScope != nil {
		rs.activeScope.owned = append(rs.activeScope.owned, n.id)
	}
	return n
}

// settleNode resolves a possibly-dirty dependency before its version is
// compared or its value read. Cells are always settled.
func (rs *ReactiveSystem) settleNode(n *node) {
	if n.kind != kindDerived || n.disposed {
		return
	}
	n.ref.(settler).settle()
}

// disposeNode runs a reaction's pending cleanup, then prunes every edge in
// both directions so no dangling notification can reach the node again.
func (rs *ReactiveSystem) disposeNode(n *node) {
	if n.disposed {
		return
	}
	if n.kind == kindReaction {
		n.ref.(*ReactionHandle).runCleanup("dispose")
	}
	n.disposed = true
	n.enqueued = false
	for depID := range n.deps {
		rs.nodes[depID].dependents.Remove(n.id)
	}
	n.deps = nil
	n.dependents.Each(func(id NodeID) bool {
		delete(rs.nodes[id].deps, n.id)
		return false
	})
	n.dependents.Clear()
}
