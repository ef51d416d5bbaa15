package cellgraph

import (
	"errors"
	"fmt"
)

// The engine favors fail-fast and loud over silently stale values. Every
// graph-integrity error below is delivered to the system's OnErrorFunc; none
// of them corrupt nodes other than the offending one.
var (
	// ErrCycleDetected is raised when a derived formula, directly or
	// transitively, reads its own value during its own recomputation.
	ErrCycleDetected = errors.New("cellgraph: cycle detected")

	// ErrUnboundedPropagation is raised when reaction bodies keep writing
	// cells they transitively depend on, past the system's pass ceiling.
	ErrUnboundedPropagation = errors.New("cellgraph: unbounded propagation")

	// ErrDisposedNodeAccess is raised on any read or write of a node whose
	// owning scope has been disposed. The node is never resurrected.
	ErrDisposedNodeAccess = errors.New("cellgraph: disposed node access")

	// ErrCleanupFailure is raised when a reaction or scope cleanup fails.
	// Remaining cleanups still run; one bad cleanup never blocks the rest.
	ErrCleanupFailure = errors.New("cellgraph: cleanup failure")
)

// NodeError attaches the offending node and operation to a sentinel error.
type NodeError struct {
	ID  NodeID
	Op  string
	Err error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("node %d: %s: %v", e.ID, e.Op, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}

func nodeErr(id NodeID, op string, err error) *NodeError {
	return &NodeError{ID: id, Op: op, Err: err}
}
