package cellgraph

import "fmt"

// CleanupFunc undoes whatever externally-visible work a reaction body set
// up. It always completes before the next body invocation and before
// disposal.
type CleanupFunc func() error

// BodyFunc is a reaction body. It may return a cleanup for the next run,
// nil for none.
type BodyFunc func() (CleanupFunc, error)

// ReactionHandle is a scheduled unit of side-effecting work, re-run
// whenever any dependency recorded during its previous run changes.
type ReactionHandle struct {
	rs      *ReactiveSystem
	n       *node
	body    BodyFunc
	cleanup CleanupFunc
}

// Reaction creates a reaction owned by the current scope and runs it
// immediately to discover its initial dependency set.
func Reaction(rs *ReactiveSystem, body BodyFunc) *ReactionHandle {
	r := &ReactionHandle{rs: rs, body: body}
	r.n = rs.newNode(kindReaction, r)
	// Batch the discovery run so writes it makes propagate after it
	// finishes instead of re-entering it. Deferred so a panicking body
	// cannot leave the batch depth raised.
	rs.StartBatch()
	defer rs.EndBatch()
	r.run()
	return r
}

func (r *ReactionHandle) isReactive() {}

// ID returns the reaction's arena id.
func (r *ReactionHandle) ID() NodeID {
	return r.n.id
}

func (r *ReactionHandle) run() {
	r.runCleanup("rerun")
	r.rs.beginTracking()
	cleanup, err := r.body()
	reads := r.rs.endTracking()
	if r.n.disposed {
		// The body disposed its own node (directly or via its scope).
		// Nothing to relink; tear down the cleanup it just returned.
		r.cleanup = cleanup
		r.runCleanup("dispose")
	} else {
		r.rs.relink(r.n, reads)
		r.cleanup = cleanup
	}
	if err != nil {
		r.rs.fail(r, nodeErr(r.n.id, "run", err))
	}
}

// runCleanup invokes and clears the pending cleanup. Failures, including
// panics, are reported and do not block anything else from being cleaned
// up.
func (r *ReactionHandle) runCleanup(op string) {
	cleanup := r.cleanup
	if cleanup == nil {
		return
	}
	r.cleanup = nil
	defer func() {
		if rec := recover(); rec != nil {
			r.rs.fail(r, nodeErr(r.n.id, op, fmt.Errorf("%w: panic: %v", ErrCleanupFailure, rec)))
		}
	}()
	if err := cleanup(); err != nil {
		r.rs.fail(r, nodeErr(r.n.id, op, fmt.Errorf("%w: %v", ErrCleanupFailure, err)))
	}
}

// Dispose runs the pending cleanup and removes the reaction from the graph.
// Disposing mid-flush is fine; the scheduler skips disposed entries.
func (r *ReactionHandle) Dispose() {
	r.rs.disposeNode(r.n)
}
