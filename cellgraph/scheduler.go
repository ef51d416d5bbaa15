package cellgraph

import (
	"fmt"
	"sort"
)

// propagate is the push half of the engine: mark transitively-dirty derived
// nodes and queue affected reactions, then flush unless a batch is open.
func (rs *ReactiveSystem) propagate(src *node) {
	rs.markDependents(src)
	if rs.batchDepth == 0 {
		rs.flush()
	}
}

func (rs *ReactiveSystem) markDependents(src *node) {
	src.dependents.Each(func(id NodeID) bool {
		dep := rs.nodes[id]
		if dep.disposed {
			return false
		}
		switch dep.kind {
		case kindDerived:
			// An already-dirty derived has already notified its own
			// dependents; stopping here keeps the push O(fan-out).
			if !dep.dirty {
				dep.dirty = true
				rs.markDependents(dep)
			}
		case kindReaction:
			if !dep.enqueued {
				dep.enqueued = true
				rs.queue = append(rs.queue, id)
			}
		}
		return false
	})
}

// StartBatch opens a batch: writes mark and queue but nothing runs until
// the matching EndBatch.
func (rs *ReactiveSystem) StartBatch() {
	rs.batchDepth++
}

func (rs *ReactiveSystem) EndBatch() {
	rs.batchDepth--
	if rs.batchDepth == 0 {
		rs.flush()
	}
}

// Batch groups all cell writes inside cb into a single propagation pass, so
// a reaction depending on several of them runs once, not once per write.
func (rs *ReactiveSystem) Batch(cb func()) {
	rs.StartBatch()
	defer rs.EndBatch()
	cb()
}

// versionsAdvanced reports whether any of the node's recorded dependency
// versions moved since its last run. Callers settle the deps first.
func (rs *ReactiveSystem) versionsAdvanced(n *node) bool {
	for depID, seen := range n.deps {
		if rs.nodes[depID].version != seen {
			return true
		}
	}
	return false
}

// flush drains the pending queue in creation order. Each reaction's recorded
// dependencies are settled immediately before its own staleness check, never
// once per pass up front: an earlier body in the same pass may have
// re-dirtied a derived this reaction feeds on, and a stale settle would
// compare against a dead version and drop the update. Writes made by bodies
// queue further passes; the pass count is capped.
func (rs *ReactiveSystem) flush() {
	if rs.flushing {
		return
	}
	rs.flushing = true
	defer func() {
		rs.flushing = false
	}()

	for pass := 0; len(rs.queue) > 0; pass++ {
		if pass >= rs.maxPasses {
			for _, id := range rs.queue {
				rs.nodes[id].enqueued = false
			}
			rs.queue = rs.queue[:0]
			rs.fail(nil, fmt.Errorf("%w: exceeded %d passes", ErrUnboundedPropagation, rs.maxPasses))
			return
		}

		queued := rs.queue
		rs.queue = nil
		sort.Slice(queued, func(i, j int) bool {
			return queued[i] < queued[j]
		})

		for _, id := range queued {
			n := rs.nodes[id]
			if n.disposed || !n.enqueued {
				continue
			}
			n.enqueued = false
			for depID := range n.deps {
				rs.settleNode(rs.nodes[depID])
			}
			// A queued reaction can turn out clean after settling: a dirty
			// derived between it and the written cell may have recomputed
			// to an equal value, keeping its version.
			if !rs.versionsAdvanced(n) {
				continue
			}
			n.ref.(*ReactionHandle).run()
		}
	}
}
