package cellgraph

// trackFrame is one recording frame on the dependency tracker stack. Reads
// record the dependency's version as observed at read time; first read wins,
// so a run that reads a cell and then writes it still counts as having seen
// the pre-write version. A discard frame swallows registrations, which is
// all untracking is.
type trackFrame struct {
	reads   map[NodeID]uint64
	discard bool
}

func (rs *ReactiveSystem) beginTracking() {
	rs.frames = append(rs.frames, &trackFrame{
		reads: map[NodeID]uint64{},
	})
}

func (rs *ReactiveSystem) endTracking() map[NodeID]uint64 {
	last := len(rs.frames) - 1
	frame := rs.frames[last]
	rs.frames[last] = nil
	rs.frames = rs.frames[:last]
	return frame.reads
}

// track records a read into the current frame, if any. Reads outside any
// frame, or under a discard frame, leave no edge.
func (rs *ReactiveSystem) track(id NodeID) {
	if len(rs.frames) == 0 {
		return
	}
	frame := rs.frames[len(rs.frames)-1]
	if frame.discard {
		return
	}
	if _, ok := frame.reads[id]; !ok {
		frame.reads[id] = rs.nodes[id].version
	}
}

// relink diffs a node's fresh dependency set against its previous one,
// unsubscribing from nodes no longer read (dependency sets change call to
// call, e.g. under a conditional) and recording the version of every
// dependency as observed by this run.
func (rs *ReactiveSystem) relink(n *node, reads map[NodeID]uint64) {
	for depID := range n.deps {
		if _, ok := reads[depID]; !ok {
			rs.nodes[depID].dependents.Remove(n.id)
			delete(n.deps, depID)
		}
	}
	for depID, seen := range reads {
		rs.nodes[depID].dependents.Add(n.id)
		n.deps[depID] = seen
	}
}

// Untrack runs fn with dependency recording disabled and returns its result.
// Reads inside fn never add edges to the enclosing formula or reaction,
// which is how deliberate cycles are broken.
func Untrack[T any](rs *ReactiveSystem, fn func() T) T {
	rs.frames = append(rs.frames, &trackFrame{discard: true})
	defer func() {
		rs.frames = rs.frames[:len(rs.frames)-1]
	}()
	return fn()
}
