package cellgraph

// DerivedHandle is a memoized, formula-backed reactive value. Invalidation
// is pushed eagerly on write (cheap, O(fan-out)); recomputation is pulled
// lazily on the next read.
type DerivedHandle[T comparable] struct {
	rs       *ReactiveSystem
	n        *node
	value    T
	formula  func(oldValue T) T
	computed bool
}

// Derive creates a derived node. The formula is not run until the first
// read; it receives the previous cached value, zero on the first run.
func Derive[T comparable](rs *ReactiveSystem, formula func(oldValue T) T) *DerivedHandle[T] {
	d := &DerivedHandle[T]{rs: rs, formula: formula}
	d.n = rs.newNode(kindDerived, d)
	d.n.dirty = true
	return d
}

func (d *DerivedHandle[T]) isReactive() {}

// ID returns the derived node's arena id.
func (d *DerivedHandle[T]) ID() NodeID {
	return d.n.id
}

func (d *DerivedHandle[T]) Get() T {
	if d.n.disposed {
		d.rs.fail(d, nodeErr(d.n.id, "get", ErrDisposedNodeAccess))
		var zero T
		return zero
	}
	if d.n.computing {
		d.rs.fail(d, nodeErr(d.n.id, "get", ErrCycleDetected))
		return d.value
	}
	d.settle()
	d.rs.track(d.n.id)
	return d.value
}

// Peek settles and returns the value without recording a dependency.
func (d *DerivedHandle[T]) Peek() T {
	if d.n.disposed {
		d.rs.fail(d, nodeErr(d.n.id, "peek", ErrDisposedNodeAccess))
		var zero T
		return zero
	}
	if d.n.computing {
		d.rs.fail(d, nodeErr(d.n.id, "peek", ErrCycleDetected))
		return d.value
	}
	d.settle()
	return d.value
}

// settle brings the cached value up to date. A dirty mark is only a
// maybe-stale hint: if every recorded dependency still has the version we
// last observed (a dependency may have recomputed to an equal value), the
// mark is cleared without invoking the formula.
func (d *DerivedHandle[T]) settle() {
	n := d.n
	if n.computing || !n.dirty {
		return
	}
	if d.computed && !d.depsChanged() {
		n.dirty = false
		return
	}
	d.recompute()
}

func (d *DerivedHandle[T]) depsChanged() bool {
	for depID, seen := range d.n.deps {
		dep := d.rs.nodes[depID]
		d.rs.settleNode(dep)
		if dep.version != seen {
			return true
		}
	}
	return false
}

func (d *DerivedHandle[T]) recompute() {
	n := d.n
	n.computing = true
	d.rs.beginTracking()
	oldValue := d.value
	next := d.formula(oldValue)
	reads := d.rs.endTracking()
	n.computing = false
	if n.disposed {
		return
	}
	d.rs.relink(n, reads)
	n.dirty = false
	// Equal result: keep the version so dependents comparing recorded
	// versions see no change and skip their own recomputation.
	if !d.computed || next != oldValue {
		d.value = next
		n.version++
	}
	d.computed = true
}
