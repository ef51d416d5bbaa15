package cellgraph

// CellHandle is the atomic versioned storage unit. Reading it inside a
// tracked computation records a dependency edge; writing it advances its
// version and schedules propagation.
type CellHandle[T any] struct {
	rs     *ReactiveSystem
	n      *node
	value  T
	equals func(prev, next T) bool
}

// Cell creates a new writable cell owned by the current scope.
func Cell[T any](rs *ReactiveSystem, initial T) *CellHandle[T] {
	c := &CellHandle[T]{rs: rs, value: initial}
	c.n = rs.newNode(kindCell, c)
	return c
}

func (c *CellHandle[T]) isReactive() {}

// ID returns the cell's arena id.
func (c *CellHandle[T]) ID() NodeID {
	return c.n.id
}

func (c *CellHandle[T]) Get() T {
	if c.n.disposed {
		c.rs.fail(c, nodeErr(c.n.id, "get", ErrDisposedNodeAccess))
		var zero T
		return zero
	}
	c.rs.track(c.n.id)
	return c.value
}

// Peek returns the current value without recording a dependency.
func (c *CellHandle[T]) Peek() T {
	if c.n.disposed {
		c.rs.fail(c, nodeErr(c.n.id, "peek", ErrDisposedNodeAccess))
		var zero T
		return zero
	}
	return c.value
}

// Set stores the value, advances the version and propagates. Writing an
// equal value still triggers downstream work: version, not value equality,
// is the dirtiness signal. Call WithEquals to opt into a short-circuit.
func (c *CellHandle[T]) Set(v T) {
	if c.n.disposed {
		c.rs.fail(c, nodeErr(c.n.id, "set", ErrDisposedNodeAccess))
		return
	}
	if c.equals != nil && c.equals(c.value, v) {
		return
	}
	c.value = v
	c.n.version++
	c.rs.propagate(c.n)
}

// Update applies fn to the current value and writes the result. The read is
// untracked.
func (c *CellHandle[T]) Update(fn func(prev T) T) {
	if c.n.disposed {
		c.rs.fail(c, nodeErr(c.n.id, "update", ErrDisposedNodeAccess))
		return
	}
	c.Set(fn(c.value))
}

// WithEquals opts this cell into value-equality short-circuiting: writes of
// an equal value no longer advance the version. Not the default because
// equality is neither cheap nor well-defined for every T.
func (c *CellHandle[T]) WithEquals(fn func(prev, next T) bool) *CellHandle[T] {
	c.equals = fn
	return c
}
