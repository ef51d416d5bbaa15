package cellgraph

import "fmt"

// Scope is an explicit ownership and disposal boundary. Every cell, derived
// node and reaction created while a scope is current belongs to it and dies
// with it. Scopes form a forest under the system's root scope.
type Scope struct {
	rs       *ReactiveSystem
	n        *node
	parent   *Scope
	children []*Scope
	owned    []NodeID
	cleanups []func() error
}

// CreateScope creates a scope under parent. A nil parent attaches to the
// system's root scope, which makes the new scope's lifetime independent of
// any other caller-created scope.
func (rs *ReactiveSystem) CreateScope(parent *Scope) *Scope {
	if parent == nil {
		parent = rs.rootScope
	}
	s := &Scope{rs: rs, parent: parent}
	s.n = rs.newNode(kindScope, s)
	if parent != nil {
		parent.children = append(parent.children, s)
	}
	return s
}

func (s *Scope) isReactive() {}

// ID returns the scope's arena id.
func (s *Scope) ID() NodeID {
	return s.n.id
}

// Disposed reports whether the scope has been torn down.
func (s *Scope) Disposed() bool {
	return s.n.disposed
}

// Run makes the scope current for the duration of fn: every node fn creates
// is owned by this scope.
func (s *Scope) Run(fn func()) {
	if s.n.disposed {
		s.rs.fail(s, nodeErr(s.n.id, "run", ErrDisposedNodeAccess))
		return
	}
	prev := s.rs.activeScope
	s.rs.activeScope = s
	defer func() {
		s.rs.activeScope = prev
	}()
	fn()
}

// OnCleanup registers a function to run when the scope is disposed. On an
// already-disposed scope the function runs immediately.
func (s *Scope) OnCleanup(fn func() error) {
	if s.n.disposed {
		s.runCleanup(fn)
		return
	}
	s.cleanups = append(s.cleanups, fn)
}

// Dispose tears the scope down: child scopes depth-first, then owned nodes
// (running reaction cleanups), then registered cleanup functions, all in
// reverse creation order. Every dependent edge referencing an owned node is
// pruned, so no dangling notification survives.
func (s *Scope) Dispose() {
	if s.n.disposed {
		return
	}
	s.n.disposed = true

	children := s.children
	s.children = nil
	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	owned := s.owned
	s.owned = nil
	for i := len(owned) - 1; i >= 0; i-- {
		s.rs.disposeNode(s.rs.nodes[owned[i]])
	}

	cleanups := s.cleanups
	s.cleanups = nil
	for i := len(cleanups) - 1; i >= 0; i-- {
		s.runCleanup(cleanups[i])
	}

	if s.parent != nil {
		for i, child := range s.parent.children {
			if child == s {
				s.parent.children = append(s.parent.children[:i], s.parent.children[i+1:]...)
				break
			}
		}
	}
}

func (s *Scope) runCleanup(fn func() error) {
	defer func() {
		if rec := recover(); rec != nil {
			s.rs.fail(s, nodeErr(s.n.id, "dispose", fmt.Errorf("%w: panic: %v", ErrCleanupFailure, rec)))
		}
	}()
	if err := fn(); err != nil {
		s.rs.fail(s, nodeErr(s.n.id, "dispose", fmt.Errorf("%w: %v", ErrCleanupFailure, err)))
	}
}
