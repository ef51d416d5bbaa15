package deep

import (
	"strconv"

	"github.com/cellflow/cellflow/cellgraph"
	"github.com/cespare/xxhash/v2"
)

// slot pairs an index cell with the index it shadows.
type slot struct {
	index int
	cell  *cellgraph.CellHandle[any]
}

// List is a structural shadow over a sequence value. Element access goes
// through per-index path cells; Len and out-of-range reads track a length
// cell so growth and truncation propagate.
type List struct {
	rs    *cellgraph.ReactiveSystem
	scope *cellgraph.Scope
	path  string
	eager bool

	backing  []any
	slots    map[uint64]*slot
	children map[uint64]any
	length   *cellgraph.CellHandle[int]
}

// WrapList deep-wraps a sequence. The engine takes ownership of the slice.
func WrapList(rs *cellgraph.ReactiveSystem, value []any, opts ...Option) *List {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return newList(rs, "", value, cfg.eager)
}

func newList(rs *cellgraph.ReactiveSystem, path string, value []any, eager bool) *List {
	l := &List{
		rs:       rs,
		scope:    rs.CurrentScope(),
		path:     path,
		eager:    eager,
		backing:  value,
		slots:    map[uint64]*slot{},
		children: map[uint64]any{},
	}
	l.length = cellgraph.Cell(rs, len(value))
	if eager {
		for i, v := range value {
			l.slot(i)
			l.wrapValue(i, v)
		}
	}
	return l
}

func (l *List) pathID(i int) uint64 {
	return xxhash.Sum64String(l.path + "/" + strconv.Itoa(i))
}

func (l *List) slot(i int) *slot {
	id := l.pathID(i)
	s, ok := l.slots[id]
	if !ok {
		s = &slot{index: i}
		l.scope.Run(func() {
			var seed any
			if i < len(l.backing) {
				seed = l.backing[i]
			}
			s.cell = cellgraph.Cell[any](l.rs, seed)
		})
		if s.cell == nil {
			// Wrapper scope already disposed; Run surfaced the error.
			return s
		}
		l.slots[id] = s
	}
	return s
}

// At reads one element, registering a dependency on that index's cell. An
// out-of-range read returns nil and tracks the length cell, so the reader
// re-runs if the list later grows to cover the index.
func (l *List) At(i int) any {
	if i < 0 || i >= len(l.backing) {
		l.length.Get()
		return nil
	}
	s := l.slot(i)
	if s.cell == nil {
		return nil
	}
	return l.wrapValue(i, s.cell.Get())
}

func (l *List) wrapValue(i int, v any) any {
	switch vv := v.(type) {
	case map[string]any:
		id := l.pathID(i)
		child, ok := l.children[id]
		if !ok {
			child = newRecord(l.rs, l.path+"/"+strconv.Itoa(i), vv, l.eager)
			l.children[id] = child
		}
		return child
	case []any:
		id := l.pathID(i)
		child, ok := l.children[id]
		if !ok {
			child = newList(l.rs, l.path+"/"+strconv.Itoa(i), vv, l.eager)
			l.children[id] = child
		}
		return child
	default:
		return v
	}
}

// SetAt writes one element through its index cell. Panics when i is out of
// range, matching slice semantics.
func (l *List) SetAt(i int, v any) {
	if i < 0 || i >= len(l.backing) {
		panic("deep: list index out of range")
	}
	delete(l.children, l.pathID(i))
	l.backing[i] = v
	if s := l.slot(i); s.cell != nil {
		s.cell.Set(v)
	}
}

// Append grows the list by one element in a single propagation pass.
func (l *List) Append(v any) {
	i := len(l.backing)
	l.backing = append(l.backing, v)
	l.rs.Batch(func() {
		if s, ok := l.slots[l.pathID(i)]; ok {
			// The slot survived a shrinking Replace; write it through.
			s.cell.Set(v)
		}
		l.length.Set(len(l.backing))
	})
}

// Len returns the element count, tracked against structural change.
func (l *List) Len() int {
	return l.length.Get()
}

// Replace swaps the whole sequence in one propagation pass, writing through
// every allocated index cell and invalidating handed-out child wrappers.
func (l *List) Replace(value []any) {
	l.backing = value
	l.children = map[uint64]any{}
	l.rs.Batch(func() {
		for _, s := range l.slots {
			var v any
			if s.index < len(value) {
				v = value[s.index]
			}
			s.cell.Set(v)
		}
		l.length.Set(len(value))
	})
}
