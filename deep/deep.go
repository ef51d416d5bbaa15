// Package deep makes mutation of nested records and sequences observable
// without the caller re-declaring dependencies at every depth. Every
// field/index gets its own lazily-allocated cell keyed by its path, so a
// tracked read of obj.a depends on exactly a's cell, never the whole
// structure.
package deep

import (
	"sort"

	"github.com/cellflow/cellflow/cellgraph"
	"github.com/cespare/xxhash/v2"
)

type config struct {
	eager bool
}

type Option func(*config)

// Eager pre-allocates the full path-cell tree at construction instead of on
// first read. More allocation up front, no interception bookkeeping during
// the first tracked pass; lazy is the default because large structures are
// usually read sparsely.
func Eager() Option {
	return func(c *config) {
		c.eager = true
	}
}

// field pairs a path cell with the key it shadows, so a root replacement
// can write through every allocated cell.
type field struct {
	key  string
	cell *cellgraph.CellHandle[any]
}

// Record is a structural shadow over a string-keyed record value.
type Record struct {
	rs    *cellgraph.ReactiveSystem
	scope *cellgraph.Scope
	path  string
	eager bool

	backing map[string]any
	fields  map[uint64]*field
	// children memoizes nested wrappers per path so repeated reads return
	// the same identity.
	children map[uint64]any
	// structure versions the key set; Keys/Len/Has track it.
	structure *cellgraph.CellHandle[int]
}

// Wrap deep-wraps a record. Nested records and sequences are wrapped
// recursively and lazily unless the Eager option is given. The engine takes
// ownership of the map; mutate it only through the wrapper afterwards.
func Wrap(rs *cellgraph.ReactiveSystem, value map[string]any, opts ...Option) *Record {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return newRecord(rs, "", value, cfg.eager)
}

// WrapShallow treats the whole value as one cell: coarse invalidation,
// none of the per-path interception overhead.
func WrapShallow(rs *cellgraph.ReactiveSystem, value any) *cellgraph.CellHandle[any] {
	return cellgraph.Cell(rs, value)
}

func newRecord(rs *cellgraph.ReactiveSystem, path string, value map[string]any, eager bool) *Record {
	if value == nil {
		value = map[string]any{}
	}
	r := &Record{
		rs:       rs,
		scope:    rs.CurrentScope(),
		path:     path,
		eager:    eager,
		backing:  value,
		fields:   map[uint64]*field{},
		children: map[uint64]any{},
	}
	r.structure = cellgraph.Cell(rs, 0)
	if eager {
		for _, key := range r.sortedKeys() {
			r.field(key)
			r.wrapValue(key, value[key])
		}
	}
	return r
}

func (r *Record) pathID(key string) uint64 {
	return xxhash.Sum64String(r.path + "/" + key)
}

func (r *Record) field(key string) *field {
	id := r.pathID(key)
	f, ok := r.fields[id]
	if !ok {
		f = &field{key: key}
		// Allocate in the wrapper's scope, not whatever scope happens to
		// be running the read that forced the allocation.
		r.scope.Run(func() {
			f.cell = cellgraph.Cell[any](r.rs, r.backing[key])
		})
		if f.cell == nil {
			// Wrapper scope already disposed; Run surfaced the error.
			// Not cached, so every later access surfaces it again.
			return f
		}
		r.fields[id] = f
	}
	return f
}

// Get reads one field, registering a dependency on that field's cell only.
// Nested records/sequences come back wrapped; the wrapper identity is
// stable until the field is reassigned.
func (r *Record) Get(key string) any {
	f := r.field(key)
	if f.cell == nil {
		return nil
	}
	return r.wrapValue(key, f.cell.Get())
}

func (r *Record) wrapValue(key string, v any) any {
	switch vv := v.(type) {
	case map[string]any:
		id := r.pathID(key)
		child, ok := r.children[id]
		if !ok {
			child = newRecord(r.rs, r.path+"/"+key, vv, r.eager)
			r.children[id] = child
		}
		return child
	case []any:
		id := r.pathID(key)
		child, ok := r.children[id]
		if !ok {
			child = newList(r.rs, r.path+"/"+key, vv, r.eager)
			r.children[id] = child
		}
		return child
	default:
		return v
	}
}

// Set writes one field through its path cell. Assigning a structured value
// replaces the whole subtree: previously handed-out wrappers for it go
// stale and readers pick up a fresh wrapper on their next run.
func (r *Record) Set(key string, v any) {
	id := r.pathID(key)
	delete(r.children, id)
	_, existed := r.backing[key]
	r.backing[key] = v
	r.rs.Batch(func() {
		if f := r.field(key); f.cell != nil {
			f.cell.Set(v)
		}
		if !existed {
			r.structure.Update(func(prev int) int { return prev + 1 })
		}
	})
}

// Delete removes a field. Readers of the field observe nil.
func (r *Record) Delete(key string) {
	_, existed := r.backing[key]
	if !existed {
		return
	}
	id := r.pathID(key)
	delete(r.children, id)
	delete(r.backing, key)
	r.rs.Batch(func() {
		if f, ok := r.fields[id]; ok {
			f.cell.Set(nil)
		}
		r.structure.Update(func(prev int) int { return prev + 1 })
	})
}

// Has reports key presence; tracked computations re-run when the key set
// changes.
func (r *Record) Has(key string) bool {
	r.structure.Get()
	_, ok := r.backing[key]
	return ok
}

// Keys returns the sorted key set, tracked against structural change.
func (r *Record) Keys() []string {
	r.structure.Get()
	return r.sortedKeys()
}

// Len returns the number of fields, tracked against structural change.
func (r *Record) Len() int {
	r.structure.Get()
	return len(r.backing)
}

// Replace swaps the whole record value in one propagation pass. Every
// allocated path cell is written through, so readers of any previously-read
// field re-run, and all handed-out child wrappers are invalidated.
func (r *Record) Replace(value map[string]any) {
	if value == nil {
		value = map[string]any{}
	}
	r.backing = value
	r.children = map[uint64]any{}
	r.rs.Batch(func() {
		for _, f := range r.fields {
			f.cell.Set(value[f.key])
		}
		r.structure.Update(func(prev int) int { return prev + 1 })
	})
}

func (r *Record) sortedKeys() []string {
	keys := make([]string, 0, len(r.backing))
	for key := range r.backing {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
