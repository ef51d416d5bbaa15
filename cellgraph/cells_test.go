package cellgraph_test

import (
	"errors"
	"testing"

	"github.com/cellflow/cellflow/cellgraph"
	"github.com/stretchr/testify/assert"
)

func newTestSystem(t *testing.T) *cellgraph.ReactiveSystem {
	t.Helper()
	return cellgraph.CreateReactiveSystem(func(from cellgraph.Reactive, err error) {
		assert.FailNow(t, err.Error())
	})
}

// newErrSystem collects surfaced errors instead of failing, for tests that
// expect them.
func newErrSystem(opts ...cellgraph.Option) (*cellgraph.ReactiveSystem, *[]error) {
	errs := &[]error{}
	rs := cellgraph.CreateReactiveSystem(func(from cellgraph.Reactive, err error) {
		*errs = append(*errs, err)
	}, opts...)
	return rs, errs
}

func containsErr(errs []error, target error) bool {
	for _, err := range errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// should store and return the written value
func TestCellGetSet(t *testing.T) {
	rs := newTestSystem(t)
	a := cellgraph.Cell(rs, 1)
	assert.Equal(t, 1, a.Get())
	a.Set(2)
	assert.Equal(t, 2, a.Get())
}

// should trigger dependents even when the written value is equal
func TestCellEqualWriteStillPropagates(t *testing.T) {
	rs := newTestSystem(t)
	a := cellgraph.Cell(rs, 7)
	runs := 0
	cellgraph.Reaction(rs, func() (cellgraph.CleanupFunc, error) {
		a.Get()
		runs++
		return nil, nil
	})
	assert.Equal(t, 1, runs)

	a.Set(7)
	assert.Equal(t, 2, runs)
}

// should short-circuit equal writes when an equality function is opted into
func TestCellWithEqualsShortCircuit(t *testing.T) {
	rs := newTestSystem(t)
	a := cellgraph.Cell(rs, 7).WithEquals(func(prev, next int) bool {
		return prev == next
	})
	runs := 0
	cellgraph.Reaction(rs, func() (cellgraph.CleanupFunc, error) {
		a.Get()
		runs++
		return nil, nil
	})
	assert.Equal(t, 1, runs)

	a.Set(7)
	assert.Equal(t, 1, runs)
	a.Set(8)
	assert.Equal(t, 2, runs)
}

// should not record a dependency on Peek
func TestCellPeekLeavesNoEdge(t *testing.T) {
	rs := newTestSystem(t)
	a := cellgraph.Cell(rs, 1)
	b := cellgraph.Cell(rs, 2)
	runs := 0
	cellgraph.Reaction(rs, func() (cellgraph.CleanupFunc, error) {
		a.Get()
		b.Peek()
		runs++
		return nil, nil
	})
	assert.Equal(t, 1, runs)

	b.Set(3)
	assert.Equal(t, 1, runs)
	a.Set(4)
	assert.Equal(t, 2, runs)
}

// should apply the update function to the previous value
func TestCellUpdate(t *testing.T) {
	rs := newTestSystem(t)
	a := cellgraph.Cell(rs, 10)
	runs := 0
	cellgraph.Reaction(rs, func() (cellgraph.CleanupFunc, error) {
		a.Get()
		runs++
		return nil, nil
	})

	a.Update(func(prev int) int { return prev + 5 })
	assert.Equal(t, 15, a.Peek())
	assert.Equal(t, 2, runs)
}

// should surface an error and return zero on disposed cell access
func TestCellDisposedAccess(t *testing.T) {
	rs, errs := newErrSystem()
	scope := rs.CreateScope(nil)
	var a *cellgraph.CellHandle[int]
	scope.Run(func() {
		a = cellgraph.Cell(rs, 42)
	})
	scope.Dispose()

	assert.Equal(t, 0, a.Get())
	a.Set(1)
	a.Update(func(prev int) int { return prev + 1 })
	assert.Len(t, *errs, 3)
	assert.True(t, containsErr(*errs, cellgraph.ErrDisposedNodeAccess))

	var ne *cellgraph.NodeError
	assert.True(t, errors.As((*errs)[0], &ne))
	assert.Equal(t, a.ID(), ne.ID)
	assert.Equal(t, "get", ne.Op)
}
