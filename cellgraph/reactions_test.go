package cellgraph_test

import (
	"fmt"
	"testing"

	"github.com/cellflow/cellflow/cellgraph"
	"github.com/stretchr/testify/assert"
)

// should run the body immediately on creation
func TestReactionRunsImmediately(t *testing.T) {
	rs := newTestSystem(t)
	a := cellgraph.Cell(rs, 1)
	seen := []int{}
	cellgraph.Reaction(rs, func() (cellgraph.CleanupFunc, error) {
		seen = append(seen, a.Get())
		return nil, nil
	})
	assert.Equal(t, []int{1}, seen)
}

// should run reactions in creation order regardless of write order
func TestReactionsRunInCreationOrder(t *testing.T) {
	rs := newTestSystem(t)
	x := cellgraph.Cell(rs, 1)
	y := cellgraph.Cell(rs, 1)
	order := []string{}
	cellgraph.Reaction(rs, func() (cellgraph.CleanupFunc, error) {
		x.Get()
		order = append(order, "r1")
		return nil, nil
	})
	cellgraph.Reaction(rs, func() (cellgraph.CleanupFunc, error) {
		x.Get()
		y.Get()
		order = append(order, "r2")
		return nil, nil
	})
	order = order[:0]

	x.Set(2)
	assert.Equal(t, []string{"r1", "r2"}, order)

	// Writing y queues r2 first; r1 still runs first once x joins in a batch.
	order = order[:0]
	rs.Batch(func() {
		y.Set(2)
		x.Set(3)
	})
	assert.Equal(t, []string{"r1", "r2"}, order)
}

// should switch dependencies when the body takes another branch
func TestReactionConditionalDependencySwitch(t *testing.T) {
	rs := newTestSystem(t)
	useA := cellgraph.Cell(rs, true)
	a := cellgraph.Cell(rs, 1)
	b := cellgraph.Cell(rs, 100)
	runs := 0
	cellgraph.Reaction(rs, func() (cellgraph.CleanupFunc, error) {
		runs++
		if useA.Get() {
			a.Get()
		} else {
			b.Get()
		}
		return nil, nil
	})
	assert.Equal(t, 1, runs)

	b.Set(101)
	assert.Equal(t, 1, runs)

	useA.Set(false)
	assert.Equal(t, 2, runs)

	a.Set(2)
	assert.Equal(t, 2, runs)
	b.Set(102)
	assert.Equal(t, 3, runs)
}

// should complete cleanup i before body i+1 begins
func TestReactionCleanupBeforeRerun(t *testing.T) {
	rs := newTestSystem(t)
	a := cellgraph.Cell(rs, 0)
	log := []string{}
	r := cellgraph.Reaction(rs, func() (cellgraph.CleanupFunc, error) {
		i := a.Get()
		log = append(log, fmt.Sprintf("body %d", i))
		return func() error {
			log = append(log, fmt.Sprintf("cleanup %d", i))
			return nil
		}, nil
	})

	a.Set(1)
	a.Set(2)
	r.Dispose()
	assert.Equal(t, []string{
		"body 0",
		"cleanup 0", "body 1",
		"cleanup 1", "body 2",
		"cleanup 2",
	}, log)
}

// should run the pending cleanup exactly once on dispose and never rerun
func TestReactionDisposeStopsReruns(t *testing.T) {
	rs := newTestSystem(t)
	a := cellgraph.Cell(rs, 1)
	runs, cleanups := 0, 0
	r := cellgraph.Reaction(rs, func() (cellgraph.CleanupFunc, error) {
		a.Get()
		runs++
		return func() error {
			cleanups++
			return nil
		}, nil
	})

	r.Dispose()
	r.Dispose()
	assert.Equal(t, 1, cleanups)

	a.Set(2)
	assert.Equal(t, 1, runs)
}

// should report a panicking cleanup and keep the reaction alive
func TestReactionCleanupPanicReported(t *testing.T) {
	rs, errs := newErrSystem()
	a := cellgraph.Cell(rs, 1)
	runs := 0
	cellgraph.Reaction(rs, func() (cellgraph.CleanupFunc, error) {
		a.Get()
		runs++
		return func() error {
			panic("cleanup exploded")
		}, nil
	})

	a.Set(2)
	assert.Equal(t, 2, runs)
	assert.True(t, containsErr(*errs, cellgraph.ErrCleanupFailure))

	a.Set(3)
	assert.Equal(t, 3, runs)
}

// should report a failing cleanup without blocking the rerun
func TestReactionCleanupErrorReported(t *testing.T) {
	rs, errs := newErrSystem()
	a := cellgraph.Cell(rs, 1)
	runs := 0
	cellgraph.Reaction(rs, func() (cellgraph.CleanupFunc, error) {
		a.Get()
		runs++
		return func() error {
			return fmt.Errorf("close failed")
		}, nil
	})

	a.Set(2)
	assert.Equal(t, 2, runs)
	assert.True(t, containsErr(*errs, cellgraph.ErrCleanupFailure))
}

// should report a body error and keep reacting afterwards
func TestReactionBodyErrorReported(t *testing.T) {
	rs, errs := newErrSystem()
	a := cellgraph.Cell(rs, 1)
	runs := 0
	cellgraph.Reaction(rs, func() (cellgraph.CleanupFunc, error) {
		runs++
		if a.Get() == 2 {
			return nil, fmt.Errorf("bad state")
		}
		return nil, nil
	})

	a.Set(2)
	assert.Len(t, *errs, 1)

	a.Set(3)
	assert.Equal(t, 3, runs)
	assert.Len(t, *errs, 1)
}

// should keep flushing after a body panics during the discovery run
func TestReactionBodyPanicDoesNotWedgeBatching(t *testing.T) {
	rs := newTestSystem(t)
	a := cellgraph.Cell(rs, 1)
	runs := 0
	cellgraph.Reaction(rs, func() (cellgraph.CleanupFunc, error) {
		a.Get()
		runs++
		return nil, nil
	})

	assert.Panics(t, func() {
		cellgraph.Reaction(rs, func() (cellgraph.CleanupFunc, error) {
			panic("body exploded")
		})
	})

	a.Set(2)
	assert.Equal(t, 2, runs)
}

// should run a follow-up pass when a body writes another reaction's dependency
func TestReactionWriteSchedulesFollowUpPass(t *testing.T) {
	rs := newTestSystem(t)
	x := cellgraph.Cell(rs, 1)
	y := cellgraph.Cell(rs, 0)
	seen := []int{}
	cellgraph.Reaction(rs, func() (cellgraph.CleanupFunc, error) {
		seen = append(seen, y.Get())
		return nil, nil
	})
	cellgraph.Reaction(rs, func() (cellgraph.CleanupFunc, error) {
		y.Set(x.Get() * 10)
		return nil, nil
	})
	assert.Equal(t, []int{0, 10}, seen)

	x.Set(2)
	assert.Equal(t, []int{0, 10, 20}, seen)
}

// should cut off a self-feeding reaction at the pass ceiling
func TestReactionUnboundedPropagationCapped(t *testing.T) {
	rs, errs := newErrSystem(cellgraph.WithMaxPasses(10))
	a := cellgraph.Cell(rs, 0)
	runs := 0
	cellgraph.Reaction(rs, func() (cellgraph.CleanupFunc, error) {
		runs++
		a.Set(a.Get() + 1)
		return nil, nil
	})

	a.Set(100)
	assert.True(t, containsErr(*errs, cellgraph.ErrUnboundedPropagation))
	// one discovery run plus one run per allowed pass
	assert.Equal(t, 11, runs)

	// the queue was cut; the system keeps working for acyclic writes
	b := cellgraph.Cell(rs, 1)
	bRuns := 0
	cellgraph.Reaction(rs, func() (cellgraph.CleanupFunc, error) {
		b.Get()
		bRuns++
		return nil, nil
	})
	b.Set(2)
	assert.Equal(t, 2, bRuns)
}

// should skip a reaction disposed by an earlier reaction in the same pass
func TestReactionDisposedMidFlush(t *testing.T) {
	rs := newTestSystem(t)
	a := cellgraph.Cell(rs, 1)
	r2Runs := 0
	var r2 *cellgraph.ReactionHandle
	cellgraph.Reaction(rs, func() (cellgraph.CleanupFunc, error) {
		if a.Get() == 2 && r2 != nil {
			r2.Dispose()
		}
		return nil, nil
	})
	r2 = cellgraph.Reaction(rs, func() (cellgraph.CleanupFunc, error) {
		a.Get()
		r2Runs++
		return nil, nil
	})
	assert.Equal(t, 1, r2Runs)

	a.Set(2)
	assert.Equal(t, 1, r2Runs)
}

// should not rerun when a derived between the write and the reaction lands equal
func TestReactionSkippedOnEqualDerived(t *testing.T) {
	rs := newTestSystem(t)
	a := cellgraph.Cell(rs, 1)
	parity := cellgraph.Derive(rs, func(oldValue int) int {
		return a.Get() % 2
	})
	runs := 0
	cellgraph.Reaction(rs, func() (cellgraph.CleanupFunc, error) {
		parity.Get()
		runs++
		return nil, nil
	})
	assert.Equal(t, 1, runs)

	a.Set(3) // parity unchanged
	assert.Equal(t, 1, runs)
	a.Set(4)
	assert.Equal(t, 2, runs)
}
