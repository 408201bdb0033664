// Package loader tracks the state of asynchronous fetches issued by a view.
//
// A [Resource] moves through Idle → Pending → Success or Failed. Every call
// to [Resource.Load] starts a new generation; when an older fetch finishes
// after a newer one was issued, its result is dropped. The fetch itself is
// not cancelled, it simply runs to completion and is ignored.
package loader

import (
	"context"
	"sync"
)

// State is the lifecycle phase of a [Resource].
type State int

const (
	Idle State = iota
	Pending
	Success
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Snapshot is a consistent view of a [Resource] at one point in time.
type Snapshot[T any] struct {
	State      State
	Value      T
	Err        error
	Generation uint64
}

// Resource holds the latest result of a repeatedly issued fetch.
// It is safe for concurrent use.
type Resource[T any] struct {
	mu       sync.Mutex
	snap     Snapshot[T]
	onChange func(Snapshot[T])
}

// New creates an idle Resource. onChange, if non-nil, is called with the new
// snapshot after every applied transition, outside the lock.
func New[T any](onChange func(Snapshot[T])) *Resource[T] {
	return &Resource[T]{onChange: onChange}
}

// Snapshot returns the current state.
func (r *Resource[T]) Snapshot() Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap
}

// Load marks the resource pending and runs fetch in a new goroutine. The
// previous value is kept while pending. The returned channel receives the
// snapshot produced by this load, or the superseding snapshot if the result
// was stale, and is then closed.
func (r *Resource[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) <-chan Snapshot[T] {
	r.mu.Lock()
	r.snap.Generation++
	r.snap.State = Pending
	r.snap.Err = nil
	gen := r.snap.Generation
	pending := r.snap
	r.mu.Unlock()
	r.notify(pending)

	done := make(chan Snapshot[T], 1)
	go func() {
		defer close(done)
		v, err := fetch(ctx)
		snap, applied := r.complete(gen, v, err)
		if applied {
			r.notify(snap)
		}
		done <- snap
	}()
	return done
}

// complete applies a finished fetch if gen is still current.
func (r *Resource[T]) complete(gen uint64, v T, err error) (Snapshot[T], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.snap.Generation {
		return r.snap, false
	}
	if err != nil {
		r.snap.State = Failed
		r.snap.Err = err
	} else {
		r.snap.State = Success
		r.snap.Value = v
		r.snap.Err = nil
	}
	return r.snap, true
}

// Reset returns the resource to Idle and invalidates any in-flight load.
func (r *Resource[T]) Reset() {
	r.mu.Lock()
	var zero T
	r.snap = Snapshot[T]{State: Idle, Value: zero, Generation: r.snap.Generation + 1}
	snap := r.snap
	r.mu.Unlock()
	r.notify(snap)
}

func (r *Resource[T]) notify(s Snapshot[T]) {
	if r.onChange != nil {
		r.onChange(s)
	}
}
