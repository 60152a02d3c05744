// Package store implements the client-side resource cache: typed fetch
// results with an explicit lifecycle, safe for concurrent readers and one
// writer goroutine per load.
package store

import (
	"context"
	"errors"
	"sync"
)

// State is the lifecycle of a Resource.
type State int

const (
	Idle State = iota
	Loading
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrLoadInFlight is returned when a Load is requested while another one for
// the same resource has not finished.
var ErrLoadInFlight = errors.New("load already in flight")

// Resource caches the result of a fetch function. A failed refresh keeps the
// previously loaded value visible, so screens can render stale data alongside
// the error.
type Resource[T any] struct {
	fetch func(ctx context.Context) (T, error)

	mu       sync.Mutex
	state    State
	value    T
	hasValue bool
	err      error
	seq      uint64
	inFlight bool
}

func NewResource[T any](fetch func(ctx context.Context) (T, error)) *Resource[T] {
	return &Resource[T]{fetch: fetch}
}

// Snapshot is a consistent view of the resource at one point in time.
type Snapshot[T any] struct {
	State    State
	Value    T
	HasValue bool
	Err      error
}

func (r *Resource[T]) Snapshot() Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot[T]{State: r.state, Value: r.value, HasValue: r.hasValue, Err: r.err}
}

// Load runs the fetch and applies the result, unless a newer load was issued
// meanwhile; superseded results are discarded without touching state.
func (r *Resource[T]) Load(ctx context.Context) error {
	r.mu.Lock()
	if r.inFlight {
		r.mu.Unlock()
		return ErrLoadInFlight
	}
	r.inFlight = true
	r.seq++
	seq := r.seq
	r.state = Loading
	r.mu.Unlock()

	value, err := r.fetch(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if seq != r.seq {
		// A newer load owns the resource now.
		return nil
	}
	r.inFlight = false
	if err != nil {
		r.state = Failed
		r.err = err
		return err
	}
	r.state = Loaded
	r.value = value
	r.hasValue = true
	r.err = nil
	return nil
}

// InvalidateAndReload supersedes any in-flight load and starts a fresh one.
func (r *Resource[T]) InvalidateAndReload(ctx context.Context) error {
	r.mu.Lock()
	r.seq++
	r.inFlight = false
	r.mu.Unlock()

	return r.Load(ctx)
}
