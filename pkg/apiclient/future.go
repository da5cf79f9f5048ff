package apiclient

import (
	"context"
	"sync"
)

// Future is the pending result of a call started by Submit.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the call finishes or ctx ends. Giving up on a future does
// not cancel the call; cancel the context passed to Submit for that.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Executor tracks calls started by Submit so that a client can wait for them
// before it releases its transport.
type Executor struct {
	mu       sync.Mutex
	draining bool
	inFlight sync.WaitGroup
}

// Submit runs fn on a new goroutine and returns its future. Calls submitted
// while the executor drains still run but are not waited for.
func Submit[T any](e *Executor, ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	e.mu.Lock()
	tracked := !e.draining
	if tracked {
		e.inFlight.Add(1)
	}
	e.mu.Unlock()

	go func() {
		if tracked {
			defer e.inFlight.Done()
		}
		defer close(f.done)
		f.value, f.err = fn(ctx)
	}()

	return f
}

// Drain blocks until every tracked call has returned.
func (e *Executor) Drain() {
	e.mu.Lock()
	e.draining = true
	e.mu.Unlock()

	e.inFlight.Wait()
}
