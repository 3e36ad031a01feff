// Package pending holds the result of background work that the UI polls once
// per frame without blocking.
package pending

import "context"

type outcome[T any] struct {
	value T
	err   error
}

// Result is a one-shot slot filled by a goroutine. The zero value is empty.
// A Result is polled from a single goroutine (the UI loop).
type Result[T any] struct {
	ch     chan outcome[T]
	cancel context.CancelFunc
	got    *outcome[T]
}

// Start runs fn in a new goroutine and returns the slot its outcome lands in.
func Start[T any](ctx context.Context, fn func(context.Context) (T, error)) *Result[T] {
	ctx, cancel := context.WithCancel(ctx)
	r := &Result[T]{ch: make(chan outcome[T], 1), cancel: cancel}
	go func() {
		defer cancel()
		v, err := fn(ctx)
		r.ch <- outcome[T]{value: v, err: err}
	}()
	return r
}

// IsEmpty reports whether no work has been started, or its outcome was
// already taken.
func (r *Result[T]) IsEmpty() bool {
	return r == nil || (r.ch == nil && r.got == nil)
}

// IsLoading reports whether the work is still running.
func (r *Result[T]) IsLoading() bool {
	if r.IsEmpty() || r.got != nil {
		return false
	}
	select {
	case o := <-r.ch:
		r.got = &o
		return false
	default:
		return true
	}
}

// Take returns the outcome if it is ready. It succeeds at most once; after
// that the Result is empty again.
func (r *Result[T]) Take() (T, error, bool) {
	var zero T
	if r.IsLoading() || r.IsEmpty() {
		return zero, nil, false
	}
	o := *r.got
	r.got = nil
	r.ch = nil
	return o.value, o.err, true
}

// Cancel asks the running work to stop and empties the Result.
func (r *Result[T]) Cancel() {
	if r == nil {
		return
	}
	if r.cancel != nil {
		r.cancel()
	}
	r.ch = nil
	r.got = nil
}
