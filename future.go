// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnkit

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrAlreadySettled is returned when a Future is resolved or rejected
// after it has already settled.
var ErrAlreadySettled = errors.New("fnkit: future already settled")

// Promise is an asynchronous result with separate success and failure
// channels. It is the host primitive [FromPromised] adapts into a Task.
//
// Each handler must be called at most once, and only one of the two
// channels ever fires.
type Promise[E, A any] interface {
	Then(onResolve func(A)) Promise[E, A]
	Catch(onReject func(E)) Promise[E, A]
}

// FutureState is the settlement state of a Future.
type FutureState uint8

const (
	FuturePending FutureState = iota
	FutureResolved
	FutureRejected
)

func (s FutureState) String() string {
	switch s {
	case FuturePending:
		return "pending"
	case FutureResolved:
		return "resolved"
	case FutureRejected:
		return "rejected"
	default:
		return fmt.Sprintf("FutureState(%d)", uint8(s))
	}
}

// Future is a goroutine-backed Promise[error, A].
//
// Handlers registered before settlement run on the settling goroutine, in
// registration order. Handlers registered after settlement run immediately
// on the registering goroutine.
type Future[A any] struct {
	mu        sync.Mutex
	state     FutureState
	value     A
	err       error
	done      chan struct{}
	onResolve []func(A)
	onReject  []func(error)
}

// NewFuture returns a pending Future and the functions that settle it.
// Only the first settle call wins; later ones return ErrAlreadySettled.
func NewFuture[A any]() (f *Future[A], resolve func(A) error, reject func(error) error) {
	f = &Future[A]{done: make(chan struct{})}
	return f, f.resolve, f.reject
}

// Async runs fn on a new goroutine and returns a Future of its result.
// A context that is already done rejects with its error without running fn.
func Async[A any](ctx context.Context, fn func(context.Context) (A, error)) *Future[A] {
	f, resolve, reject := NewFuture[A]()
	if err := ctx.Err(); err != nil {
		_ = reject(err)
		return f
	}
	go func() {
		v, err := fn(ctx)
		if err != nil {
			_ = reject(err)
			return
		}
		_ = resolve(v)
	}()
	return f
}

// Then registers a success handler.
func (f *Future[A]) Then(onResolve func(A)) Promise[error, A] {
	f.mu.Lock()
	switch f.state {
	case FuturePending:
		f.onResolve = append(f.onResolve, onResolve)
		f.mu.Unlock()
	case FutureResolved:
		v := f.value
		f.mu.Unlock()
		onResolve(v)
	default:
		f.mu.Unlock()
	}
	return f
}

// Catch registers a failure handler.
func (f *Future[A]) Catch(onReject func(error)) Promise[error, A] {
	f.mu.Lock()
	switch f.state {
	case FuturePending:
		f.onReject = append(f.onReject, onReject)
		f.mu.Unlock()
	case FutureRejected:
		err := f.err
		f.mu.Unlock()
		onReject(err)
	default:
		f.mu.Unlock()
	}
	return f
}

// State returns the current settlement state.
func (f *Future[A]) State() FutureState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Done is closed once the Future settles.
func (f *Future[A]) Done() <-chan struct{} {
	return f.done
}

// Result returns the settled value and error. It is only meaningful
// after Done is closed.
func (f *Future[A]) Result() (A, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value, f.err
}

func (f *Future[A]) resolve(v A) error {
	f.mu.Lock()
	if f.state != FuturePending {
		f.mu.Unlock()
		return ErrAlreadySettled
	}
	f.state, f.value = FutureResolved, v
	handlers := f.onResolve
	f.onResolve, f.onReject = nil, nil
	close(f.done)
	f.mu.Unlock()

	for _, h := range handlers {
		h(v)
	}
	return nil
}

func (f *Future[A]) reject(err error) error {
	f.mu.Lock()
	if f.state != FuturePending {
		f.mu.Unlock()
		return ErrAlreadySettled
	}
	f.state, f.err = FutureRejected, err
	handlers := f.onReject
	f.onResolve, f.onReject = nil, nil
	close(f.done)
	f.mu.Unlock()

	for _, h := range handlers {
		h(err)
	}
	return nil
}

// FromPromised adapts a Promise-returning function into a Task-returning
// one. fn is not called until the Task is forked, and it is called again
// on every Fork.
func FromPromised[P, E, A any](fn func(P) Promise[E, A]) func(P) Task[E, A] {
	return func(p P) Task[E, A] {
		return NewTask(func(reject func(E), resolve func(A)) {
			fn(p).Then(resolve).Catch(reject)
		})
	}
}

// Attempt returns a Task that runs fn on its own goroutine each time the
// Task is forked, resolving with its value or rejecting with its error.
func Attempt[A any](ctx context.Context, fn func(context.Context) (A, error)) Task[error, A] {
	return FromPromised(func(ctx context.Context) Promise[error, A] {
		return Async(ctx, fn)
	})(ctx)
}
