// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnkit

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotSettled is returned by Await when the context ends before the
// task settles. The returned error also wraps the context's error.
var ErrNotSettled = errors.New("fnkit: task not settled")

// Await forks t and blocks until it settles or ctx is done.
//
// A task that settles synchronously inside Fork is always reported, even
// if ctx is already done. If ctx wins, the forked task keeps running;
// its eventual outcome is dropped.
func Await[E, A any](ctx context.Context, t Task[E, A]) (Either[E, A], error) {
	ch := make(chan Either[E, A], 1)
	settle := Once(func(r Either[E, A]) { ch <- r })
	t.Settle(func(r Either[E, A]) { settle.Call(r) })

	select {
	case r := <-ch:
		return r, nil
	default:
	}
	select {
	case r := <-ch:
		return r, nil
	case <-ctx.Done():
		return Either[E, A]{}, fmt.Errorf("%w: %w", ErrNotSettled, ctx.Err())
	}
}

// AwaitValue is Await for tasks that reject with an error. The rejection
// comes back as the returned error.
func AwaitValue[A any](ctx context.Context, t Task[error, A]) (A, error) {
	r, err := Await(ctx, t)
	if err != nil {
		var zero A
		return zero, err
	}
	if e, rejected := r.GetLeft(); rejected {
		var zero A
		return zero, e
	}
	v, _ := r.GetRight()
	return v, nil
}
