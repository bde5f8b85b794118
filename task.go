// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnkit

// Task is a deferred computation that either rejects with an E or
// resolves with an A.
//
// A Task is a description: building one, or deriving a new one with Map,
// Chain, Fold and friends, runs nothing. Work starts only when [Task.Fork]
// is called with concrete reject and resolve continuations, and it starts
// again from scratch on every Fork.
//
// The fork function given to [NewTask] must call exactly one of reject or
// resolve exactly once. Calling neither leaves every Task derived from it
// waiting forever; nothing detects or reports that. Calling both, or one
// twice, is undefined; wrap the pair with [OnceSettled] if that can happen.
//
// Failure is a value delivered to reject. No Task operation panics on a
// computation failure. The zero Task never settles.
type Task[E, A any] struct {
	run Cont[Unit, Either[E, A]]
}

// NewTask wraps a fork function.
func NewTask[E, A any](fork func(reject func(E), resolve func(A))) Task[E, A] {
	return Task[E, A]{run: Suspend(func(k func(Either[E, A]) Unit) Unit {
		fork(
			func(e E) { k(Left[E, A](e)) },
			func(a A) { k(Right[E](a)) },
		)
		return Unit{}
	})}
}

// Resolved returns a Task that resolves with a.
func Resolved[E, A any](a A) Task[E, A] {
	return Task[E, A]{run: Return[Unit](Right[E](a))}
}

// Rejected returns a Task that rejects with e.
func Rejected[E, A any](e E) Task[E, A] {
	return Task[E, A]{run: Return[Unit](Left[E, A](e))}
}

// FromEither returns a Task that settles with the given outcome.
func FromEither[E, A any](e Either[E, A]) Task[E, A] {
	return Task[E, A]{run: Return[Unit](e)}
}

// Fork runs the task. Exactly one of reject or resolve is called, on
// whatever goroutine the underlying fork function settles on.
func (t Task[E, A]) Fork(reject func(E), resolve func(A)) {
	t.cont()(func(r Either[E, A]) Unit {
		if r.isRight {
			resolve(r.right)
		} else {
			reject(r.left)
		}
		return Unit{}
	})
}

// Settle runs the task and delivers the outcome as an Either.
func (t Task[E, A]) Settle(k func(Either[E, A])) {
	t.cont()(func(r Either[E, A]) Unit {
		k(r)
		return Unit{}
	})
}

func (t Task[E, A]) cont() Cont[Unit, Either[E, A]] {
	if t.run == nil {
		return never[Unit, Either[E, A]]
	}
	return t.run
}

// Map transforms the resolved value. Rejections pass through unchanged.
func (t Task[E, A]) Map(f func(A) A) Task[E, A] {
	return MapTask(t, f)
}

// Chain runs f on the resolved value and continues with the Task it returns.
func (t Task[E, A]) Chain(f func(A) Task[E, A]) Task[E, A] {
	return ChainTask(t, f)
}

// Fold redirects each outcome into a new Task: f on rejection, g on
// resolution. It is the recovery point of a chain.
func (t Task[E, A]) Fold(f func(E) Task[E, A], g func(A) Task[E, A]) Task[E, A] {
	return FoldTask(t, f, g)
}

// Recover replaces a rejection with the Task f returns.
func (t Task[E, A]) Recover(f func(E) Task[E, A]) Task[E, A] {
	return FoldTask(t, f, Resolved[E, A])
}

// Tap calls fn with the resolved value and resolves with the same value.
func (t Task[E, A]) Tap(fn func(A)) Task[E, A] {
	return MapTask(t, Tap(fn))
}

// MapTask transforms the resolved value of t.
func MapTask[E, A, B any](t Task[E, A], f func(A) B) Task[E, B] {
	return Task[E, B]{run: ContMap(t.cont(), func(r Either[E, A]) Either[E, B] {
		return MapEither(r, f)
	})}
}

// MapRejected transforms the rejection value of t.
func MapRejected[E, F, A any](t Task[E, A], f func(E) F) Task[F, A] {
	return Task[F, A]{run: ContMap(t.cont(), func(r Either[E, A]) Either[F, A] {
		return MapLeftEither(r, f)
	})}
}

// ChainTask forks t and, once it resolves with x, forks f(x) with the same
// continuations. f is never called when t rejects.
func ChainTask[E, A, B any](t Task[E, A], f func(A) Task[E, B]) Task[E, B] {
	return FoldTask(t, Rejected[E, B], f)
}

// FoldTask forks t and continues with f(e) on rejection or g(a) on
// resolution. The rejection type may change, so a recovered chain can
// have a different failure type from the one it recovered.
func FoldTask[E, A, F, B any](t Task[E, A], f func(E) Task[F, B], g func(A) Task[F, B]) Task[F, B] {
	return Task[F, B]{run: ContBind(t.cont(), func(r Either[E, A]) Cont[Unit, Either[F, B]] {
		return MatchEither(r, f, g).cont()
	})}
}

// Ap resolves tf to a function, then forks ta and applies the function
// to its value. ta is forked only after tf resolves.
func Ap[E, A, B any](tf Task[E, func(A) B], ta Task[E, A]) Task[E, B] {
	return ChainTask(tf, func(f func(A) B) Task[E, B] {
		return MapTask(ta, f)
	})
}

// Concat resolves t, then other, and resolves with t's value followed by
// other's values. The single value of t becomes a one-element slice.
func Concat[E, A any](t Task[E, A], other Task[E, []A]) Task[E, []A] {
	return ConcatSlices(MapTask(t, func(a A) []A { return []A{a} }), other)
}

// ConcatSlices resolves t, then other, and resolves with both slices
// concatenated into a new slice.
func ConcatSlices[E, A any](t Task[E, []A], other Task[E, []A]) Task[E, []A] {
	return ChainTask(t, func(xs []A) Task[E, []A] {
		return MapTask(other, func(ys []A) []A {
			out := make([]A, 0, len(xs)+len(ys))
			out = append(out, xs...)
			return append(out, ys...)
		})
	})
}
