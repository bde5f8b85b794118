// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnkit

// Resource handling for Task chains.

// BracketTask acquires a resource, uses it, and releases it whether use
// resolved or rejected. The bracket settles with use's outcome once
// release has resolved; a rejecting release replaces that outcome with
// its own rejection.
//
// If acquire rejects, neither use nor release runs.
func BracketTask[E, R, A any](
	acquire Task[E, R],
	release func(R) Task[E, Unit],
	use func(R) Task[E, A],
) Task[E, A] {
	return ChainTask(acquire, func(resource R) Task[E, A] {
		settled := Task[E, Either[E, A]]{run: ContMap(use(resource).cont(), Right[E, Either[E, A]])}
		return ChainTask(settled, func(result Either[E, A]) Task[E, A] {
			return ChainTask(release(resource), func(Unit) Task[E, A] {
				return FromEither(result)
			})
		})
	})
}

// OnRejected runs cleanup when t rejects and then rejects with the
// original value. A rejecting cleanup replaces it.
func OnRejected[E, A any](t Task[E, A], cleanup func(E) Task[E, Unit]) Task[E, A] {
	return t.Recover(func(e E) Task[E, A] {
		return ChainTask(cleanup(e), func(Unit) Task[E, A] {
			return Rejected[E, A](e)
		})
	})
}
