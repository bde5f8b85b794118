// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnkit

// Unit is the informationless result type of side-effecting continuations.
type Unit = struct{}

// Cont is a single-continuation computation.
// Cont[R, A] produces a value of type A and hands it to k; R is whatever
// k returns to the caller once the rest of the computation is done.
//
// Task is a Cont whose value is a settled Either outcome.
type Cont[R, A any] func(k func(A) R) R

// Return lifts a plain value into a Cont that passes it straight to k.
func Return[R, A any](a A) Cont[R, A] {
	return func(k func(A) R) R {
		return k(a)
	}
}

// Suspend builds a Cont from a function that receives the continuation
// directly. Use it when the value is produced by a callback, not returned.
func Suspend[R, A any](f func(func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// never is a Cont that drops its continuation.
func never[R, A any](func(A) R) R {
	var zero R
	return zero
}
