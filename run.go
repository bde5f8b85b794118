// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnkit

// Run executes m with Identity as the final continuation.
func Run[A any](m Cont[A, A]) A {
	return m(Identity[A])
}

// RunWith executes m with a caller-supplied final continuation.
func RunWith[R, A any](m Cont[R, A], k func(A) R) R {
	return m(k)
}
