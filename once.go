// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnkit

import (
	"sync/atomic"
)

// OneShot wraps a continuation so that it runs at most once.
// Safe for concurrent use: exactly one caller of Call wins.
type OneShot[A any] struct {
	used *atomic.Uintptr
	k    func(A)
}

// Once creates a OneShot around k.
func Once[A any](k func(A)) *OneShot[A] {
	return &OneShot[A]{used: new(atomic.Uintptr), k: k}
}

// Call invokes the continuation with v and returns true, or returns false
// without invoking it if the OneShot was already used.
func (o *OneShot[A]) Call(v A) bool {
	if o.used.Add(1) != 1 {
		return false
	}
	o.k(v)
	return true
}

// Used reports whether Call or Discard has happened.
func (o *OneShot[A]) Used() bool {
	return o.used.Load() != 0
}

// Discard marks the OneShot as used without invoking it.
func (o *OneShot[A]) Discard() {
	o.used.Store(1)
}

// OnceSettled wraps a reject/resolve pair so that together they settle at
// most once: the first call of either one goes through, every later call
// of either one is dropped.
//
// Fork functions are required to call exactly one continuation exactly
// once. OnceSettled enforces the "at most" half for fork functions that
// cannot guarantee it themselves, e.g. ones racing a timeout.
func OnceSettled[E, A any](reject func(E), resolve func(A)) (func(E), func(A)) {
	used := new(atomic.Uintptr)
	rej := &OneShot[E]{used: used, k: reject}
	res := &OneShot[A]{used: used, k: resolve}
	return func(e E) { rej.Call(e) }, func(a A) { res.Call(a) }
}
