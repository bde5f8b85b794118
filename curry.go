// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnkit

import "slices"

// Variadic is a dynamically typed function, the common shape for Partial
// and Curry where the argument count is only known at run time.
type Variadic func(args ...any) any

type hole struct{}

// Hole marks an argument position in [Partial] left for a later call.
var Hole any = hole{}

// Partial binds args to fn. Each [Hole] in args is filled, left to right,
// with the arguments of a later call; arguments left over after every hole
// is filled are appended.
//
// Every call starts from the bound arguments as given to Partial, so calls
// do not see each other's fills.
func Partial(fn Variadic, args ...any) Variadic {
	bound := slices.Clone(args)
	return func(more ...any) any {
		filled := slices.Clone(bound)
		next := 0
		for i := 0; i < len(filled) && next < len(more); i++ {
			if _, ok := filled[i].(hole); ok {
				filled[i] = more[next]
				next++
			}
		}
		return fn(append(filled, more[next:]...)...)
	}
}

// Curry collects arguments across calls until at least arity of them have
// been seen, then calls fn with all of them. Until then each call returns
// another Variadic (as any) carrying the arguments so far.
//
//	add := Curry(3, func(a ...any) any { return a[0].(int) + a[1].(int) + a[2].(int) })
//	add(1, 2, 3)                                  // 6
//	add(1).(Variadic)(2).(Variadic)(3)            // 6
func Curry(arity int, fn Variadic) Variadic {
	var collect func(acc []any) Variadic
	collect = func(acc []any) Variadic {
		return func(args ...any) any {
			all := append(slices.Clone(acc), args...)
			if len(all) >= arity {
				return fn(all...)
			}
			return collect(all)
		}
	}
	return collect(nil)
}

// Curry2 turns a two-argument function into a chain of one-argument ones.
func Curry2[A, B, R any](fn func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return fn(a, b)
		}
	}
}

// Curry3 turns a three-argument function into a chain of one-argument ones.
func Curry3[A, B, C, R any](fn func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return fn(a, b, c)
			}
		}
	}
}

// Uncurry2 is the inverse of Curry2.
func Uncurry2[A, B, R any](fn func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return fn(a)(b)
	}
}
