// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnkit

import "slices"

// Predicate reports whether a value satisfies a condition.
type Predicate[A any] func(A) bool

// Identity returns its argument.
func Identity[A any](a A) A {
	return a
}

// Const returns a predicate that ignores its argument and reports ok.
// It stands in for a plain boolean wherever a Predicate is expected.
func Const[A any](ok bool) Predicate[A] {
	return func(A) bool {
		return ok
	}
}

// Compose composes fns right to left: Compose(f, g)(x) == f(g(x)).
// With no functions it is Identity. fns is copied, never reordered.
func Compose[A any](fns ...func(A) A) func(A) A {
	fns = slices.Clone(fns)
	return func(a A) A {
		for i := len(fns) - 1; i >= 0; i-- {
			a = fns[i](a)
		}
		return a
	}
}

// Pipe composes fns left to right: Pipe(f, g)(x) == g(f(x)).
func Pipe[A any](fns ...func(A) A) func(A) A {
	fns = slices.Clone(fns)
	return func(a A) A {
		for _, fn := range fns {
			a = fn(a)
		}
		return a
	}
}

// Compose2 is Compose for two functions of different types.
func Compose2[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Pipe2 is Pipe for two functions of different types.
func Pipe2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Tap calls fn for its side effect and returns the value unchanged.
// A nil fn is skipped.
func Tap[A any](fn func(A)) func(A) A {
	return func(a A) A {
		if fn != nil {
			fn(a)
		}
		return a
	}
}

// Alt holds when f or g holds. g is not evaluated when f holds.
func Alt[A any](f, g Predicate[A]) Predicate[A] {
	return func(a A) bool {
		return f(a) || g(a)
	}
}

// And holds when both f and g hold. g is not evaluated when f fails.
func And[A any](f, g Predicate[A]) Predicate[A] {
	return func(a A) bool {
		return f(a) && g(a)
	}
}

// Then applies fn when pred holds and returns the value unchanged otherwise.
func Then[A any](pred Predicate[A], fn func(A) A) func(A) A {
	return func(a A) A {
		if pred(a) {
			return fn(a)
		}
		return a
	}
}

// IfElse applies f when pred holds and g otherwise.
func IfElse[A, B any](pred Predicate[A], f, g func(A) B) func(A) B {
	return func(a A) B {
		if pred(a) {
			return f(a)
		}
		return g(a)
	}
}

// Clause pairs a condition with the action taken when it holds.
type Clause[A, B any] struct {
	When Predicate[A]
	Do   func(A) B
}

// Case builds a Clause.
func Case[A, B any](when Predicate[A], do func(A) B) Clause[A, B] {
	return Clause[A, B]{When: when, Do: do}
}

// Cond runs the action of the first clause whose condition holds.
// When no clause matches the value is returned unchanged.
func Cond[A any](clauses ...Clause[A, A]) func(A) A {
	return Match(Identity[A], clauses...)
}

// Match is Cond with a result type of its own. otherwise handles values
// no clause matches.
func Match[A, B any](otherwise func(A) B, clauses ...Clause[A, B]) func(A) B {
	clauses = slices.Clone(clauses)
	return func(a A) B {
		for _, c := range clauses {
			if c.When(a) {
				return c.Do(a)
			}
		}
		return otherwise(a)
	}
}

// When applies fn repeatedly while pred holds and returns the first value
// for which it does not. The loop only ends if fn eventually breaks pred.
func When[A any](pred Predicate[A], fn func(A) A) func(A) A {
	return func(a A) A {
		for pred(a) {
			a = fn(a)
		}
		return a
	}
}

// Seq calls every fn with the value, in order, for side effects only.
func Seq[A any](fns ...func(A)) func(A) {
	fns = slices.Clone(fns)
	return func(a A) {
		for _, fn := range fns {
			fn(a)
		}
	}
}

// Fork feeds the value to f and g independently and combines the results
// with join.
func Fork[A, B, C, R any](join func(B, C) R, f func(A) B, g func(A) C) func(A) R {
	return func(a A) R {
		return join(f(a), g(a))
	}
}

// Functionalize returns a thunk that calls fn(args...) each time it runs.
func Functionalize[A, R any](fn func(...A) R, args ...A) func() R {
	args = slices.Clone(args)
	return func() R {
		return fn(args...)
	}
}
