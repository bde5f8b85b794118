// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fnkit provides generic function combinators and three container
// types for chaining transformations without unwrapping: [Optional],
// [Either] and [Task].
//
// # Combinators
//
// Composition and identity:
//
//   - [Compose], [Pipe]: Right-to-left and left-to-right composition of func(A) A
//   - [Compose2], [Pipe2]: Two-step composition across types
//   - [Identity], [Tap]: Pass-through, pass-through with a side effect
//   - [Functionalize]: Freeze a call into a zero-argument thunk
//
// Partial application:
//
//   - [Partial]: Bind arguments, leaving [Hole] positions for later calls
//   - [Curry]: Collect arguments until an explicit arity is reached
//   - [Curry2], [Curry3], [Uncurry2]: Statically typed currying
//
// Branching:
//
//   - [Alt], [And]: Short-circuit predicate combinators
//   - [Const]: A predicate from a plain boolean
//   - [Then], [IfElse]: Predicate-gated transforms
//   - [Cond], [Match]: First matching [Clause] wins
//   - [When]: Apply a transform while a predicate holds
//   - [Seq], [Fork]: Fan a value out to several functions
//
// # Optional
//
// [Optional] holds a value that may be absent. Nil values of nilable types
// are absent, so OptionalOf(ptr) is absent exactly when ptr is nil.
//
//   - [OptionalOf], [None]: Constructors
//   - [Optional.Map], [MapOptional], [FlatMapOptional]: Absent values skip f
//   - [JoinOptional], [Optional.Unwrap]: Remove nesting
//
// # Either
//
// [Either] is Left (failure) or Right (success). Map only touches Right,
// so once a chain produces a Left that Left reaches the end unchanged.
//
//   - [Left], [Right]: Constructors
//   - [EitherOf]: Right for truthy values, Left otherwise (see [Truthy])
//   - [Either.Map], [MapEither], [FlatMapEither], [MapLeftEither]
//   - [MatchEither]: Pattern matching
//   - [JoinEither], [Either.Unwrap]: Remove nesting
//
// # Task
//
// [Task] describes a computation that either rejects with E or resolves
// with A. Nothing runs until [Task.Fork] supplies the reject and resolve
// continuations. Rejection is a value; there is no implicit panic path.
//
//   - [NewTask], [Resolved], [Rejected], [FromEither]: Constructors
//   - [Task.Map], [MapTask], [MapRejected]: Transform one branch
//   - [Task.Chain], [ChainTask]: Sequence; the right side forks after the left resolves
//   - [Ap], [Concat], [ConcatSlices]: Combine two tasks in sequence
//   - [Task.Fold], [FoldTask], [Task.Recover]: Redirect either branch into a new Task
//   - [BracketTask], [OnRejected]: Guaranteed release and cleanup
//   - [OnceSettled]: Enforce at-most-once settlement of a reject/resolve pair
//
// A Task is a [Cont] whose value is the settled [Either]. The Cont core
// ([Return], [Suspend], [ContBind], [ContMap], [ContThen], [Run], [RunWith])
// is exported for building other continuation-passing pipelines.
//
// # Host asynchrony
//
// Task has no scheduler. Concurrency comes from the fork function or from
// a [Promise] adapted with [FromPromised]. [Future] is a goroutine-backed
// Promise; [Async] starts one and [Attempt] wraps one in a Task.
// [Await] blocks on a Task with a [context.Context].
//
// # Logging
//
// [FnLog] and [FnError] return thunks that write a line to a [Console]
// only when called. The default Console writes to [log/slog].
//
// # Example
//
//	fetch := func(id int) fnkit.Task[error, string] {
//		return fnkit.Attempt(ctx, func(ctx context.Context) (string, error) {
//			return lookup(ctx, id)
//		})
//	}
//
//	name := fnkit.ChainTask(fnkit.Resolved[error](7), fetch).
//		Map(strings.ToUpper).
//		Recover(func(error) fnkit.Task[error, string] {
//			return fnkit.Resolved[error]("anonymous")
//		})
//
//	v, err := fnkit.AwaitValue(ctx, name)
package fnkit
