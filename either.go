// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnkit

import (
	"fmt"
	"math"
	"reflect"
)

// Either represents a value that is either Left (failure) or Right (success).
// The zero value is Left holding the zero E.
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left creates a Left (failure) value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right creates a Right (success) value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// EitherOf returns Right(v) if v is truthy and Left(v) otherwise.
// Zero numbers, NaN, "", false and nil are falsy, so EitherOf(0) is a Left
// even when the caller meant a legitimate zero. See [Truthy].
func EitherOf[A any](v A) Either[A, A] {
	if Truthy(v) {
		return Right[A](v)
	}
	return Left[A, A](v)
}

// Truthy reports whether v counts as true for [EitherOf].
//
// nil, false, zero numbers, NaN and "" are falsy. Everything else is truthy,
// including empty non-nil slices and maps, structs and arrays.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return !rv.IsNil()
	default:
		return true
	}
}

// IsRight returns true if this is a Right value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// Map applies f to a Right value. A Left is returned unchanged and f is
// not called, so a failure reaches the end of a Map chain untouched.
func (e Either[E, A]) Map(f func(A) A) Either[E, A] {
	if !e.isRight {
		return e
	}
	return Right[E](f(e.right))
}

// Unwrap returns the innermost payload of a chain of nested Rights.
// Nesting stops at the first value that is not a Right; that value
// (possibly a Left) is returned. ok is false when e itself is a Left.
func (e Either[E, A]) Unwrap() (v any, ok bool) {
	if !e.isRight {
		return nil, false
	}
	v = e.right
	for {
		r, nested := v.(rightHolder)
		if !nested {
			return v, true
		}
		inner, isRight := r.rightValue()
		if !isRight {
			return v, true
		}
		v = inner
	}
}

// String renders Left(v) or Right(v).
func (e Either[E, A]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

type rightHolder interface {
	rightValue() (any, bool)
}

func (e Either[E, A]) rightValue() (any, bool) {
	if !e.isRight {
		return nil, false
	}
	return e.right, true
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a function to the Right value.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// FlatMapEither sequences two Either computations.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

// JoinEither removes one level of nesting.
func JoinEither[E, A any](e Either[E, Either[E, A]]) Either[E, A] {
	if e.isRight {
		return e.right
	}
	return Left[E, A](e.left)
}
