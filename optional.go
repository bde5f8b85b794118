// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnkit

import (
	"fmt"
	"reflect"
)

// Optional holds a value that may be absent.
//
// A value is absent when it is the nil value of a nilable type (pointer,
// interface, map, slice, channel, function) or when the Optional was built
// with [None]. The zero Optional is absent.
type Optional[A any] struct {
	value   A
	present bool
}

// OptionalOf wraps v as-is. A nil v yields an absent Optional.
func OptionalOf[A any](v A) Optional[A] {
	return Optional[A]{value: v, present: !isNil(v)}
}

// None returns an absent Optional.
func None[A any]() Optional[A] {
	return Optional[A]{}
}

// IsAbsent reports whether o holds no value.
func (o Optional[A]) IsAbsent() bool { return !o.present }

// IsPresent reports whether o holds a value.
func (o Optional[A]) IsPresent() bool { return o.present }

// Get returns the held value and true, or zero and false.
func (o Optional[A]) Get() (A, bool) {
	if !o.present {
		var zero A
		return zero, false
	}
	return o.value, true
}

// OrElse returns the held value, or def when absent.
func (o Optional[A]) OrElse(def A) A {
	if !o.present {
		return def
	}
	return o.value
}

// Map returns OptionalOf(f(v)), or an absent Optional without calling f.
func (o Optional[A]) Map(f func(A) A) Optional[A] {
	return MapOptional(o, f)
}

// Unwrap descends through Optionals nested inside o and returns the
// innermost one (as any). An Optional whose value is not an Optional is
// returned itself.
func (o Optional[A]) Unwrap() any {
	if o.present {
		if n, ok := any(o.value).(nestedOptional); ok {
			return n.unwrapOptional()
		}
	}
	return o
}

func (o Optional[A]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

type nestedOptional interface {
	unwrapOptional() any
}

func (o Optional[A]) unwrapOptional() any { return o.Unwrap() }

// MapOptional applies f to a present value and wraps the result with
// [OptionalOf], so f returning nil gives an absent Optional.
func MapOptional[A, B any](o Optional[A], f func(A) B) Optional[B] {
	if !o.present {
		return None[B]()
	}
	return OptionalOf(f(o.value))
}

// FlatMapOptional applies f to a present value without rewrapping.
func FlatMapOptional[A, B any](o Optional[A], f func(A) Optional[B]) Optional[B] {
	if !o.present {
		return None[B]()
	}
	return f(o.value)
}

// JoinOptional flattens one level of nesting. An absent outer Optional
// gives an absent result.
func JoinOptional[A any](o Optional[Optional[A]]) Optional[A] {
	if !o.present {
		return None[A]()
	}
	return o.value
}

func isNil[A any](v A) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
