// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package option defines the optional-value sum type consumed by the
// safe accessors and filtering operations of the container modules.
package option

// Option represents a value that is either present (Some) or absent
// (None).
type Option[A any] struct {
	value A
	some  bool
}

// Some creates a present value.
func Some[A any](value A) Option[A] {
	return Option[A]{value: value, some: true}
}

// None creates an absent value.
func None[A any]() Option[A] {
	return Option[A]{}
}

// FromPredicate returns Some(a) when pred holds for a, otherwise None.
func FromPredicate[A any](a A, pred func(A) bool) Option[A] {
	if pred(a) {
		return Some(a)
	}
	return None[A]()
}

// IsSome returns true if the value is present.
func (o Option[A]) IsSome() bool {
	return o.some
}

// IsNone returns true if the value is absent.
func (o Option[A]) IsNone() bool {
	return !o.some
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.some {
		return o.value, true
	}
	var zero A
	return zero, false
}

// GetOrElse returns the value when present, otherwise fallback.
func (o Option[A]) GetOrElse(fallback A) A {
	if o.some {
		return o.value
	}
	return fallback
}

// OrElse returns o when present, otherwise that.
func (o Option[A]) OrElse(that Option[A]) Option[A] {
	if o.some {
		return o
	}
	return that
}

// Filter keeps a present value only when pred holds for it.
func (o Option[A]) Filter(pred func(A) bool) Option[A] {
	if o.some && pred(o.value) {
		return o
	}
	return None[A]()
}

// Match pattern matches on the Option, calling onNone or onSome.
func Match[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// Map applies a function to a present value.
func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.some {
		return Some(f(o.value))
	}
	return None[B]()
}

// FlatMap sequences two optional computations.
func FlatMap[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.some {
		return f(o.value)
	}
	return None[B]()
}
