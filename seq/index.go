// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import (
	"slices"

	"code.hybscloud.com/alg/option"
)

// Bounds-checked indexing. Every safe accessor reports an out-of-range
// index as None; UnsafeGet is the single aborting variant.

// Get returns the element at index, or None when index is out of range.
func Get[A any](self []A, index int) option.Option[A] {
	if index < 0 || index >= len(self) {
		return option.None[A]()
	}
	return option.Some(self[index])
}

// UnsafeGet returns the element at index and panics when index is out
// of range. Use Get unless the bound has already been established.
func UnsafeGet[A any](self []A, index int) A {
	if index < 0 || index >= len(self) {
		panic("seq: index out of range")
	}
	return self[index]
}

// ModifyAt applies f to the element at index, returning the updated
// sequence, or None when index is out of range.
func ModifyAt[A any](self []A, index int, f func(A) A) option.Option[[]A] {
	if index < 0 || index >= len(self) {
		return option.None[[]A]()
	}
	out := slices.Clone(self)
	out[index] = f(out[index])
	return option.Some(out)
}

// ReplaceAt swaps in b at index, returning the updated sequence, or
// None when index is out of range.
func ReplaceAt[A any](self []A, index int, b A) option.Option[[]A] {
	return ModifyAt(self, index, func(A) A { return b })
}

// RemoveAt deletes the element at index, returning the shortened
// sequence, or None when index is out of range.
func RemoveAt[A any](self []A, index int) option.Option[[]A] {
	if index < 0 || index >= len(self) {
		return option.None[[]A]()
	}
	out := make([]A, 0, len(self)-1)
	out = append(out, self[:index]...)
	out = append(out, self[index+1:]...)
	return option.Some(out)
}

// InsertAt places b at index, shifting later elements right. Valid
// indices run from 0 through len(self) inclusive, so appending at the
// end is allowed; anything else returns None.
func InsertAt[A any](self []A, index int, b A) option.Option[[]A] {
	if index < 0 || index > len(self) {
		return option.None[[]A]()
	}
	out := make([]A, 0, len(self)+1)
	out = append(out, self[:index]...)
	out = append(out, b)
	out = append(out, self[index:]...)
	return option.Some(out)
}

// Take returns the first n elements, the whole sequence when n exceeds
// its length, and an empty sequence when n < 1.
func Take[A any](self []A, n int) []A {
	if n < 0 {
		n = 0
	}
	n = min(n, len(self))
	return slices.Clone(self[:n])
}

// Drop returns everything after the first n elements, with n clamped to
// [0, len(self)].
func Drop[A any](self []A, n int) []A {
	if n < 0 {
		n = 0
	}
	n = min(n, len(self))
	return slices.Clone(self[n:])
}
