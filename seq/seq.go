// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import (
	"slices"

	"code.hybscloud.com/alg/either"
	"code.hybscloud.com/alg/option"
)

// Map applies f to every element, preserving length and positions.
func Map[A, B any](self []A, f func(A) B) []B {
	out := make([]B, len(self))
	for i, a := range self {
		out[i] = f(a)
	}
	return out
}

// MapWithIndex is Map with the element index supplied to f.
func MapWithIndex[A, B any](self []A, f func(int, A) B) []B {
	out := make([]B, len(self))
	for i, a := range self {
		out[i] = f(i, a)
	}
	return out
}

// Filter keeps the elements satisfying pred, preserving relative order.
func Filter[A any](self []A, pred func(A) bool) []A {
	out := make([]A, 0, len(self))
	for _, a := range self {
		if pred(a) {
			out = append(out, a)
		}
	}
	return slices.Clip(out)
}

// FilterMap applies f to every element and keeps the present results,
// preserving relative order.
func FilterMap[A, B any](self []A, f func(A) option.Option[B]) []B {
	out := make([]B, 0, len(self))
	for _, a := range self {
		if b, ok := f(a).Get(); ok {
			out = append(out, b)
		}
	}
	return slices.Clip(out)
}

// Partition splits the elements by pred in a single pass, preserving
// relative order within each result. The first result holds the
// elements failing pred, the second those satisfying it.
func Partition[A any](self []A, pred func(A) bool) (excluded, satisfied []A) {
	excluded = []A{}
	satisfied = []A{}
	for _, a := range self {
		if pred(a) {
			satisfied = append(satisfied, a)
		} else {
			excluded = append(excluded, a)
		}
	}
	return excluded, satisfied
}

// PartitionMap applies f to every element in a single pass, routing Left
// results to the first result and Right results to the second. Relative
// order is preserved within each branch.
func PartitionMap[A, B, C any](self []A, f func(A) either.Either[B, C]) (lefts []B, rights []C) {
	lefts = []B{}
	rights = []C{}
	for _, a := range self {
		e := f(a)
		if r, ok := e.GetRight(); ok {
			rights = append(rights, r)
		} else if l, ok := e.GetLeft(); ok {
			lefts = append(lefts, l)
		}
	}
	return lefts, rights
}

// Separate splits a sequence of Eithers into the Left values and the
// Right values, preserving relative order within each branch.
func Separate[E, A any](self []either.Either[E, A]) ([]E, []A) {
	return PartitionMap(self, func(e either.Either[E, A]) either.Either[E, A] { return e })
}

// Reduce is the strict left fold in iteration order. An empty input
// returns zero unchanged.
func Reduce[A, B any](self []A, zero B, f func(B, A) B) B {
	acc := zero
	for _, a := range self {
		acc = f(acc, a)
	}
	return acc
}

// ReduceRight is the strict right fold: elements are consumed from the
// last to the first.
func ReduceRight[A, B any](self []A, zero B, f func(B, A) B) B {
	acc := zero
	for i := len(self) - 1; i >= 0; i-- {
		acc = f(acc, self[i])
	}
	return acc
}

// FlatMap applies f to every element and splices the results in order.
func FlatMap[A, B any](self []A, f func(A) []B) []B {
	out := []B{}
	for _, a := range self {
		out = append(out, f(a)...)
	}
	return out
}

// Flatten splices a sequence of sequences in order.
func Flatten[A any](self [][]A) []A {
	return FlatMap(self, func(s []A) []A { return s })
}

// Append returns a fresh sequence with last added at the end.
func Append[A any](self []A, last A) []A {
	out := make([]A, 0, len(self)+1)
	out = append(out, self...)
	return append(out, last)
}

// Prepend returns a fresh sequence with head added at the front.
func Prepend[A any](self []A, head A) []A {
	out := make([]A, 0, len(self)+1)
	out = append(out, head)
	return append(out, self...)
}

// Reverse returns the elements in opposite order.
func Reverse[A any](self []A) []A {
	out := make([]A, len(self))
	for i, a := range self {
		out[len(self)-1-i] = a
	}
	return out
}

// Head returns the first element, or None on an empty sequence.
func Head[A any](self []A) option.Option[A] {
	if len(self) == 0 {
		return option.None[A]()
	}
	return option.Some(self[0])
}

// Last returns the final element, or None on an empty sequence.
func Last[A any](self []A) option.Option[A] {
	if len(self) == 0 {
		return option.None[A]()
	}
	return option.Some(self[len(self)-1])
}

// Tail returns everything but the first element, or None on an empty
// sequence.
func Tail[A any](self []A) option.Option[[]A] {
	if len(self) == 0 {
		return option.None[[]A]()
	}
	return option.Some(slices.Clone(self[1:]))
}

// Init returns everything but the final element, or None on an empty
// sequence.
func Init[A any](self []A) option.Option[[]A] {
	if len(self) == 0 {
		return option.None[[]A]()
	}
	return option.Some(slices.Clone(self[:len(self)-1]))
}

// FindFirst returns the first element satisfying pred.
func FindFirst[A any](self []A, pred func(A) bool) option.Option[A] {
	for _, a := range self {
		if pred(a) {
			return option.Some(a)
		}
	}
	return option.None[A]()
}

// FindIndex returns the index of the first element satisfying pred.
func FindIndex[A any](self []A, pred func(A) bool) option.Option[int] {
	for i, a := range self {
		if pred(a) {
			return option.Some(i)
		}
	}
	return option.None[int]()
}
