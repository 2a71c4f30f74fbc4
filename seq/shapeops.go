// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import (
	"slices"

	"code.hybscloud.com/alg/kind"
)

// ChunksOf splits the sequence into consecutive pieces of length n; the
// final piece is shorter when the length is not evenly divisible. Any
// n < 1 is normalized to 1. An empty input yields zero chunks, not one
// empty chunk.
func ChunksOf[A any](self []A, n int) [][]A {
	if n < 1 {
		n = 1
	}
	out := make([][]A, 0, (len(self)+n-1)/n)
	for lo := 0; lo < len(self); lo += n {
		hi := min(lo+n, len(self))
		out = append(out, slices.Clone(self[lo:hi]))
	}
	return out
}

// Rotate cyclically shifts the elements so that the last n move to the
// front. n is normalized modulo the length, negative n rotates the other
// way, and rotating an empty sequence is a no-op.
func Rotate[A any](self []A, n int) []A {
	if len(self) == 0 {
		return []A{}
	}
	m := n % len(self)
	if m < 0 {
		m += len(self)
	}
	cut := len(self) - m
	return slices.Concat(self[cut:], self[:cut])
}

// Zip pairs elements positionally, truncating to the shorter input.
func Zip[A, B any](self []A, that []B) []kind.Pair[A, B] {
	return ZipWith(self, that, func(a A, b B) kind.Pair[A, B] {
		return kind.Pair[A, B]{First: a, Second: b}
	})
}

// ZipWith combines elements positionally with f, truncating to the
// shorter input. Nothing is ever padded.
func ZipWith[A, B, C any](self []A, that []B, f func(A, B) C) []C {
	n := min(len(self), len(that))
	out := make([]C, n)
	for i := range n {
		out[i] = f(self[i], that[i])
	}
	return out
}

// Unzip splits a sequence of pairs into its component sequences.
func Unzip[A, B any](self []kind.Pair[A, B]) ([]A, []B) {
	firsts := make([]A, len(self))
	seconds := make([]B, len(self))
	for i, p := range self {
		firsts[i] = p.First
		seconds[i] = p.Second
	}
	return firsts, seconds
}

// Span splits at the first element failing pred: the first result is
// the longest prefix satisfying it, the second is the remainder. The
// predicate runs left to right and is not consulted past the first
// failure.
func Span[A any](self []A, pred func(A) bool) (init, rest []A) {
	i := 0
	for ; i < len(self); i++ {
		if !pred(self[i]) {
			break
		}
	}
	return slices.Clone(self[:i]), slices.Clone(self[i:])
}

// TakeWhile returns the longest prefix satisfying pred.
func TakeWhile[A any](self []A, pred func(A) bool) []A {
	init, _ := Span(self, pred)
	return init
}

// DropWhile returns the remainder after the longest prefix satisfying
// pred.
func DropWhile[A any](self []A, pred func(A) bool) []A {
	_, rest := Span(self, pred)
	return rest
}
