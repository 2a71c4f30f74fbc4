// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import (
	"iter"

	"code.hybscloud.com/alg/kind"
	"code.hybscloud.com/alg/option"
)

// Traverse applies f to every element in sequence order and sequences
// the effects through app into one effect producing a []kind.Erased of
// the results. An empty sequence yields app.Of of an empty slice.
//
// Whether one absent element aborts the whole traversal is decided by
// the instance's Product, not here; see option.Applicative for the
// short-circuiting example. Callers needing typed results can use
// TraverseOption, or decode through app.Map.
func Traverse[A, F any](self []A, app kind.Applicative[F], f func(A) F) F {
	return kind.Traverse(app, eraseAll(self), func(v kind.Erased) F {
		return f(v.(A))
	})
}

// Sequence is Traverse with the identity function: a sequence of
// effects becomes one effect producing the sequence of results.
func Sequence[F any](self []F, app kind.Applicative[F]) F {
	return Traverse(self, app, func(fa F) F { return fa })
}

// TraverseOption is the typed option traversal: the result is present
// only when f is present for every element, with results in sequence
// order. The first absent element stops the iteration.
func TraverseOption[A, B any](self []A, f func(A) option.Option[B]) option.Option[[]B] {
	out := make([]B, 0, len(self))
	for _, a := range self {
		b, ok := f(a).Get()
		if !ok {
			return option.None[[]B]()
		}
		out = append(out, b)
	}
	return option.Some(out)
}

// SequenceOption is TraverseOption with the identity function.
func SequenceOption[A any](self []option.Option[A]) option.Option[[]A] {
	return TraverseOption(self, func(o option.Option[A]) option.Option[A] { return o })
}

// eraseAll iterates a typed slice as erased values.
func eraseAll[A any](self []A) iter.Seq[kind.Erased] {
	return func(yield func(kind.Erased) bool) {
		for _, a := range self {
			if !yield(a) {
				return
			}
		}
	}
}
