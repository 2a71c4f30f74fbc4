// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dict

import (
	"iter"

	"code.hybscloud.com/alg/kind"
	"code.hybscloud.com/alg/option"
)

// Traverse applies f to every value in ascending key order and
// sequences the effects through app into one effect producing a
// map[string]kind.Erased of the results under the original keys. An
// empty dict yields app.Of of an empty map.
//
// As with the sequence traversal, short-circuiting belongs to the
// instance's Product, not to this engine.
func Traverse[V, F any](self map[string]V, app kind.Applicative[F], f func(V) F) F {
	keys := Keys(self)
	collected := kind.Traverse(app, eraseValues(self, keys), func(v kind.Erased) F {
		return f(v.(V))
	})
	return app.Map(collected, func(vs kind.Erased) kind.Erased {
		results := vs.([]kind.Erased)
		out := make(map[string]kind.Erased, len(results))
		for i, v := range results {
			out[keys[i]] = v
		}
		return out
	})
}

// Sequence is Traverse with the identity function.
func Sequence[F any](self map[string]F, app kind.Applicative[F]) F {
	return Traverse(self, app, func(fa F) F { return fa })
}

// TraverseOption is the typed option traversal: the result is present
// only when f is present for every value. Values are visited in
// ascending key order and the first absent result stops the iteration.
func TraverseOption[V, B any](self map[string]V, f func(V) option.Option[B]) option.Option[map[string]B] {
	out := make(map[string]B, len(self))
	for _, k := range Keys(self) {
		b, ok := f(self[k]).Get()
		if !ok {
			return option.None[map[string]B]()
		}
		out[k] = b
	}
	return option.Some(out)
}

// SequenceOption is TraverseOption with the identity function.
func SequenceOption[A any](self map[string]option.Option[A]) option.Option[map[string]A] {
	return TraverseOption(self, func(o option.Option[A]) option.Option[A] { return o })
}

// eraseValues iterates values as erased values in the given key order.
func eraseValues[V any](self map[string]V, keys []string) iter.Seq[kind.Erased] {
	return func(yield func(kind.Erased) bool) {
		for _, k := range keys {
			if !yield(self[k]) {
				return
			}
		}
	}
}
