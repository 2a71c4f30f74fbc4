// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

import "iter"

// Traverse applies f to every item in iteration order and sequences the
// resulting effects into one effect producing the collected results as a
// []Erased.
//
// An empty input yields app.Of of an empty slice, never an error. The
// engine only threads Of/Map/Product; whether an "absent" element effect
// aborts the whole traversal is decided by the instance's Product.
func Traverse[F any](app Applicative[F], items iter.Seq[Erased], f func(Erased) F) F {
	acc := app.Of([]Erased{})
	for item := range items {
		acc = app.Map(app.Product(acc, f(item)), appendPair)
	}
	return acc
}

// appendPair folds one Product result into the accumulated result slice.
// Named function rather than a closure so Traverse allocates one funcval
// per instantiation, not one per element.
func appendPair(v Erased) Erased {
	p := v.(Pair[Erased, Erased])
	return append(p.First.([]Erased), p.Second)
}
