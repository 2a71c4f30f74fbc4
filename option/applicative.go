// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package option

import "code.hybscloud.com/alg/kind"

// Applicative is the option instance of the effect capability used by
// the container traversal engine. Product of anything with None is None,
// so a single absent element aborts a whole traversal.
var Applicative kind.Applicative[Option[kind.Erased]] = applicative{}

type applicative struct{}

func (applicative) Of(value kind.Erased) Option[kind.Erased] {
	return Some(value)
}

func (applicative) Map(fa Option[kind.Erased], f func(kind.Erased) kind.Erased) Option[kind.Erased] {
	if fa.some {
		return Some(f(fa.value))
	}
	return None[kind.Erased]()
}

func (applicative) Product(fa, fb Option[kind.Erased]) Option[kind.Erased] {
	if fa.some && fb.some {
		return Some[kind.Erased](kind.Pair[kind.Erased, kind.Erased]{First: fa.value, Second: fb.value})
	}
	return None[kind.Erased]()
}
