// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import "code.hybscloud.com/alg/kind"

// Applicative is the right-biased either instance of the effect
// capability used by the container traversal engine. Product keeps the
// first Left it sees, so a traversal reports the leftmost failure.
func Applicative[E any]() kind.Applicative[Either[E, kind.Erased]] {
	return applicative[E]{}
}

type applicative[E any] struct{}

func (applicative[E]) Of(value kind.Erased) Either[E, kind.Erased] {
	return Right[E](value)
}

func (applicative[E]) Map(fa Either[E, kind.Erased], f func(kind.Erased) kind.Erased) Either[E, kind.Erased] {
	return Map(fa, f)
}

func (applicative[E]) Product(fa, fb Either[E, kind.Erased]) Either[E, kind.Erased] {
	if !fa.isRight {
		return Left[E, kind.Erased](fa.left)
	}
	if !fb.isRight {
		return Left[E, kind.Erased](fb.left)
	}
	return Right[E](kind.Erased(kind.Pair[kind.Erased, kind.Erased]{First: fa.right, Second: fb.right}))
}
