// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package monoid extends the semigroup capability with an identity
// element, enabling reductions that start from nothing.
package monoid

import (
	"iter"

	"code.hybscloud.com/alg/ordering"
	"code.hybscloud.com/alg/semigroup"
)

// Monoid is a Semigroup with an identity element.
//
// Empty must satisfy combine(Empty, x) == combine(x, Empty) == x for
// all x. Construction trusts the caller; the law is not checked.
type Monoid[A any] struct {
	semigroup.Semigroup[A]
	Empty A
}

// FromSemigroup attaches an identity element to a Semigroup.
func FromSemigroup[A any](s semigroup.Semigroup[A], empty A) Monoid[A] {
	return Monoid[A]{Semigroup: s, Empty: empty}
}

// CombineAll reduces a collection starting from the identity. An empty
// collection yields Empty.
func CombineAll[A any](m Monoid[A], collection iter.Seq[A]) A {
	return m.CombineMany(m.Empty, collection)
}

// Reverse swaps the operand order of Combine. The identity is unchanged;
// it remains an identity because it commutes with everything.
func Reverse[A any](m Monoid[A]) Monoid[A] {
	return FromSemigroup(semigroup.Reverse(m.Semigroup), m.Empty)
}

// OrderingCombine is the monoid behind priority-ordered comparison
// chains: the first non-Equal operand decides, and Equal is the
// identity.
var OrderingCombine = FromSemigroup(
	semigroup.Make(ordering.Combine),
	ordering.Equal,
)
