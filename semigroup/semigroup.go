// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package semigroup defines the associative combination capability,
// combinators that transform it (reversing, intercalating separators,
// order-driven min/max), and instances for the primitive types.
package semigroup

import (
	"iter"

	"code.hybscloud.com/alg/order"
	"code.hybscloud.com/alg/ordering"
)

// Semigroup combines values of type A associatively.
//
// Combine must satisfy combine(combine(a, b), c) == combine(a, combine(b, c))
// for all a, b, c. CombineMany reduces a starting value and a collection;
// it must equal iterating Combine pairwise left to right. Commutativity
// is not assumed.
type Semigroup[A any] struct {
	Combine     func(self, that A) A
	CombineMany func(self A, collection iter.Seq[A]) A
}

// Make builds a Semigroup from an associative combine function.
// CombineMany is the strict single-pass left fold of combine.
func Make[A any](combine func(self, that A) A) Semigroup[A] {
	return Semigroup[A]{
		Combine: combine,
		CombineMany: func(self A, collection iter.Seq[A]) A {
			acc := self
			for a := range collection {
				acc = combine(acc, a)
			}
			return acc
		},
	}
}

// Reverse swaps the operand order of Combine. CombineMany is rebuilt as
// the left fold of the swapped combine, which keeps it consistent with
// Combine by construction.
func Reverse[A any](s Semigroup[A]) Semigroup[A] {
	return Make(func(self, that A) A {
		return s.Combine(that, self)
	})
}

// Intercalate places middle between every pairwise combination. The
// separator never appears before the first or after the last element, so
// reducing "a", "b", "c" under the string concat semigroup with middle
// "," yields "a,b,c".
func Intercalate[A any](s Semigroup[A], middle A) Semigroup[A] {
	return Make(func(self, that A) A {
		return s.Combine(self, s.Combine(middle, that))
	})
}

// Min combines by keeping the smaller value under o. On ties the
// later operand wins, so folding a collection returns its last minimum.
// Note the asymmetry with order.Min, which keeps the first argument on
// ties; both rules are deliberate and documented where they live.
func Min[A any](o order.Order[A]) Semigroup[A] {
	return Make(func(self, that A) A {
		if o(self, that) == ordering.Less {
			return self
		}
		return that
	})
}

// Max combines by keeping the larger value under o. On ties the later
// operand wins, so folding a collection returns its last maximum.
func Max[A any](o order.Order[A]) Semigroup[A] {
	return Make(func(self, that A) A {
		if o(self, that) == ordering.Greater {
			return self
		}
		return that
	})
}

// First always keeps the first operand. CombineMany returns the starting
// value without consuming the collection.
func First[A any]() Semigroup[A] {
	return Semigroup[A]{
		Combine:     func(self, _ A) A { return self },
		CombineMany: func(self A, _ iter.Seq[A]) A { return self },
	}
}

// Last always keeps the last operand. CombineMany returns the final
// element of the collection, or the starting value when it is empty.
func Last[A any]() Semigroup[A] {
	return Make(func(_, that A) A { return that })
}

// Constant ignores both operands and always produces a.
func Constant[A any](a A) Semigroup[A] {
	return Semigroup[A]{
		Combine:     func(_, _ A) A { return a },
		CombineMany: func(_ A, _ iter.Seq[A]) A { return a },
	}
}
