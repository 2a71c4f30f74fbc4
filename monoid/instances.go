// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monoid

import "code.hybscloud.com/alg/semigroup"

// Sum is the addition monoid with identity 0.
func Sum[A semigroup.Numeric]() Monoid[A] {
	return FromSemigroup(semigroup.Sum[A](), 0)
}

// Product is the multiplication monoid with identity 1.
func Product[A semigroup.Numeric]() Monoid[A] {
	return FromSemigroup(semigroup.Product[A](), 1)
}

// SliceConcat is the concatenation monoid with the empty slice as
// identity.
func SliceConcat[A any]() Monoid[[]A] {
	return FromSemigroup(semigroup.SliceAppend[A](), []A{})
}

// BooleanAnd is the conjunction monoid with identity true.
var BooleanAnd = FromSemigroup(semigroup.BooleanAnd, true)

// BooleanOr is the disjunction monoid with identity false.
var BooleanOr = FromSemigroup(semigroup.BooleanOr, false)

// BooleanXor is the exclusive-disjunction monoid with identity false.
var BooleanXor = FromSemigroup(semigroup.BooleanXor, false)

// BooleanEqv is the equivalence monoid with identity true.
var BooleanEqv = FromSemigroup(semigroup.BooleanEqv, true)

// StringConcat is the string concatenation monoid with identity "".
var StringConcat = FromSemigroup(semigroup.StringConcat, "")
