// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package semigroup

import "slices"

// Numeric is the constraint for the arithmetic semigroups.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum combines by addition.
func Sum[A Numeric]() Semigroup[A] {
	return Make(func(self, that A) A { return self + that })
}

// Product combines by multiplication.
func Product[A Numeric]() Semigroup[A] {
	return Make(func(self, that A) A { return self * that })
}

// SliceAppend combines by concatenation into a freshly allocated slice.
// Neither operand is mutated.
func SliceAppend[A any]() Semigroup[[]A] {
	return Make(func(self, that []A) []A {
		return slices.Concat(self, that)
	})
}

// BooleanAnd combines by conjunction.
var BooleanAnd = Make(func(self, that bool) bool { return self && that })

// BooleanOr combines by disjunction.
var BooleanOr = Make(func(self, that bool) bool { return self || that })

// BooleanXor combines by exclusive disjunction.
var BooleanXor = Make(func(self, that bool) bool { return self != that })

// BooleanEqv combines by equivalence, the negation of BooleanXor.
var BooleanEqv = Make(func(self, that bool) bool { return self == that })

// StringConcat combines by string concatenation.
var StringConcat = Make(func(self, that string) string { return self + that })
