// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package eq defines the equivalence capability: deciding whether two
// values of a type are equal, and combinators that lift equivalences
// across slices, tuples, and structs.
package eq

import (
	"iter"
	"reflect"

	"code.hybscloud.com/alg/kind"
)

// Equivalence decides whether two values of type A are equal.
//
// An Equivalence must be reflexive (f(x, x) == true), symmetric
// (f(x, y) == f(y, x)) and transitive. Construction trusts the caller;
// the laws are not checked.
type Equivalence[A any] func(self, that A) bool

// Make wraps a predicate as an Equivalence. It exists for symmetry with
// the other capability constructors; the laws above are the caller's
// responsibility.
func Make[A any](f func(self, that A) bool) Equivalence[A] {
	return f
}

// Default is the equivalence given by the built-in == operator.
func Default[A comparable]() Equivalence[A] {
	return func(self, that A) bool { return self == that }
}

// Contramap reuses an Equivalence over B for values of type A via the
// projection f.
func Contramap[A, B any](e Equivalence[B], f func(A) B) Equivalence[A] {
	return func(self, that A) bool {
		return e(f(self), f(that))
	}
}

// All combines equivalences by conjunction: two values are equivalent
// only if every supplied equivalence agrees. Evaluation is left to right
// and stops at the first disagreement.
func All[A any](collection iter.Seq[Equivalence[A]]) Equivalence[A] {
	return func(self, that A) bool {
		for e := range collection {
			if !e(self, that) {
				return false
			}
		}
		return true
	}
}

// Slice lifts an element Equivalence to slices: equal length and
// pointwise equivalent elements.
func Slice[A any](e Equivalence[A]) Equivalence[[]A] {
	return func(self, that []A) bool {
		if len(self) != len(that) {
			return false
		}
		for i := range self {
			if !e(self[i], that[i]) {
				return false
			}
		}
		return true
	}
}

// Tuple2 lifts two equivalences to pairs, position by position.
func Tuple2[A, B any](ea Equivalence[A], eb Equivalence[B]) Equivalence[kind.Pair[A, B]] {
	return func(self, that kind.Pair[A, B]) bool {
		return ea(self.First, that.First) && eb(self.Second, that.Second)
	}
}

// Tuple3 lifts three equivalences to triples, position by position.
func Tuple3[A, B, C any](ea Equivalence[A], eb Equivalence[B], ec Equivalence[C]) Equivalence[kind.Triple[A, B, C]] {
	return func(self, that kind.Triple[A, B, C]) bool {
		return ea(self.First, that.First) && eb(self.Second, that.Second) && ec(self.Third, that.Third)
	}
}

// Tuple lifts one erased equivalence per position to erased tuples.
// Both tuples must carry exactly one value per supplied equivalence;
// a length mismatch is never equivalent.
func Tuple(members ...Equivalence[kind.Erased]) Equivalence[[]kind.Erased] {
	return func(self, that []kind.Erased) bool {
		if len(self) != len(members) || len(that) != len(members) {
			return false
		}
		for i, e := range members {
			if !e(self[i], that[i]) {
				return false
			}
		}
		return true
	}
}

// Struct derives an Equivalence for struct type S from erased per-field
// equivalences keyed by exported field name. Fields without an entry are
// ignored. Evaluation walks fields in declaration order and stops at the
// first disagreement.
func Struct[S any](fields map[string]Equivalence[kind.Erased]) Equivalence[S] {
	return func(self, that S) bool {
		sv := reflect.ValueOf(self)
		tv := reflect.ValueOf(that)
		t := sv.Type()
		for i := range t.NumField() {
			e, ok := fields[t.Field(i).Name]
			if !ok {
				continue
			}
			if !e(sv.Field(i).Interface(), tv.Field(i).Interface()) {
				return false
			}
		}
		return true
	}
}

// Erase adapts a typed Equivalence to the erased form used by Tuple and
// Struct. Both arguments must hold values of type A.
func Erase[A any](e Equivalence[A]) Equivalence[kind.Erased] {
	return func(self, that kind.Erased) bool {
		return e(self.(A), that.(A))
	}
}
