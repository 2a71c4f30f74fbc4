// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package order defines the total-order capability and its combinators:
// reversing, projecting, lexicographic slice comparison, and lifting
// across tuples and structs with declaration-order priority.
package order

import (
	"cmp"
	"iter"
	"reflect"

	"code.hybscloud.com/alg/eq"
	"code.hybscloud.com/alg/kind"
	"code.hybscloud.com/alg/ordering"
)

// Order totally orders values of type A.
//
// An Order must be antisymmetric (compare(a, b) is the reverse of
// compare(b, a)), transitive, and reflexive (compare(a, a) == Equal).
// Construction trusts the caller; the laws are not checked.
type Order[A any] func(self, that A) ordering.Ordering

// Make wraps a comparison function as an Order. The laws above are the
// caller's responsibility.
func Make[A any](f func(self, that A) ordering.Ordering) Order[A] {
	return f
}

// FromOrdered is the natural Order of any primitive ordered type.
func FromOrdered[A cmp.Ordered]() Order[A] {
	return func(self, that A) ordering.Ordering {
		return ordering.Ordering(cmp.Compare(self, that))
	}
}

// Reverse flips the direction of an Order. Equal stays Equal.
func Reverse[A any](o Order[A]) Order[A] {
	return func(self, that A) ordering.Ordering {
		return o(that, self)
	}
}

// Contramap reuses an Order over B for values of type A via the
// projection f.
func Contramap[A, B any](o Order[B], f func(A) B) Order[A] {
	return func(self, that A) ordering.Ordering {
		return o(f(self), f(that))
	}
}

// Slice lifts an element Order to slices lexicographically: elements are
// compared pairwise until the first decisive result; if one slice is a
// prefix of the other, the shorter sorts first.
func Slice[A any](o Order[A]) Order[[]A] {
	return func(self, that []A) ordering.Ordering {
		n := min(len(self), len(that))
		for i := range n {
			if r := o(self[i], that[i]); r != ordering.Equal {
				return r
			}
		}
		return ordering.Ordering(cmp.Compare(len(self), len(that)))
	}
}

// All combines orders by priority: each is tried left to right and the
// first non-Equal result decides. Two values compare Equal only if every
// supplied Order agrees.
func All[A any](collection iter.Seq[Order[A]]) Order[A] {
	return func(self, that A) ordering.Ordering {
		for o := range collection {
			if r := o(self, that); r != ordering.Equal {
				return r
			}
		}
		return ordering.Equal
	}
}

// Tuple2 lifts two orders to pairs. The first position has priority; the
// second is consulted only on ties.
func Tuple2[A, B any](oa Order[A], ob Order[B]) Order[kind.Pair[A, B]] {
	return func(self, that kind.Pair[A, B]) ordering.Ordering {
		if r := oa(self.First, that.First); r != ordering.Equal {
			return r
		}
		return ob(self.Second, that.Second)
	}
}

// Tuple3 lifts three orders to triples with left-to-right priority.
func Tuple3[A, B, C any](oa Order[A], ob Order[B], oc Order[C]) Order[kind.Triple[A, B, C]] {
	return func(self, that kind.Triple[A, B, C]) ordering.Ordering {
		if r := oa(self.First, that.First); r != ordering.Equal {
			return r
		}
		if r := ob(self.Second, that.Second); r != ordering.Equal {
			return r
		}
		return oc(self.Third, that.Third)
	}
}

// Tuple lifts one erased Order per position to erased tuples with
// left-to-right priority. Both tuples must carry one value per supplied
// Order.
func Tuple(members ...Order[kind.Erased]) Order[[]kind.Erased] {
	return func(self, that []kind.Erased) ordering.Ordering {
		for i, o := range members {
			if r := o(self[i], that[i]); r != ordering.Equal {
				return r
			}
		}
		return ordering.Equal
	}
}

// Struct derives an Order for struct type S from erased per-field orders
// keyed by exported field name. Field declaration order is priority
// order: the first field whose Order is decisive determines the result,
// and fields without an entry are skipped.
func Struct[S any](fields map[string]Order[kind.Erased]) Order[S] {
	return func(self, that S) ordering.Ordering {
		sv := reflect.ValueOf(self)
		tv := reflect.ValueOf(that)
		t := sv.Type()
		for i := range t.NumField() {
			o, ok := fields[t.Field(i).Name]
			if !ok {
				continue
			}
			if r := o(sv.Field(i).Interface(), tv.Field(i).Interface()); r != ordering.Equal {
				return r
			}
		}
		return ordering.Equal
	}
}

// Erase adapts a typed Order to the erased form used by Tuple and
// Struct. Both arguments must hold values of type A.
func Erase[A any](o Order[A]) Order[kind.Erased] {
	return func(self, that kind.Erased) ordering.Ordering {
		return o(self.(A), that.(A))
	}
}

// ToEquivalence is the Equivalence implied by an Order: two values are
// equivalent exactly when they compare Equal.
func ToEquivalence[A any](o Order[A]) eq.Equivalence[A] {
	return func(self, that A) bool {
		return o(self, that) == ordering.Equal
	}
}
