// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package semigroup

import (
	"reflect"

	"code.hybscloud.com/alg/kind"
)

// Structural lifting: a Semigroup per field or position yields a
// Semigroup over the composite, combining pointwise. Associativity of
// the composite follows from per-field associativity because the fields
// never interact.

// Tuple2 combines pairs position by position.
func Tuple2[A, B any](sa Semigroup[A], sb Semigroup[B]) Semigroup[kind.Pair[A, B]] {
	return Make(func(self, that kind.Pair[A, B]) kind.Pair[A, B] {
		return kind.Pair[A, B]{
			First:  sa.Combine(self.First, that.First),
			Second: sb.Combine(self.Second, that.Second),
		}
	})
}

// Tuple3 combines triples position by position.
func Tuple3[A, B, C any](sa Semigroup[A], sb Semigroup[B], sc Semigroup[C]) Semigroup[kind.Triple[A, B, C]] {
	return Make(func(self, that kind.Triple[A, B, C]) kind.Triple[A, B, C] {
		return kind.Triple[A, B, C]{
			First:  sa.Combine(self.First, that.First),
			Second: sb.Combine(self.Second, that.Second),
			Third:  sc.Combine(self.Third, that.Third),
		}
	})
}

// Tuple combines erased tuples with one member Semigroup per position.
// Both tuples must carry one value per supplied member.
func Tuple(members ...Semigroup[kind.Erased]) Semigroup[[]kind.Erased] {
	return Make(func(self, that []kind.Erased) []kind.Erased {
		out := make([]kind.Erased, len(members))
		for i, s := range members {
			out[i] = s.Combine(self[i], that[i])
		}
		return out
	})
}

// Struct derives a Semigroup for struct type S from erased per-field
// semigroups keyed by exported field name. Combining builds a fresh
// value: listed fields combine pointwise, fields without an entry keep
// the first operand's value.
func Struct[S any](fields map[string]Semigroup[kind.Erased]) Semigroup[S] {
	return Make(func(self, that S) S {
		sv := reflect.ValueOf(self)
		tv := reflect.ValueOf(that)
		out := reflect.New(sv.Type()).Elem()
		out.Set(sv)
		t := sv.Type()
		for i := range t.NumField() {
			s, ok := fields[t.Field(i).Name]
			if !ok {
				continue
			}
			combined := s.Combine(sv.Field(i).Interface(), tv.Field(i).Interface())
			out.Field(i).Set(reflect.ValueOf(combined))
		}
		return out.Interface().(S)
	})
}

// Erase adapts a typed Semigroup to the erased form used by Tuple and
// Struct. Both operands must hold values of type A.
func Erase[A any](s Semigroup[A]) Semigroup[kind.Erased] {
	return Make(func(self, that kind.Erased) kind.Erased {
		return s.Combine(self.(A), that.(A))
	})
}
