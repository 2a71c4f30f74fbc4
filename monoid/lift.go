// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monoid

import (
	"reflect"

	"code.hybscloud.com/alg/kind"
	"code.hybscloud.com/alg/semigroup"
)

// Structural lifting mirrors the semigroup combinators; the composite
// identity is assembled from the per-member identities, so the identity
// law holds pointwise.

// Tuple2 lifts two monoids to pairs.
func Tuple2[A, B any](ma Monoid[A], mb Monoid[B]) Monoid[kind.Pair[A, B]] {
	return FromSemigroup(
		semigroup.Tuple2(ma.Semigroup, mb.Semigroup),
		kind.Pair[A, B]{First: ma.Empty, Second: mb.Empty},
	)
}

// Tuple3 lifts three monoids to triples.
func Tuple3[A, B, C any](ma Monoid[A], mb Monoid[B], mc Monoid[C]) Monoid[kind.Triple[A, B, C]] {
	return FromSemigroup(
		semigroup.Tuple3(ma.Semigroup, mb.Semigroup, mc.Semigroup),
		kind.Triple[A, B, C]{First: ma.Empty, Second: mb.Empty, Third: mc.Empty},
	)
}

// Tuple lifts erased monoids to erased tuples with one member per
// position.
func Tuple(members ...Monoid[kind.Erased]) Monoid[[]kind.Erased] {
	semigroups := make([]semigroup.Semigroup[kind.Erased], len(members))
	empty := make([]kind.Erased, len(members))
	for i, m := range members {
		semigroups[i] = m.Semigroup
		empty[i] = m.Empty
	}
	return FromSemigroup(semigroup.Tuple(semigroups...), empty)
}

// Struct derives a Monoid for struct type S from erased per-field
// monoids keyed by exported field name. The identity has every listed
// field set to its member identity and every other field at its zero
// value.
func Struct[S any](fields map[string]Monoid[kind.Erased]) Monoid[S] {
	semigroups := make(map[string]semigroup.Semigroup[kind.Erased], len(fields))
	for name, m := range fields {
		semigroups[name] = m.Semigroup
	}
	t := reflect.TypeFor[S]()
	empty := reflect.New(t).Elem()
	for i := range t.NumField() {
		m, ok := fields[t.Field(i).Name]
		if !ok {
			continue
		}
		empty.Field(i).Set(reflect.ValueOf(m.Empty))
	}
	return FromSemigroup(semigroup.Struct[S](semigroups), empty.Interface().(S))
}

// Erase adapts a typed Monoid to the erased form used by Tuple and
// Struct.
func Erase[A any](m Monoid[A]) Monoid[kind.Erased] {
	return FromSemigroup[kind.Erased](semigroup.Erase(m.Semigroup), m.Empty)
}
