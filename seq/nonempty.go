// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import (
	"slices"

	"code.hybscloud.com/alg/option"
	"code.hybscloud.com/alg/order"
	"code.hybscloud.com/alg/semigroup"
)

// NonEmpty is a sequence statically known to hold at least one element.
// It is a refinement of the plain slice type, not a separate runtime
// representation: the guarantee comes from the constructors, so code
// that fabricates a NonEmpty from an empty slice forfeits it.
type NonEmpty[A any] []A

// Of builds a NonEmpty from a first element and optional rest.
func Of[A any](head A, tail ...A) NonEmpty[A] {
	out := make(NonEmpty[A], 0, len(tail)+1)
	out = append(out, head)
	return append(out, tail...)
}

// FromSlice refines a slice into a NonEmpty, or None when it is empty.
func FromSlice[A any](self []A) option.Option[NonEmpty[A]] {
	if len(self) == 0 {
		return option.None[NonEmpty[A]]()
	}
	return option.Some(NonEmpty[A](slices.Clone(self)))
}

// UnsafeFromSlice refines a slice into a NonEmpty and panics when it is
// empty. Use FromSlice unless non-emptiness has already been
// established.
func UnsafeFromSlice[A any](self []A) NonEmpty[A] {
	if len(self) == 0 {
		panic("seq: empty slice")
	}
	return NonEmpty[A](slices.Clone(self))
}

// Head returns the first element. Total on NonEmpty.
func (ne NonEmpty[A]) Head() A {
	return ne[0]
}

// Last returns the final element. Total on NonEmpty.
func (ne NonEmpty[A]) Last() A {
	return ne[len(ne)-1]
}

// Tail returns everything but the first element, possibly empty.
func (ne NonEmpty[A]) Tail() []A {
	return slices.Clone([]A(ne)[1:])
}

// Init returns everything but the final element, possibly empty.
func (ne NonEmpty[A]) Init() []A {
	return slices.Clone([]A(ne)[:len(ne)-1])
}

// Min reduces to the smallest element under o. Ties keep the later
// element, following the semigroup min rule.
func Min[A any](self NonEmpty[A], o order.Order[A]) A {
	s := semigroup.Min(o)
	return s.CombineMany(self[0], slices.Values([]A(self)[1:]))
}

// Max reduces to the largest element under o. Ties keep the later
// element, following the semigroup max rule.
func Max[A any](self NonEmpty[A], o order.Order[A]) A {
	s := semigroup.Max(o)
	return s.CombineMany(self[0], slices.Values([]A(self)[1:]))
}
