// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import (
	"slices"

	"code.hybscloud.com/alg/order"
)

// Sort returns the elements sorted under o. The sort is stable: elements
// comparing Equal keep their original relative order, which composite
// orders built from Tuple/Struct/All rely on. The input is untouched.
func Sort[A any](self []A, o order.Order[A]) []A {
	out := slices.Clone(self)
	slices.SortStableFunc(out, func(a, b A) int { return int(o(a, b)) })
	return out
}

// SortBy sorts under a priority list of orders: the first decides, and
// each later order is consulted only where every earlier one ties.
// Stable like Sort.
func SortBy[A any](self []A, orders ...order.Order[A]) []A {
	return Sort(self, order.All(slices.Values(orders)))
}
