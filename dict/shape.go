// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dict

import "code.hybscloud.com/alg/kind"

// Shape is the dict instantiation of the erased container algebra,
// the counterpart of seq.Shape. Reduce visits values in ascending key
// order, matching the typed Reduce.
type Shape struct{}

var (
	_ kind.Filterable[map[string]kind.Erased] = Shape{}
	_ kind.Foldable[map[string]kind.Erased]   = Shape{}
)

func (Shape) Map(c map[string]kind.Erased, f func(kind.Erased) kind.Erased) map[string]kind.Erased {
	return Map(c, f)
}

func (Shape) FilterMap(c map[string]kind.Erased, f func(kind.Erased) (kind.Erased, bool)) map[string]kind.Erased {
	out := make(map[string]kind.Erased)
	for k, v := range c {
		if w, ok := f(v); ok {
			out[k] = w
		}
	}
	return out
}

func (Shape) PartitionMap(c map[string]kind.Erased, f func(kind.Erased) (kind.Erased, bool)) (left, right map[string]kind.Erased) {
	left = map[string]kind.Erased{}
	right = map[string]kind.Erased{}
	for k, v := range c {
		if w, isRight := f(v); isRight {
			right[k] = w
		} else {
			left[k] = w
		}
	}
	return left, right
}

func (Shape) Reduce(c map[string]kind.Erased, zero kind.Erased, f func(acc, value kind.Erased) kind.Erased) kind.Erased {
	acc := zero
	for _, k := range Keys(c) {
		acc = f(acc, c[k])
	}
	return acc
}
