// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "code.hybscloud.com/alg/kind"

// Shape is the sequence instantiation of the erased container algebra.
// It lets shape-generic code run the same program over sequences and
// dicts through the kind interfaces; typed callers use the package
// functions directly.
type Shape struct{}

var (
	_ kind.Filterable[[]kind.Erased] = Shape{}
	_ kind.Foldable[[]kind.Erased]   = Shape{}
)

func (Shape) Map(c []kind.Erased, f func(kind.Erased) kind.Erased) []kind.Erased {
	return Map(c, f)
}

func (Shape) FilterMap(c []kind.Erased, f func(kind.Erased) (kind.Erased, bool)) []kind.Erased {
	out := make([]kind.Erased, 0, len(c))
	for _, v := range c {
		if w, ok := f(v); ok {
			out = append(out, w)
		}
	}
	return out
}

func (Shape) PartitionMap(c []kind.Erased, f func(kind.Erased) (kind.Erased, bool)) (left, right []kind.Erased) {
	left = []kind.Erased{}
	right = []kind.Erased{}
	for _, v := range c {
		if w, isRight := f(v); isRight {
			right = append(right, w)
		} else {
			left = append(left, w)
		}
	}
	return left, right
}

func (Shape) Reduce(c []kind.Erased, zero kind.Erased, f func(acc, value kind.Erased) kind.Erased) kind.Erased {
	return Reduce(c, zero, f)
}
