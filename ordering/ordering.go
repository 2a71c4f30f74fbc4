// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ordering defines the three-valued comparison result used by
// the order capability and everything built on top of it.
package ordering

// Ordering is the result of comparing two values.
// The numeric values match the cmp.Compare convention, so an Ordering
// converts directly to the int expected by the slices sorting functions.
type Ordering int8

const (
	// Less means the first value sorts before the second.
	Less Ordering = -1
	// Equal means the two values are equivalent.
	Equal Ordering = 0
	// Greater means the first value sorts after the second.
	Greater Ordering = 1
)

// Reverse flips Less and Greater. Equal is a fixed point.
func (o Ordering) Reverse() Ordering {
	return -o
}

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		panic("ordering: invalid Ordering value")
	}
}

// Combine returns the first decisive result: self unless it is Equal,
// otherwise that. This is the associative combination backing
// priority-ordered comparison chains; Equal is its identity.
func Combine(self, that Ordering) Ordering {
	if self != Equal {
		return self
	}
	return that
}

// Match calls exactly one of the three branches according to o.
func Match[A any](o Ordering, onLess, onEqual, onGreater func() A) A {
	switch o {
	case Less:
		return onLess()
	case Greater:
		return onGreater()
	default:
		return onEqual()
	}
}
