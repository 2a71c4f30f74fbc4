// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package order

import "code.hybscloud.com/alg/ordering"

// Derived predicates and selections. All are pure derivations from the
// supplied Order and therefore stay consistent with it by construction.

// LessThan reports whether self sorts strictly before that.
func LessThan[A any](o Order[A], self, that A) bool {
	return o(self, that) == ordering.Less
}

// LessThanOrEqualTo reports whether self does not sort after that.
func LessThanOrEqualTo[A any](o Order[A], self, that A) bool {
	return o(self, that) != ordering.Greater
}

// GreaterThan reports whether self sorts strictly after that.
func GreaterThan[A any](o Order[A], self, that A) bool {
	return o(self, that) == ordering.Greater
}

// GreaterThanOrEqualTo reports whether self does not sort before that.
func GreaterThanOrEqualTo[A any](o Order[A], self, that A) bool {
	return o(self, that) != ordering.Less
}

// Min returns the smaller of the two values. On ties the first argument
// is returned, which makes the selection deterministic.
func Min[A any](o Order[A], self, that A) A {
	if o(self, that) == ordering.Greater {
		return that
	}
	return self
}

// Max returns the larger of the two values. On ties the first argument
// is returned, which makes the selection deterministic.
func Max[A any](o Order[A], self, that A) A {
	if o(self, that) == ordering.Less {
		return that
	}
	return self
}

// Clamp restricts a value to the closed interval [minimum, maximum].
func Clamp[A any](o Order[A], self, minimum, maximum A) A {
	return Min(o, Max(o, self, minimum), maximum)
}

// Between reports whether self lies in the closed interval
// [minimum, maximum].
func Between[A any](o Order[A], self, minimum, maximum A) bool {
	return o(self, minimum) != ordering.Less && o(self, maximum) != ordering.Greater
}
