// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import (
	"slices"

	"code.hybscloud.com/alg/eq"
)

// Set-style operations driven by an injected equivalence. No hashing or
// ordering is assumed, so each is O(n·m) by design; the element order
// and provenance of every result follow the first operand.

// Contains reports whether the sequence holds an element equivalent to
// target.
func Contains[A any](self []A, target A, isEquivalent eq.Equivalence[A]) bool {
	return containsWith(self, target, isEquivalent)
}

// Union returns the deduplicated elements of self followed by the
// elements of that not already present. Duplicates resolve to the first
// occurrence in the first operand.
func Union[A any](self, that []A, isEquivalent eq.Equivalence[A]) []A {
	return Uniq(slices.Concat(self, that), isEquivalent)
}

// Intersection keeps the elements of self that have an equivalent in
// that, preserving the first operand's order and duplicates.
func Intersection[A any](self, that []A, isEquivalent eq.Equivalence[A]) []A {
	return Filter(self, func(a A) bool {
		return containsWith(that, a, isEquivalent)
	})
}

// Difference keeps the elements of self that have no equivalent in
// that, preserving the first operand's order and duplicates.
func Difference[A any](self, that []A, isEquivalent eq.Equivalence[A]) []A {
	return Filter(self, func(a A) bool {
		return !containsWith(that, a, isEquivalent)
	})
}
