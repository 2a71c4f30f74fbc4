// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import (
	"slices"

	"code.hybscloud.com/alg/eq"
)

// Group partitions a non-empty sequence into maximal runs of
// consecutive equivalent elements. Only adjacency matters: equivalent
// elements separated by a non-equivalent one land in distinct runs, so
// the concatenation of the runs reproduces the input exactly.
func Group[A any](self NonEmpty[A], isEquivalent eq.Equivalence[A]) NonEmpty[NonEmpty[A]] {
	out := NonEmpty[NonEmpty[A]]{}
	run := Of(self[0])
	for _, a := range self[1:] {
		if isEquivalent(run.Last(), a) {
			run = append(run, a)
			continue
		}
		out = append(out, run)
		run = Of(a)
	}
	return append(out, run)
}

// GroupBy buckets elements under the string key produced by f,
// independent of adjacency. Within each bucket the input's relative
// order is preserved; every bucket is non-empty by construction.
func GroupBy[A any](self []A, f func(A) string) map[string]NonEmpty[A] {
	out := make(map[string]NonEmpty[A])
	for _, a := range self {
		k := f(a)
		out[k] = append(out[k], a)
	}
	return out
}

// Uniq keeps the first occurrence of each equivalence class, preserving
// the order of first occurrences.
func Uniq[A any](self []A, isEquivalent eq.Equivalence[A]) []A {
	out := make([]A, 0, len(self))
	for _, a := range self {
		if !containsWith(out, a, isEquivalent) {
			out = append(out, a)
		}
	}
	return slices.Clip(out)
}

// containsWith reports membership under an equivalence, scanning
// linearly since no hashing or ordering is assumed.
func containsWith[A any](haystack []A, needle A, isEquivalent eq.Equivalence[A]) bool {
	for _, a := range haystack {
		if isEquivalent(a, needle) {
			return true
		}
	}
	return false
}
