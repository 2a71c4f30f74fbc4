// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package dict implements the container algebra over string-keyed maps.
//
// Dicts are plain map[string]V values. Every operation is pure: inputs
// are never mutated and results are freshly allocated.
//
// Go maps have no iteration order, so every order-observing operation
// in this package ([Reduce], [Traverse], [Keys], [Values], [Collect],
// [ToEntries]) iterates keys in ascending lexicographic order. That
// order is deterministic across runs but deliberately unrelated to
// insertion order; callers must not read anything else into it.
//
// Missing keys are reported as option.None by [Get], [ModifyOption],
// [Pop] and friends, never as a sentinel value or a panic.
package dict
