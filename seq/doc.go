// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package seq implements the container algebra over ordered sequences.
//
// Sequences are plain Go slices. Every operation is pure: inputs are
// never mutated and results are freshly allocated, so callers may share
// input slices freely.
//
// # Container algebra
//
//   - [Map], [MapWithIndex]: transform every element, preserving length
//   - [Filter], [FilterMap]: drop elements, preserving relative order
//   - [Partition], [PartitionMap], [Separate]: split in a single pass
//   - [Reduce], [ReduceRight]: strict folds
//   - [FlatMap], [Flatten]: transform and splice
//   - [Traverse], [Sequence]: effectful traversal via a kind.Applicative
//   - [TraverseOption], [SequenceOption]: typed option traversal
//
// # Safe and unsafe indexing
//
// [Get], [ModifyAt], [RemoveAt], [InsertAt], [ReplaceAt] are
// bounds-checked and report absence through option.Option. [UnsafeGet]
// and [UnsafeFromSlice] panic on contract violation; the Unsafe prefix
// marks every aborting accessor.
//
// # Instance-driven operations
//
// Sorting, grouping, deduplication and the set-style operations take the
// equivalence or order they need as an explicit argument; nothing is
// derived implicitly from element types.
//
//   - [Sort], [SortBy]: stable sorts under one or more orders
//   - [Group]: maximal runs of consecutive equivalent elements
//   - [GroupBy]: key-driven buckets, within-bucket order preserved
//   - [Uniq], [Union], [Intersection], [Difference], [Contains]
//
// # NonEmpty refinement
//
// [NonEmpty] is a named slice type whose constructors guarantee at least
// one element, making [NonEmpty.Head], [NonEmpty.Last], [Min] and [Max]
// total. It is a compile-time refinement with no separate runtime
// representation.
package seq
