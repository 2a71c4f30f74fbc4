// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dict

import (
	"maps"
	"sort"

	"code.hybscloud.com/alg/either"
	"code.hybscloud.com/alg/kind"
	"code.hybscloud.com/alg/option"
)

// Map applies f to every value, preserving keys and cardinality.
func Map[V, B any](self map[string]V, f func(V) B) map[string]B {
	return MapWithKey(self, func(_ string, v V) B { return f(v) })
}

// MapWithKey is Map with the key supplied to f.
func MapWithKey[V, B any](self map[string]V, f func(string, V) B) map[string]B {
	out := make(map[string]B, len(self))
	for k, v := range self {
		out[k] = f(k, v)
	}
	return out
}

// Filter keeps the entries whose value satisfies pred.
func Filter[V any](self map[string]V, pred func(V) bool) map[string]V {
	out := make(map[string]V)
	for k, v := range self {
		if pred(v) {
			out[k] = v
		}
	}
	return out
}

// FilterMap applies f to every value and keeps the present results
// under their original keys.
func FilterMap[V, B any](self map[string]V, f func(V) option.Option[B]) map[string]B {
	out := make(map[string]B)
	for k, v := range self {
		if b, ok := f(v).Get(); ok {
			out[k] = b
		}
	}
	return out
}

// Partition splits the entries by pred in a single pass. The first
// result holds the entries whose value fails pred, the second those
// that satisfy it.
func Partition[V any](self map[string]V, pred func(V) bool) (excluded, satisfied map[string]V) {
	excluded = map[string]V{}
	satisfied = map[string]V{}
	for k, v := range self {
		if pred(v) {
			satisfied[k] = v
		} else {
			excluded[k] = v
		}
	}
	return excluded, satisfied
}

// PartitionMap applies f to every value in a single pass, routing Left
// results to the first dict and Right results to the second. Key
// association is preserved in both.
func PartitionMap[V, B, C any](self map[string]V, f func(V) either.Either[B, C]) (lefts map[string]B, rights map[string]C) {
	lefts = map[string]B{}
	rights = map[string]C{}
	for k, v := range self {
		e := f(v)
		if r, ok := e.GetRight(); ok {
			rights[k] = r
		} else if l, ok := e.GetLeft(); ok {
			lefts[k] = l
		}
	}
	return lefts, rights
}

// Reduce is the strict fold over entries in ascending key order. An
// empty dict returns zero unchanged.
func Reduce[V, B any](self map[string]V, zero B, f func(B, string, V) B) B {
	acc := zero
	for _, k := range Keys(self) {
		acc = f(acc, k, self[k])
	}
	return acc
}

// Get returns the value at key, or None when the key is missing.
func Get[V any](self map[string]V, key string) option.Option[V] {
	if v, ok := self[key]; ok {
		return option.Some(v)
	}
	return option.None[V]()
}

// Has reports whether the key is present.
func Has[V any](self map[string]V, key string) bool {
	_, ok := self[key]
	return ok
}

// Set returns a fresh dict with key bound to value, replacing any
// previous binding.
func Set[V any](self map[string]V, key string, value V) map[string]V {
	out := make(map[string]V, len(self)+1)
	maps.Copy(out, self)
	out[key] = value
	return out
}

// Remove returns a fresh dict without key. Removing a missing key
// yields an unchanged copy.
func Remove[V any](self map[string]V, key string) map[string]V {
	out := make(map[string]V, len(self))
	for k, v := range self {
		if k != key {
			out[k] = v
		}
	}
	return out
}

// ModifyOption applies f to the value at key, returning the updated
// dict, or None when the key is missing.
func ModifyOption[V any](self map[string]V, key string, f func(V) V) option.Option[map[string]V] {
	v, ok := self[key]
	if !ok {
		return option.None[map[string]V]()
	}
	return option.Some(Set(self, key, f(v)))
}

// Pop returns the value at key paired with the dict minus that entry,
// or None when the key is missing.
func Pop[V any](self map[string]V, key string) option.Option[kind.Pair[V, map[string]V]] {
	v, ok := self[key]
	if !ok {
		return option.None[kind.Pair[V, map[string]V]]()
	}
	return option.Some(kind.Pair[V, map[string]V]{First: v, Second: Remove(self, key)})
}

// Keys returns the keys in ascending lexicographic order.
func Keys[V any](self map[string]V) []string {
	out := make([]string, 0, len(self))
	for k := range self {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Values returns the values in ascending key order.
func Values[V any](self map[string]V) []V {
	return Collect(self, func(_ string, v V) V { return v })
}

// Collect applies f to every entry in ascending key order and gathers
// the results.
func Collect[V, B any](self map[string]V, f func(string, V) B) []B {
	keys := Keys(self)
	out := make([]B, len(keys))
	for i, k := range keys {
		out[i] = f(k, self[k])
	}
	return out
}

// ToEntries returns the entries as key/value pairs in ascending key
// order.
func ToEntries[V any](self map[string]V) []kind.Pair[string, V] {
	return Collect(self, func(k string, v V) kind.Pair[string, V] {
		return kind.Pair[string, V]{First: k, Second: v}
	})
}

// FromEntries builds a dict from key/value pairs. Later entries
// overwrite earlier ones with the same key.
func FromEntries[V any](entries []kind.Pair[string, V]) map[string]V {
	out := make(map[string]V, len(entries))
	for _, e := range entries {
		out[e.First] = e.Second
	}
	return out
}

// Union merges two dicts. Keys present in both have their values
// combined with combine, first operand's value first.
func Union[V any](self, that map[string]V, combine func(V, V) V) map[string]V {
	out := make(map[string]V, len(self)+len(that))
	maps.Copy(out, self)
	for k, v := range that {
		if existing, ok := out[k]; ok {
			out[k] = combine(existing, v)
		} else {
			out[k] = v
		}
	}
	return out
}

// Size returns the number of entries.
func Size[V any](self map[string]V) int {
	return len(self)
}

// IsEmpty reports whether the dict has no entries.
func IsEmpty[V any](self map[string]V) bool {
	return len(self) == 0
}
