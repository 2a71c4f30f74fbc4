// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

// Container algebra over an erased container type C.
//
// These interfaces describe the shape-generic operations shared by the
// sequence and dict modules; seq.Shape and dict.Shape are the two
// instantiations. The erased forms use comma-ok results instead of the
// typed option/either sum types so that this package stays at the bottom
// of the dependency graph.

// Covariant is the mapping capability: apply a function to every element,
// preserving shape, keys/positions, and cardinality.
type Covariant[C any] interface {
	Map(c C, f func(Erased) Erased) C
}

// Filterable extends Covariant with single-pass dropping and splitting.
//
// FilterMap keeps an element when f reports ok=true, dropping the rest
// while preserving relative order or key association. PartitionMap splits
// the container in one pass: f reports right=true to route the produced
// value to the right result, right=false for the left.
type Filterable[C any] interface {
	Covariant[C]
	FilterMap(c C, f func(Erased) (value Erased, ok bool)) C
	PartitionMap(c C, f func(Erased) (value Erased, right bool)) (left, right C)
}

// Foldable is the strict left fold capability in container iteration order.
type Foldable[C any] interface {
	Reduce(c C, zero Erased, f func(acc, value Erased) Erased) Erased
}
