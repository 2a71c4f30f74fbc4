// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

// Erased is a type alias for any, marking type-erased values flowing
// through shape-generic code. Concrete types are recovered via type
// assertions at the boundary between erased and typed APIs.
type Erased = any

// Pair holds two values of independent types.
// It is the product type used by [Applicative.Product] results, by
// tuple capability lifting, and by sequence zipping.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple holds three values of independent types.
// It backs the three-position tuple lifting combinators.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Applicative describes how to build and combine values of an effect
// type F. It is the capability contract [Traverse] requires: the engine
// threads these three operations and never inspects F beyond them, so
// sequencing semantics (including short-circuiting) belong entirely to
// the instance.
//
// Contract:
//   - Of lifts a plain value into F.
//   - Map transforms the value inside F without changing effect structure.
//   - Product combines two effects into one whose value is a
//     Pair[Erased, Erased] of the two inner values.
//
// Go has no higher-kinded type parameters, so F is the concrete erased
// effect value type (e.g. option.Option[kind.Erased]) and instances are
// monomorphized per call site.
type Applicative[F any] interface {
	Of(value Erased) F
	Map(fa F, f func(Erased) Erased) F
	Product(fa F, fb F) F
}
