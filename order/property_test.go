// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package order_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/alg/order"
	"code.hybscloud.com/alg/ordering"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// TestPropertyOrderReflexivity: compare(a, a) ≡ Equal
func TestPropertyOrderReflexivity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	o := order.FromOrdered[int]()
	for range propertyN {
		a := randInt(rng)
		if o(a, a) != ordering.Equal {
			t.Fatalf("reflexivity: compare(%d, %d) != Equal", a, a)
		}
	}
}

// TestPropertyOrderMirror: compare(b, a) ≡ compare(a, b).Reverse()
func TestPropertyOrderMirror(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	o := order.FromOrdered[int]()
	for range propertyN {
		a, b := randInt(rng), randInt(rng)
		if o(b, a) != o(a, b).Reverse() {
			t.Fatalf("mirror: compare(%d, %d)=%v but compare(%d, %d)=%v", a, b, o(a, b), b, a, o(b, a))
		}
	}
}

// TestPropertyOrderTransitivity: a<=b and b<=c imply a<=c
func TestPropertyOrderTransitivity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	o := order.FromOrdered[int]()
	for range propertyN {
		x, y, z := randInt(rng), randInt(rng), randInt(rng)
		// sort the triple by hand to get a<=b<=c
		a, b, c := x, y, z
		if o(a, b) == ordering.Greater {
			a, b = b, a
		}
		if o(b, c) == ordering.Greater {
			b, c = c, b
		}
		if o(a, b) == ordering.Greater {
			a, b = b, a
		}
		if o(a, c) == ordering.Greater {
			t.Fatalf("transitivity violated for %d, %d, %d", x, y, z)
		}
	}
}

// TestPropertyReverseInvolution: Reverse(Reverse(o)) ≡ o
func TestPropertyReverseInvolution(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	o := order.FromOrdered[int]()
	rr := order.Reverse(order.Reverse(o))
	for range propertyN {
		a, b := randInt(rng), randInt(rng)
		if o(a, b) != rr(a, b) {
			t.Fatalf("reverse involution: %v != %v (a=%d b=%d)", o(a, b), rr(a, b), a, b)
		}
	}
}

// TestPropertyClampBounds: Clamp always lands in [lo, hi]
func TestPropertyClampBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	o := order.FromOrdered[int]()
	for range propertyN {
		a, x, y := randInt(rng), randInt(rng), randInt(rng)
		lo, hi := order.Min(o, x, y), order.Max(o, x, y)
		c := order.Clamp(o, a, lo, hi)
		if !order.Between(o, c, lo, hi) {
			t.Fatalf("clamp(%d, %d, %d) = %d escaped the interval", a, lo, hi, c)
		}
	}
}
