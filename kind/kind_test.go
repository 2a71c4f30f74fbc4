// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/alg/dict"
	"code.hybscloud.com/alg/kind"
	"code.hybscloud.com/alg/option"
	"code.hybscloud.com/alg/seq"
)

func eraseInts(values ...int) []kind.Erased {
	out := make([]kind.Erased, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func TestTraverseCollectsInOrder(t *testing.T) {
	got := kind.Traverse(option.Applicative, slices.Values(eraseInts(1, 2, 3)), func(v kind.Erased) option.Option[kind.Erased] {
		return option.Some[kind.Erased](v.(int) * 10)
	})
	collected, ok := got.Get()
	require.True(t, ok)
	assert.Equal(t, eraseInts(10, 20, 30), collected)
}

func TestTraverseEmptyYieldsEmpty(t *testing.T) {
	got := kind.Traverse(option.Applicative, slices.Values([]kind.Erased{}), func(v kind.Erased) option.Option[kind.Erased] {
		t.Fatal("must not be called")
		return option.None[kind.Erased]()
	})
	collected, ok := got.Get()
	require.True(t, ok)
	assert.Empty(t, collected)
}

func TestTraverseShortCircuitIsInstanceDriven(t *testing.T) {
	got := kind.Traverse(option.Applicative, slices.Values(eraseInts(1, -2, 3)), func(v kind.Erased) option.Option[kind.Erased] {
		if v.(int) > 0 {
			return option.Some(v)
		}
		return option.None[kind.Erased]()
	})
	assert.True(t, got.IsNone())
}

// runFilterProgram is a shape-generic program: it only sees the
// container through the Filterable capability.
func runFilterProgram[C any](shape kind.Filterable[C], c C) C {
	doubled := shape.Map(c, func(v kind.Erased) kind.Erased { return v.(int) * 2 })
	return shape.FilterMap(doubled, func(v kind.Erased) (kind.Erased, bool) {
		return v, v.(int) > 4
	})
}

func TestShapeGenericProgramOverSeqAndDict(t *testing.T) {
	gotSeq := runFilterProgram[[]kind.Erased](seq.Shape{}, eraseInts(1, 2, 3))
	assert.Equal(t, eraseInts(6), gotSeq)

	gotDict := runFilterProgram[map[string]kind.Erased](dict.Shape{}, map[string]kind.Erased{"a": 1, "b": 2, "c": 3})
	assert.Equal(t, map[string]kind.Erased{"c": 6}, gotDict)
}

func TestFoldableShapes(t *testing.T) {
	sum := func(acc, v kind.Erased) kind.Erased { return acc.(int) + v.(int) }
	assert.Equal(t, 6, seq.Shape{}.Reduce(eraseInts(1, 2, 3), 0, sum))
	assert.Equal(t, 6, dict.Shape{}.Reduce(map[string]kind.Erased{"a": 1, "b": 2, "c": 3}, 0, sum))
}

func TestPartitionMapShapes(t *testing.T) {
	splitEven := func(v kind.Erased) (kind.Erased, bool) {
		return v, v.(int)%2 == 0
	}
	left, right := seq.Shape{}.PartitionMap(eraseInts(1, 2, 3, 4), splitEven)
	assert.Equal(t, eraseInts(1, 3), left)
	assert.Equal(t, eraseInts(2, 4), right)
}
