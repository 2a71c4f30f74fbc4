// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/alg/either"
	"code.hybscloud.com/alg/kind"
	"code.hybscloud.com/alg/option"
	"code.hybscloud.com/alg/seq"
)

func positively(v kind.Erased) option.Option[kind.Erased] {
	if v.(int) > 0 {
		return option.Some(v)
	}
	return option.None[kind.Erased]()
}

func TestTraverseAllPresent(t *testing.T) {
	got := seq.Traverse([]int{1, 2, 3}, option.Applicative, func(n int) option.Option[kind.Erased] {
		return positively(n)
	})
	collected, ok := got.Get()
	require.True(t, ok)
	assert.Equal(t, []kind.Erased{1, 2, 3}, collected)
}

func TestTraverseShortCircuits(t *testing.T) {
	got := seq.Traverse([]int{1, -2, 3}, option.Applicative, func(n int) option.Option[kind.Erased] {
		return positively(n)
	})
	assert.True(t, got.IsNone())
}

func TestTraverseEmpty(t *testing.T) {
	got := seq.Traverse([]int{}, option.Applicative, func(n int) option.Option[kind.Erased] {
		t.Fatal("must not be called")
		return option.None[kind.Erased]()
	})
	collected, ok := got.Get()
	require.True(t, ok)
	assert.Empty(t, collected)
}

func TestSequence(t *testing.T) {
	effects := []option.Option[kind.Erased]{
		option.Some[kind.Erased](1),
		option.Some[kind.Erased](2),
	}
	got := seq.Sequence(effects, option.Applicative)
	collected, ok := got.Get()
	require.True(t, ok)
	assert.Equal(t, []kind.Erased{1, 2}, collected)

	effects = append(effects, option.None[kind.Erased]())
	assert.True(t, seq.Sequence(effects, option.Applicative).IsNone())
}

func TestTraverseWithEitherReportsLeftmostFailure(t *testing.T) {
	app := either.Applicative[string]()
	check := func(n int) either.Either[string, kind.Erased] {
		if n > 0 {
			return either.Right[string](kind.Erased(n))
		}
		return either.Left[string, kind.Erased]("negative")
	}
	got := seq.Traverse([]int{1, 2, 3}, app, check)
	collected, ok := got.GetRight()
	require.True(t, ok)
	assert.Equal(t, []kind.Erased{1, 2, 3}, collected)

	got = seq.Traverse([]int{1, -2, -3}, app, check)
	e, ok := got.GetLeft()
	require.True(t, ok)
	assert.Equal(t, "negative", e)
}

func TestTraverseOption(t *testing.T) {
	double := func(n int) option.Option[int] {
		if n > 0 {
			return option.Some(n * 2)
		}
		return option.None[int]()
	}
	got, ok := seq.TraverseOption([]int{1, 2, 3}, double).Get()
	require.True(t, ok)
	assert.Equal(t, []int{2, 4, 6}, got)

	assert.True(t, seq.TraverseOption([]int{1, -2, 3}, double).IsNone())

	empty, ok := seq.TraverseOption([]int{}, double).Get()
	require.True(t, ok)
	assert.Empty(t, empty)
}

func TestSequenceOption(t *testing.T) {
	got, ok := seq.SequenceOption([]option.Option[int]{option.Some(1), option.Some(2)}).Get()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, got)

	assert.True(t, seq.SequenceOption([]option.Option[int]{option.Some(1), option.None[int]()}).IsNone())
}
