// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/alg/kind"
	"code.hybscloud.com/alg/seq"
)

func TestChunksOf(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, seq.ChunksOf([]int{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, [][]int{{1, 2, 3}}, seq.ChunksOf([]int{1, 2, 3}, 3))
	// zero chunks for empty input, not one empty chunk
	assert.Empty(t, seq.ChunksOf([]int{}, 3))
	// n < 1 is normalized to 1
	assert.Equal(t, [][]int{{1}, {2}}, seq.ChunksOf([]int{1, 2}, 0))
	assert.Equal(t, [][]int{{1}, {2}}, seq.ChunksOf([]int{1, 2}, -5))
}

func TestRotate(t *testing.T) {
	assert.Equal(t, []int{4, 5, 1, 2, 3}, seq.Rotate([]int{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, []int{1, 2, 3}, seq.Rotate([]int{1, 2, 3}, 0))
	assert.Equal(t, []int{1, 2, 3}, seq.Rotate([]int{1, 2, 3}, 3))
	assert.Equal(t, []int{4, 5, 1, 2, 3}, seq.Rotate([]int{1, 2, 3, 4, 5}, 7))
	assert.Equal(t, []int{3, 4, 5, 1, 2}, seq.Rotate([]int{1, 2, 3, 4, 5}, -2))
	assert.Empty(t, seq.Rotate([]int{}, 4))
}

func TestZipTruncatesToShorter(t *testing.T) {
	got := seq.Zip([]int{1, 2, 3}, []string{"a", "b"})
	want := []kind.Pair[int, string]{
		{First: 1, Second: "a"},
		{First: 2, Second: "b"},
	}
	assert.Equal(t, want, got)
	assert.Empty(t, seq.Zip([]int{}, []string{"a"}))
}

func TestZipWith(t *testing.T) {
	got := seq.ZipWith([]int{1, 2}, []int{10, 20, 30}, func(a, b int) int { return a + b })
	assert.Equal(t, []int{11, 22}, got)
}

func TestZipUnzipRoundTrip(t *testing.T) {
	pairs := []kind.Pair[int, string]{
		{First: 1, Second: "a"},
		{First: 2, Second: "b"},
		{First: 3, Second: "c"},
	}
	firsts, seconds := seq.Unzip(pairs)
	assert.Equal(t, pairs, seq.Zip(firsts, seconds))
}

func TestSpan(t *testing.T) {
	isSmall := func(n int) bool { return n < 3 }
	init, rest := seq.Span([]int{1, 2, 3, 1, 2}, isSmall)
	assert.Equal(t, []int{1, 2}, init)
	// elements after the first failure stay put even if they satisfy pred
	assert.Equal(t, []int{3, 1, 2}, rest)
}

func TestSpanStopsAtFirstFailure(t *testing.T) {
	calls := 0
	_, _ = seq.Span([]int{1, 5, 1, 1}, func(n int) bool {
		calls++
		return n < 3
	})
	assert.Equal(t, 2, calls, "predicate must not run past the first failing element")
}

func TestTakeWhileDropWhile(t *testing.T) {
	isSmall := func(n int) bool { return n < 3 }
	assert.Equal(t, []int{1, 2}, seq.TakeWhile([]int{1, 2, 3, 1}, isSmall))
	assert.Equal(t, []int{3, 1}, seq.DropWhile([]int{1, 2, 3, 1}, isSmall))
	assert.Empty(t, seq.TakeWhile([]int{5}, isSmall))
	assert.Empty(t, seq.DropWhile([]int{1, 2}, isSmall))
}
