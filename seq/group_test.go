// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq_test

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/alg/eq"
	"code.hybscloud.com/alg/seq"
)

func TestGroupConsecutiveRuns(t *testing.T) {
	in := seq.Of(1, 1, 2, 2, 2, 1, 3)
	got := seq.Group(in, eq.Default[int]())
	want := seq.NonEmpty[seq.NonEmpty[int]]{
		seq.Of(1, 1),
		seq.Of(2, 2, 2),
		seq.Of(1), // equivalent to the first run but not adjacent to it
		seq.Of(3),
	}
	assert.Equal(t, want, got)
}

func TestGroupSingleton(t *testing.T) {
	got := seq.Group(seq.Of(7), eq.Default[int]())
	assert.Equal(t, seq.NonEmpty[seq.NonEmpty[int]]{seq.Of(7)}, got)
}

func TestGroupBy(t *testing.T) {
	got := seq.GroupBy([]int{1, 2, 3, 4, 5}, func(n int) string {
		return strconv.Itoa(n % 2)
	})
	want := map[string]seq.NonEmpty[int]{
		"0": seq.Of(2, 4),
		"1": seq.Of(1, 3, 5),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("groupBy mismatch (-want +got):\n%s", diff)
	}
}

func TestUniqKeepsFirstOccurrences(t *testing.T) {
	got := seq.Uniq([]int{3, 1, 3, 2, 1}, eq.Default[int]())
	assert.Equal(t, []int{3, 1, 2}, got)
	assert.Empty(t, seq.Uniq([]int{}, eq.Default[int]()))
}
