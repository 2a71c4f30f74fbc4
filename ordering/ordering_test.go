// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ordering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/alg/ordering"
)

func TestReverse(t *testing.T) {
	assert.Equal(t, ordering.Greater, ordering.Less.Reverse())
	assert.Equal(t, ordering.Less, ordering.Greater.Reverse())
	assert.Equal(t, ordering.Equal, ordering.Equal.Reverse())
}

func TestCombineFirstDecisiveWins(t *testing.T) {
	assert.Equal(t, ordering.Less, ordering.Combine(ordering.Less, ordering.Greater))
	assert.Equal(t, ordering.Greater, ordering.Combine(ordering.Greater, ordering.Less))
	assert.Equal(t, ordering.Greater, ordering.Combine(ordering.Equal, ordering.Greater))
	assert.Equal(t, ordering.Equal, ordering.Combine(ordering.Equal, ordering.Equal))
}

func TestMatch(t *testing.T) {
	branch := func(o ordering.Ordering) string {
		return ordering.Match(o,
			func() string { return "less" },
			func() string { return "equal" },
			func() string { return "greater" },
		)
	}
	assert.Equal(t, "less", branch(ordering.Less))
	assert.Equal(t, "equal", branch(ordering.Equal))
	assert.Equal(t, "greater", branch(ordering.Greater))
}

func TestString(t *testing.T) {
	assert.Equal(t, "Less", ordering.Less.String())
	assert.Equal(t, "Equal", ordering.Equal.String())
	assert.Equal(t, "Greater", ordering.Greater.String())
	assert.Panics(t, func() { _ = ordering.Ordering(2).String() })
}
