// SPDX-License-Identifier: MIT
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvbid/builder"
)

func TestWeightFns(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(9))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, -2.5, builder.ConstantWeightFn(-2.5)(nil))

	u := builder.UniformWeightFn(2, 5)
	for i := 0; i < 100; i++ {
		w := u(rng)
		assert.GreaterOrEqual(t, w, 2.0)
		assert.Less(t, w, 5.0)
	}
	assert.Equal(t, 2.0, u(nil))
	assert.Equal(t, 3.0, builder.UniformWeightFn(3, 3)(rng))

	in := builder.IntegerWeightFn(-1, 1)
	seen := map[float64]bool{}
	for i := 0; i < 200; i++ {
		w := in(rng)
		assert.Equal(t, math.Trunc(w), w)
		seen[w] = true
	}
	assert.Len(t, seen, 3)
	assert.Equal(t, -1.0, in(nil))
}

func TestWeightFns_PanicOnMisuse(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.ConstantWeightFn(math.NaN()) })
	assert.Panics(t, func() { builder.ConstantWeightFn(math.Inf(1)) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 2) })
	assert.Panics(t, func() { builder.UniformWeightFn(0, math.Inf(1)) })
	assert.Panics(t, func() { builder.IntegerWeightFn(3, 1) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithBuyerBase(-1) })
}
