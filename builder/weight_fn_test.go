// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/spgraph/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"IntUniformWeightFn_minNegative", func() builder.WeightFn { return builder.IntUniformWeightFn(-2, 3) }},
		{"IntUniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.IntUniformWeightFn(4, 3) }},
	}

	for _, tc := range tests {
		tc := tc // capture range variable
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() }, tc.name)
		})
	}
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	if w := builder.DefaultWeightFn(nil); w != builder.DefaultEdgeWeight {
		t.Errorf("DefaultWeightFn(nil): expected %g, got %g", builder.DefaultEdgeWeight, w)
	}
	if w := builder.ConstantWeightFn(3.5)(rng); w != 3.5 {
		t.Errorf("ConstantWeightFn(3.5): got %g", w)
	}
	if w := builder.UniformWeightFn(2, 8)(nil); w != builder.DefaultEdgeWeight {
		t.Errorf("UniformWeightFn nil rng: expected %g, got %g", builder.DefaultEdgeWeight, w)
	}
	if w := builder.UniformWeightFn(4, 4)(rng); w != 4 {
		t.Errorf("UniformWeightFn degenerate: expected 4, got %g", w)
	}
	if w := builder.IntUniformWeightFn(6, 9)(nil); w != 6 {
		t.Errorf("IntUniformWeightFn nil rng: expected 6, got %g", w)
	}

	uni := builder.UniformWeightFn(2, 8)
	ints := builder.IntUniformWeightFn(1, 3)
	for i := 0; i < 1000; i++ {
		w := uni(rng)
		if w < 2 || w >= 8 {
			t.Fatalf("UniformWeightFn(2,8) out of range: %g", w)
		}
		k := ints(rng)
		if k != 1 && k != 2 && k != 3 {
			t.Fatalf("IntUniformWeightFn(1,3) produced %g", k)
		}
	}
}
