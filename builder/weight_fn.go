// Package builder provides the edge-weight policies used by graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn returns a WeightFn that always yields w.
// Panics if w < MinWeight.
func ConstantWeightFn(w int64) WeightFn {
	if w < MinWeight {
		panic(fmt.Sprintf("ConstantWeightFn: weight must be ≥ %d, got %d", MinWeight, w))
	}

	return func(_ *rand.Rand) int64 {
		return w
	}
}

// UniformWeightFn returns a WeightFn sampling integers uniformly in
// [min, max] inclusive. Panics if min < MinWeight or max < min.
// If rng is nil, yields min to keep a deterministic fallback.
// Consumes exactly one draw per call when rng is set, even if min == max,
// so the RNG stream does not depend on the range.
func UniformWeightFn(min, max int64) WeightFn {
	if min < MinWeight || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require %d ≤ min ≤ max, got min=%d, max=%d", MinWeight, min, max))
	}
	span := max - min + 1

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return min
		}

		return min + rng.Int63n(span)
	}
}
