// weight_fn.go — edge-weight distributions used by graph constructors.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set.
const DefaultEdgeWeight float64 = 1

// WeightFn draws one edge weight. rng may be nil; implementations then
// return DefaultEdgeWeight or their fixed value.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 { return DefaultEdgeWeight }

// ConstantWeightFn always returns value. Panics on NaN.
func ConstantWeightFn(value float64) WeightFn {
	if math.IsNaN(value) {
		panic("builder: ConstantWeightFn(NaN)")
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn draws from U[min, max). Panics unless min ≤ max.
func UniformWeightFn(min, max float64) WeightFn {
	if !(min <= max) {
		panic(fmt.Sprintf("builder: UniformWeightFn requires min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntWeightFn draws integers uniformly from [min, max]. Integer weights make
// ties common, which is what tie-breaking tests want. Panics unless min ≤ max.
func IntWeightFn(min, max int) WeightFn {
	if min > max {
		panic(fmt.Sprintf("builder: IntWeightFn requires min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// NormalWeightFn draws from N(mean, stddev²), clipped below at 0.
// Panics on a negative stddev.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("builder: NormalWeightFn stddev must be ≥ 0, got %g", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return math.Max(0, rng.NormFloat64()*stddev+mean)
	}
}

// ExponentialWeightFn draws from Exp(rate). Panics unless rate > 0.
func ExponentialWeightFn(rate float64) WeightFn {
	if !(rate > 0) {
		panic(fmt.Sprintf("builder: ExponentialWeightFn rate must be > 0, got %g", rate))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return rng.ExpFloat64() / rate
	}
}
