package randx

import (
	"math/rand/v2"

	"github.com/seehuhn/mt19937"
)

func NewMt19937(seed int64) *rand.Rand {
	src := mt19937.New()
	src.Seed(seed)
	return rand.New(src)
}

func Float64Uniform(min, max float64, rng *rand.Rand) float64 {
	return min + rng.Float64()*(max-min)
}

func NewFloat64sUniform(n int, min, max float64, rng *rand.Rand) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = Float64Uniform(min, max, rng)
	}
	return xs
}
