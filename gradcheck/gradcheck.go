// Package gradcheck compares analytic activation derivatives with
// finite-difference estimates.
package gradcheck

import (
	"math"

	"github.com/sw965/activation"
	"github.com/sw965/activation/mathx"
	"github.com/sw965/activation/mathx/randx"
	"github.com/sw965/activation/scalar"
	"gonum.org/v1/gonum/floats"
)

type Result struct {
	Name activation.Name
	// MaxAbsDiff is the largest |f'(x) - numerical f'(x)| over the inputs,
	// reached at ArgMax. It is NaN when any comparison was NaN, and ArgMax
	// is then the first such input.
	MaxAbsDiff float64
	ArgMax     float64
	N          int
	NaNs       int
}

func (r Result) OK(tol float64) bool {
	return r.NaNs == 0 && r.MaxAbsDiff <= tol
}

func Check(name activation.Name, f scalar.Func, xs []float64) Result {
	result := Result{Name: name, N: len(xs)}
	if len(xs) == 0 {
		return result
	}

	value := scalar.Value(f)
	diffs := make([]float64, len(xs))
	for i, x := range xs {
		num := scalar.NumericalDifferentiation(x, value)
		diffs[i] = math.Abs(f(x, true) - num)
		if math.IsNaN(diffs[i]) {
			if result.NaNs == 0 {
				result.ArgMax = x
			}
			result.NaNs++
		}
	}
	if result.NaNs > 0 {
		result.MaxAbsDiff = math.NaN()
		return result
	}
	i := floats.MaxIdx(diffs)
	result.MaxAbsDiff = diffs[i]
	result.ArgMax = xs[i]
	return result
}

func CheckAll(c scalar.Catalog, xs []float64) []Result {
	fs := c.Slice()
	results := make([]Result, len(fs))
	for i, f := range fs {
		results[i] = Check(activation.Names[i], f, xs)
	}
	return results
}

func Sample(n int, min, max float64, seed int64) []float64 {
	rng := randx.NewMt19937(seed)
	return randx.NewFloat64sUniform(n, min, max, rng)
}

func Grid(n int, min, max float64) []float64 {
	return mathx.Linspace(n, min, max)
}
