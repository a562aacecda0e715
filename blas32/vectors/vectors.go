package vectors

import (
	"fmt"

	"github.com/sw965/activation/blas32/vector"
	"github.com/sw965/activation/scalar32"
	"gonum.org/v1/gonum/blas/blas32"
)

func NewZerosLike(vs []blas32.Vector) []blas32.Vector {
	zeros := make([]blas32.Vector, len(vs))
	for i, v := range vs {
		zeros[i] = vector.NewZerosLike(v)
	}
	return zeros
}

func Clone(vs []blas32.Vector) []blas32.Vector {
	clone := make([]blas32.Vector, len(vs))
	for i, v := range vs {
		clone[i] = vector.Clone(v)
	}
	return clone
}

// Activate applies f to every vector of a batch.
func Activate(xs []blas32.Vector, f scalar32.Func, derivative bool) ([]blas32.Vector, error) {
	ys := make([]blas32.Vector, len(xs))
	for i, x := range xs {
		y, err := vector.Activate(x, f, derivative)
		if err != nil {
			return nil, fmt.Errorf("vectors.Activate: batch index %d: %w", i, err)
		}
		ys[i] = y
	}
	return ys, nil
}
