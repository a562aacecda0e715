package vector

import (
	"fmt"
	"slices"

	"github.com/sw965/activation/scalar32"
	"gonum.org/v1/gonum/blas/blas32"
)

func NewZeros(n int) blas32.Vector {
	return blas32.Vector{
		N:    n,
		Inc:  1,
		Data: make([]float32, n),
	}
}

func NewZerosLike(vec blas32.Vector) blas32.Vector {
	return NewZeros(vec.N)
}

func Clone(vec blas32.Vector) blas32.Vector {
	return blas32.Vector{
		N:    vec.N,
		Inc:  vec.Inc,
		Data: slices.Clone(vec.Data),
	}
}

func validate(vec blas32.Vector) error {
	if vec.Inc <= 0 {
		return fmt.Errorf("vector: Inc = %d, must be positive", vec.Inc)
	}
	if vec.N < 0 {
		return fmt.Errorf("vector: N = %d, must not be negative", vec.N)
	}
	if vec.N > 0 && len(vec.Data) < (vec.N-1)*vec.Inc+1 {
		return fmt.Errorf("vector: len(Data) = %d, too short for N = %d, Inc = %d", len(vec.Data), vec.N, vec.Inc)
	}
	return nil
}

// Activate returns a contiguous vector y with y[i] = f(x[i*Inc], derivative).
func Activate(x blas32.Vector, f scalar32.Func, derivative bool) (blas32.Vector, error) {
	if err := validate(x); err != nil {
		return blas32.Vector{}, fmt.Errorf("vector.Activate: %w", err)
	}
	y := NewZeros(x.N)
	for i := range y.Data {
		y.Data[i] = f(x.Data[i*x.Inc], derivative)
	}
	return y, nil
}

// ActivateBackward returns f'(x) scaled element-wise by the upstream gradient.
func ActivateBackward(x, grad blas32.Vector, f scalar32.Func) (blas32.Vector, error) {
	dydx, err := Activate(x, f, true)
	if err != nil {
		return blas32.Vector{}, err
	}
	if err := validate(grad); err != nil {
		return blas32.Vector{}, fmt.Errorf("vector.ActivateBackward: %w", err)
	}
	if grad.N != x.N {
		return blas32.Vector{}, fmt.Errorf("vector.ActivateBackward: x.N = %d, grad.N = %d", x.N, grad.N)
	}
	for i := range dydx.Data {
		dydx.Data[i] *= grad.Data[i*grad.Inc]
	}
	return dydx, nil
}
