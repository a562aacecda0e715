// Package mlfuncs1d applies scalar activations element-wise to slices.
package mlfuncs1d

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

func Map[F constraints.Float](xs []F, f func(F, bool) F, derivative bool) []F {
	ys := make([]F, len(xs))
	for i, x := range xs {
		ys[i] = f(x, derivative)
	}
	return ys
}

func MapInPlace[F constraints.Float](xs []F, f func(F, bool) F, derivative bool) {
	for i, x := range xs {
		xs[i] = f(x, derivative)
	}
}

// Backward multiplies the upstream gradient by f'(x) element-wise.
func Backward[F constraints.Float](xs, grads []F, f func(F, bool) F) ([]F, error) {
	if len(xs) != len(grads) {
		return nil, fmt.Errorf("mlfuncs1d.Backward: len(xs) = %d, len(grads) = %d", len(xs), len(grads))
	}
	ys := make([]F, len(xs))
	for i, x := range xs {
		ys[i] = f(x, true) * grads[i]
	}
	return ys, nil
}
