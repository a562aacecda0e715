package vector_test

import (
	"testing"

	"github.com/sw965/activation/blas64/vector"
	"github.com/sw965/activation/scalar"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
)

func TestActivateAllFunctions(t *testing.T) {
	data := []float64{-3, -2, -1, 0, 1, 2, 3}
	x := blas64.Vector{N: len(data), Inc: 1, Data: data}
	for _, f := range scalar.Functions.Slice() {
		for _, d := range []bool{false, true} {
			y, err := vector.Activate(x, f, d)
			if err != nil {
				t.Fatal(err)
			}
			for i, e := range data {
				if y.Data[i] != f(e, d) {
					t.Errorf("y[%d] = %v, want %v", i, y.Data[i], f(e, d))
				}
			}
		}
	}
}

func TestActivateStrided(t *testing.T) {
	x := blas64.Vector{N: 2, Inc: 3, Data: []float64{0, 7, 7, 1}}
	y, err := vector.Activate(x, scalar.Sinc, false)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1, scalar.Sinc(1, false)}
	if !floats.Equal(y.Data, want) {
		t.Errorf("Activate = %v, want %v", y.Data, want)
	}
}

func TestActivateEmpty(t *testing.T) {
	y, err := vector.Activate(blas64.Vector{N: 0, Inc: 1}, scalar.RELU, false)
	if err != nil {
		t.Fatal(err)
	}
	if y.N != 0 || len(y.Data) != 0 {
		t.Errorf("Activate of empty = %+v", y)
	}
}

func TestActivateBackward(t *testing.T) {
	x := blas64.Vector{N: 2, Inc: 1, Data: []float64{-4, 4}}
	grad := blas64.Vector{N: 2, Inc: 1, Data: []float64{1, 0.5}}
	y, err := vector.ActivateBackward(x, grad, scalar.LeakyRELU)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualApprox(y.Data, []float64{0.01, 0.5}, 1e-12) {
		t.Errorf("ActivateBackward = %v", y.Data)
	}

	bad := blas64.Vector{N: 2, Inc: 0, Data: []float64{1, 1}}
	if _, err := vector.ActivateBackward(x, bad, scalar.LeakyRELU); err == nil {
		t.Error("ActivateBackward with Inc 0 returned nil error")
	}
}
