package tensor2d_test

import (
	"math"
	"testing"

	tensor2d "github.com/sw965/activation/blas32/tensor/2d"
	"github.com/sw965/activation/scalar32"
	"gonum.org/v1/gonum/blas/blas32"
)

func TestActivateView(t *testing.T) {
	gen := blas32.General{
		Rows:   2,
		Cols:   2,
		Stride: 3,
		Data: []float32{
			-1, 2, 100,
			0, -3,
		},
	}
	y, err := tensor2d.Activate(gen, scalar32.LeakyRELU, false)
	if err != nil {
		t.Fatal(err)
	}
	if y.Stride != 2 {
		t.Fatalf("Stride = %d, want 2", y.Stride)
	}
	want := []float32{-0.01, 2, 0, -0.03}
	for i := range want {
		if math.Abs(float64(y.Data[i]-want[i])) > 1e-6 {
			t.Errorf("y.Data[%d] = %v, want %v", i, y.Data[i], want[i])
		}
	}
}

func TestActivateInvalid(t *testing.T) {
	testCases := []blas32.General{
		{Rows: 2, Cols: 3, Stride: 2, Data: make([]float32, 6)},
		{Rows: 2, Cols: 2, Stride: 2, Data: make([]float32, 3)},
		{Rows: -1, Cols: 2, Stride: 2},
	}
	for _, gen := range testCases {
		if _, err := tensor2d.Activate(gen, scalar32.Identity, false); err == nil {
			t.Errorf("Activate(%dx%d stride %d) returned nil error", gen.Rows, gen.Cols, gen.Stride)
		}
	}
}

func TestNewZerosLike(t *testing.T) {
	gen := tensor2d.NewZeros(3, 4)
	like := tensor2d.NewZerosLike(gen)
	if like.Rows != 3 || like.Cols != 4 || like.Stride != 4 || len(like.Data) != 12 {
		t.Errorf("NewZerosLike = %+v", like)
	}
}
