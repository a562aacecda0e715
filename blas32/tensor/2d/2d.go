package tensor2d

import (
	"fmt"

	"github.com/sw965/activation/scalar32"
	"gonum.org/v1/gonum/blas/blas32"
)

func NewZeros(rows, cols int) blas32.General {
	return blas32.General{
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
		Data:   make([]float32, rows*cols),
	}
}

func NewZerosLike(gen blas32.General) blas32.General {
	return NewZeros(gen.Rows, gen.Cols)
}

// Activate applies f to every element of gen. The result is packed
// (Stride == Cols) even when gen is a view with a wider stride.
func Activate(gen blas32.General, f scalar32.Func, derivative bool) (blas32.General, error) {
	if gen.Rows < 0 || gen.Cols < 0 {
		return blas32.General{}, fmt.Errorf("tensor2d.Activate: negative shape %dx%d", gen.Rows, gen.Cols)
	}
	if gen.Stride < gen.Cols {
		return blas32.General{}, fmt.Errorf("tensor2d.Activate: Stride %d < Cols %d", gen.Stride, gen.Cols)
	}
	if gen.Rows > 0 && gen.Cols > 0 && len(gen.Data) < (gen.Rows-1)*gen.Stride+gen.Cols {
		return blas32.General{}, fmt.Errorf("tensor2d.Activate: len(Data) = %d, too short for %dx%d stride %d", len(gen.Data), gen.Rows, gen.Cols, gen.Stride)
	}

	y := NewZeros(gen.Rows, gen.Cols)
	if gen.Cols == 0 {
		return y, nil
	}
	for i := 0; i < gen.Rows; i++ {
		row := gen.Data[i*gen.Stride : i*gen.Stride+gen.Cols]
		for j, e := range row {
			y.Data[i*y.Stride+j] = f(e, derivative)
		}
	}
	return y, nil
}
