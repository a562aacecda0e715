package scalar

import (
	"errors"
	"fmt"

	"github.com/sw965/activation"
	"gonum.org/v1/gonum/diff/fd"
)

type Func func(float64, bool) float64

var ErrUnknownName = errors.New("unknown activation")

// Catalog holds one field per activation. Slice returns them in
// activation.Names order; keep the two in step when adding an entry.
type Catalog struct {
	Identity     Func
	BinaryStep   Func
	Logistic     Func
	TANH         Func
	SQNL         Func
	ArcTan       Func
	ArSinH       Func
	SoftSign     Func
	RELU         Func
	LeakyRELU    Func
	SoftPlus     Func
	BentIdentity Func
	SiLU         Func
	Sinusiod     Func
	Sinc         Func
	GAUSSIAN     Func
}

var Functions = Catalog{
	Identity:     Identity,
	BinaryStep:   BinaryStep,
	Logistic:     Logistic,
	TANH:         TANH,
	SQNL:         SQNL,
	ArcTan:       ArcTan,
	ArSinH:       ArSinH,
	SoftSign:     SoftSign,
	RELU:         RELU,
	LeakyRELU:    LeakyRELU,
	SoftPlus:     SoftPlus,
	BentIdentity: BentIdentity,
	SiLU:         SiLU,
	Sinusiod:     Sinusiod,
	Sinc:         Sinc,
	GAUSSIAN:     GAUSSIAN,
}

func (c Catalog) Slice() []Func {
	return []Func{
		c.Identity,
		c.BinaryStep,
		c.Logistic,
		c.TANH,
		c.SQNL,
		c.ArcTan,
		c.ArSinH,
		c.SoftSign,
		c.RELU,
		c.LeakyRELU,
		c.SoftPlus,
		c.BentIdentity,
		c.SiLU,
		c.Sinusiod,
		c.Sinc,
		c.GAUSSIAN,
	}
}

func (c Catalog) Get(name activation.Name) (Func, error) {
	i := name.Index()
	if i < 0 {
		return nil, fmt.Errorf("scalar.Lookup: %w %q", ErrUnknownName, string(name))
	}
	return c.Slice()[i], nil
}

func Lookup(name activation.Name) (Func, error) {
	return Functions.Get(name)
}

func Value(f Func) func(float64) float64 {
	return func(x float64) float64 {
		return f(x, false)
	}
}

func Derivative(f Func) func(float64) float64 {
	return func(x float64) float64 {
		return f(x, true)
	}
}

// NumericalDifferentiation estimates f'(x) with a central difference.
func NumericalDifferentiation(x float64, f func(float64) float64) float64 {
	return fd.Derivative(f, x, &fd.Settings{Formula: fd.Central})
}
