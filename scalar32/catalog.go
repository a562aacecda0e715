package scalar32

import (
	"fmt"

	"github.com/sw965/activation"
	"github.com/sw965/activation/mathx"
	"github.com/sw965/activation/scalar"
)

type Func func(float32, bool) float32

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

// Slice returns the functions in activation.Names order.
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
		return nil, fmt.Errorf("scalar32.Lookup: %w %q", scalar.ErrUnknownName, string(name))
	}
	return c.Slice()[i], nil
}

func Lookup(name activation.Name) (Func, error) {
	return Functions.Get(name)
}

// NumericalDifferentiation uses a fixed-step central difference; gonum's fd works on float64 only.
func NumericalDifferentiation(x float32, f func(float32) float32) float32 {
	var h float32 = 0.001
	return mathx.CentralDifference(f(x+h), f(x-h), h)
}
