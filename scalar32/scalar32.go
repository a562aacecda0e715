// Package scalar32 is the float32 counterpart of package scalar.
// Formulas, branch boundaries and the SQNL derivative quirk are identical.
package scalar32

import (
	"github.com/chewxy/math32"
	"github.com/sw965/activation"
)

func Identity(x float32, derivative bool) float32 {
	if derivative {
		return 1
	}
	return x
}

func BinaryStep(x float32, derivative bool) float32 {
	if derivative || x < 0 {
		return 0
	}
	return 1
}

func Logistic(x float32, derivative bool) float32 {
	y := 1 / (1 + math32.Exp(-x))
	if derivative {
		return y * (1 - y)
	}
	return y
}

func TANH(x float32, derivative bool) float32 {
	y := math32.Tanh(x)
	if derivative {
		return 1 - (y * y)
	}
	return y
}

// SQNL: derivative is 0 for all x < 0, see scalar.SQNL.
func SQNL(x float32, derivative bool) float32 {
	if derivative {
		if x < 0 || x > 2 {
			return 0
		}
		return 1 - x/2
	}

	switch {
	case x > 2:
		return 1
	case x >= 0:
		return x - (x/2)*(x/2)
	case x >= -2:
		return x + (x/2)*(x/2)
	default:
		return -1
	}
}

func ArcTan(x float32, derivative bool) float32 {
	if derivative {
		return 1 / (x*x + 1)
	}
	return math32.Atan(x)
}

func ArSinH(x float32, derivative bool) float32 {
	if derivative {
		return 1 / math32.Sqrt(x*x+1)
	}
	return math32.Asinh(x)
}

func SoftSign(x float32, derivative bool) float32 {
	d := 1 + math32.Abs(x)
	if derivative {
		return 1 / (d * d)
	}
	return x / d
}

func RELU(x float32, derivative bool) float32 {
	if x > 0 {
		if derivative {
			return 1
		}
		return x
	}
	return 0
}

func LeakyRELU(x float32, derivative bool) float32 {
	if x > 0 {
		if derivative {
			return 1
		}
		return x
	}
	if derivative {
		return activation.LeakyRELUSlope
	}
	return activation.LeakyRELUSlope * x
}

func SoftPlus(x float32, derivative bool) float32 {
	if derivative {
		return 1 / (1 + math32.Exp(-x))
	}
	return math32.Log(1 + math32.Exp(x))
}

func BentIdentity(x float32, derivative bool) float32 {
	r := math32.Sqrt(x*x + 1)
	if derivative {
		return x/(2*r) + 1
	}
	return (r-1)/2 + x
}

func SiLU(x float32, derivative bool) float32 {
	e := math32.Exp(-x)
	if derivative {
		return (1 + e + x*e) / ((1 + e) * (1 + e))
	}
	return x / (1 + e)
}

func Sinusiod(x float32, derivative bool) float32 {
	if derivative {
		return math32.Cos(x)
	}
	return math32.Sin(x)
}

func Sinc(x float32, derivative bool) float32 {
	if x == 0 {
		if derivative {
			return 0
		}
		return 1
	}
	if derivative {
		return math32.Cos(x)/x - math32.Sin(x)/(x*x)
	}
	return math32.Sin(x) / x
}

func GAUSSIAN(x float32, derivative bool) float32 {
	y := math32.Exp(-x * x)
	if derivative {
		return -2 * x * y
	}
	return y
}
