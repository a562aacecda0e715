// Package scalar implements the float64 activation catalog.
//
// Every function takes the input and a derivative flag: false evaluates f(x),
// true evaluates f'(x). The functions are total over finite input and do not
// check for NaN or infinities.
package scalar

import (
	"math"

	"github.com/sw965/activation"
)

func Identity(x float64, derivative bool) float64 {
	if derivative {
		return 1
	}
	return x
}

func BinaryStep(x float64, derivative bool) float64 {
	if derivative {
		return 0
	}
	if x < 0 {
		return 0
	} else {
		return 1
	}
}

func Logistic(x float64, derivative bool) float64 {
	y := 1 / (1 + math.Exp(-x))
	if derivative {
		return y * (1 - y)
	}
	return y
}

func TANH(x float64, derivative bool) float64 {
	y := math.Tanh(x)
	if derivative {
		return 1 - (y * y)
	}
	return y
}

// SQNL is the square nonlinearity.
//
// Known quirk: the derivative is 0 for every x < 0, including -2 <= x < 0
// where the value branch x+(x/2)^2 has slope 1+x/2. Callers depend on the
// zero, so it is kept.
func SQNL(x float64, derivative bool) float64 {
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

func ArcTan(x float64, derivative bool) float64 {
	if derivative {
		return 1 / (x*x + 1)
	}
	return math.Atan(x)
}

func ArSinH(x float64, derivative bool) float64 {
	if derivative {
		return 1 / math.Sqrt(x*x+1)
	}
	return math.Asinh(x)
}

func SoftSign(x float64, derivative bool) float64 {
	d := 1 + math.Abs(x)
	if derivative {
		return 1 / (d * d)
	}
	return x / d
}

func RELU(x float64, derivative bool) float64 {
	if derivative {
		if x > 0 {
			return 1
		} else {
			return 0
		}
	}
	if x > 0 {
		return x
	} else {
		return 0
	}
}

func LeakyRELU(x float64, derivative bool) float64 {
	if derivative {
		if x > 0 {
			return 1
		} else {
			return activation.LeakyRELUSlope
		}
	}
	if x > 0 {
		return x
	} else {
		return activation.LeakyRELUSlope * x
	}
}

func SoftPlus(x float64, derivative bool) float64 {
	if derivative {
		return 1 / (1 + math.Exp(-x))
	}
	return math.Log(1 + math.Exp(x))
}

func BentIdentity(x float64, derivative bool) float64 {
	r := math.Sqrt(x*x + 1)
	if derivative {
		return x/(2*r) + 1
	}
	return (r-1)/2 + x
}

// SiLU is x times the logistic function.
func SiLU(x float64, derivative bool) float64 {
	e := math.Exp(-x)
	if derivative {
		return (1 + e + x*e) / ((1 + e) * (1 + e))
	}
	return x / (1 + e)
}

func Sinusiod(x float64, derivative bool) float64 {
	if derivative {
		return math.Cos(x)
	}
	return math.Sin(x)
}

// Sinc is sin(x)/x, defined as 1 (slope 0) at x == 0.
func Sinc(x float64, derivative bool) float64 {
	if x == 0 {
		if derivative {
			return 0
		}
		return 1
	}
	if derivative {
		return math.Cos(x)/x - math.Sin(x)/(x*x)
	}
	return math.Sin(x) / x
}

func GAUSSIAN(x float64, derivative bool) float64 {
	y := math.Exp(-x * x)
	if derivative {
		return -2 * x * y
	}
	return y
}
