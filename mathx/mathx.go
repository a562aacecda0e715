package mathx

import (
	"golang.org/x/exp/constraints"
)

// ConvertScale maps x from [xMin, xMax] onto [yMin, yMax] linearly.
func ConvertScale[F constraints.Float](x, xMin, xMax, yMin, yMax F) F {
	return yMin + (yMax-yMin)*(x-xMin)/(xMax-xMin)
}

func CentralDifference[F constraints.Float](plusY, minusY, h F) F {
	return (plusY - minusY) / (2.0 * h)
}

// Linspace returns n evenly spaced points from min to max inclusive.
// n == 1 yields {min}; n <= 0 yields an empty slice.
func Linspace[F constraints.Float](n int, min, max F) []F {
	if n <= 0 {
		return []F{}
	}
	if n == 1 {
		return []F{min}
	}
	ys := make([]F, n)
	last := F(n - 1)
	for i := range ys {
		ys[i] = ConvertScale(F(i), 0, last, min, max)
	}
	return ys
}
