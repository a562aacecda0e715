// Package activation names the fixed set of scalar activation functions.
//
// The functions themselves live in the scalar (float64) and scalar32 (float32)
// packages. Both expose them in the order of Names.
package activation

type Name string

const (
	Identity     Name = "Identity"
	BinaryStep   Name = "BinaryStep"
	Logistic     Name = "Logistic"
	TANH         Name = "TANH"
	SQNL         Name = "SQNL"
	ArcTan       Name = "ArcTan"
	ArSinH       Name = "ArSinH"
	SoftSign     Name = "SoftSign"
	RELU         Name = "RELU"
	LeakyRELU    Name = "LeakyRELU"
	SoftPlus     Name = "SoftPlus"
	BentIdentity Name = "BentIdentity"
	SiLU         Name = "SiLU"
	Sinusiod     Name = "Sinusiod"
	Sinc         Name = "Sinc"
	GAUSSIAN     Name = "GAUSSIAN"
)

// Names is the canonical order. Catalog slices follow it index for index.
var Names = []Name{
	Identity,
	BinaryStep,
	Logistic,
	TANH,
	SQNL,
	ArcTan,
	ArSinH,
	SoftSign,
	RELU,
	LeakyRELU,
	SoftPlus,
	BentIdentity,
	SiLU,
	Sinusiod,
	Sinc,
	GAUSSIAN,
}

const LeakyRELUSlope = 0.01

// Index returns the position of name in Names, or -1.
func (name Name) Index() int {
	for i, n := range Names {
		if n == name {
			return i
		}
	}
	return -1
}

func (name Name) String() string {
	return string(name)
}
