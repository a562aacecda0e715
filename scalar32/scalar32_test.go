package scalar32_test

import (
	"errors"
	"math"
	"testing"

	"github.com/sw965/activation"
	"github.com/sw965/activation/mathx/randx"
	"github.com/sw965/activation/scalar"
	"github.com/sw965/activation/scalar32"
	fscalar "gonum.org/v1/gonum/floats/scalar"
)

// float32 overflows exp beyond ~88, so inputs stay well inside that.
func testInputs() []float32 {
	xs := []float32{-20, -3, -2, -1.5, -1, -0.5, 0, 0.5, 1, 1.5, 2, 3, 20}
	for _, x := range randx.NewFloat64sUniform(100, -20, 20, randx.NewMt19937(7)) {
		if math.Abs(x) < 0.5 {
			continue
		}
		xs = append(xs, float32(x))
	}
	return xs
}

func TestMatchesFloat64(t *testing.T) {
	fs32 := scalar32.Functions.Slice()
	fs64 := scalar.Functions.Slice()
	if len(fs32) != len(fs64) {
		t.Fatalf("len = %d, want %d", len(fs32), len(fs64))
	}

	for i, f32 := range fs32 {
		f64 := fs64[i]
		for _, x := range testInputs() {
			for _, d := range []bool{false, true} {
				got := float64(f32(x, d))
				want := f64(float64(x), d)
				if !fscalar.EqualWithinAbsOrRel(got, want, 1e-4, 1e-4) {
					t.Errorf("%s(%v, %v) = %v, float64 gives %v", activation.Names[i], x, d, got, want)
				}
			}
		}
	}
}

func TestBoundaries(t *testing.T) {
	testCases := []struct {
		name       string
		f          scalar32.Func
		x          float32
		derivative bool
		want       float32
	}{
		{"BinaryStep at 0", scalar32.BinaryStep, 0, false, 1},
		{"BinaryStep just below 0", scalar32.BinaryStep, -0.0001, false, 0},
		{"RELU at 0", scalar32.RELU, 0, false, 0},
		{"RELU slope at 0", scalar32.RELU, 0, true, 0},
		{"LeakyRELU slope at 0", scalar32.LeakyRELU, 0, true, 0.01},
		{"Sinc at 0", scalar32.Sinc, 0, false, 1},
		{"Sinc slope at 0", scalar32.Sinc, 0, true, 0},
		{"SQNL at 2", scalar32.SQNL, 2, false, 1},
		{"SQNL at -2", scalar32.SQNL, -2, false, -1},
		{"SQNL slope at -1", scalar32.SQNL, -1, true, 0},
		{"SQNL slope at 3", scalar32.SQNL, 3, true, 0},
		{"Sinusiod slope at 0", scalar32.Sinusiod, 0, true, 1},
	}

	for _, tc := range testCases {
		if got := tc.f(tc.x, tc.derivative); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestLookup(t *testing.T) {
	fs := scalar32.Functions.Slice()
	for i, name := range activation.Names {
		f, err := scalar32.Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := f(1.25, true), fs[i](1.25, true); got != want {
			t.Errorf("Lookup(%s)(1.25, true) = %v, want %v", name, got, want)
		}
	}

	if _, err := scalar32.Lookup("GELU"); !errors.Is(err, scalar.ErrUnknownName) {
		t.Errorf("Lookup(GELU) error = %v, want ErrUnknownName", err)
	}
}

func TestNumericalDifferentiation(t *testing.T) {
	f := func(x float32) float32 { return scalar32.TANH(x, false) }
	for _, x := range []float32{-1, 0, 0.5, 1.5} {
		num := scalar32.NumericalDifferentiation(x, f)
		if got := scalar32.TANH(x, true); math.Abs(float64(num-got)) > 1e-3 {
			t.Errorf("TANH'(%v) = %v, numerical %v", x, got, num)
		}
	}
}
