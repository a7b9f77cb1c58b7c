package interp

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func value(r *rand.Rand) float64 {
	return (r.Float64() - 0.5) * 1000
}

func TestLerpEdgesAndMiddle(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		a, b := value(r), value(r)
		if got := Lerp(0, a, b); !scalar.EqualWithinAbs(got, a, 1e-10) {
			t.Errorf("Lerp(0, %f, %f) = %f; want %f", a, b, got, a)
		}
		if got := Lerp(0.5, a, b); !scalar.EqualWithinAbs(got, (a+b)/2, 1e-10) {
			t.Errorf("Lerp(0.5, %f, %f) = %f; want %f", a, b, got, (a+b)/2)
		}
		if got := Lerp(1, a, b); !scalar.EqualWithinAbs(got, b, 1e-10) {
			t.Errorf("Lerp(1, %f, %f) = %f; want %f", a, b, got, b)
		}
	}
}

func TestLerpInRange(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		a, b := value(r), value(r)
		p := r.Float64()
		v := Lerp(p, a, b)
		if v < math.Min(a, b)-1e-10 || v > math.Max(a, b)+1e-10 {
			t.Errorf("Lerp(%f, %f, %f) = %f; want between", p, a, b, v)
		}
	}
}

func TestBilerpInRange(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		v1, v2, v3, v4 := value(r), value(r), value(r), value(r)
		x, y := r.Float64(), r.Float64()
		v := Bilerp(v1, v2, v3, v4, x, y)
		lo := math.Min(math.Min(v1, v2), math.Min(v3, v4))
		hi := math.Max(math.Max(v1, v2), math.Max(v3, v4))
		if v < lo-1e-10 || v > hi+1e-10 {
			t.Errorf("Bilerp(%f, %f, %f, %f, %f, %f) = %f; want in [%f, %f]", v1, v2, v3, v4, x, y, v, lo, hi)
		}
	}
}

func TestBilerpCornersAndSides(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 500; i++ {
		v1, v2, v3, v4 := r.Float64(), r.Float64(), r.Float64(), r.Float64()
		tests := []struct {
			x, y, want float64
		}{
			{0, 0, v1},
			{1, 0, v2},
			{0, 1, v3},
			{1, 1, v4},
			{0.5, 0, (v1 + v2) / 2},
			{0, 0.5, (v1 + v3) / 2},
			{0.5, 1, (v3 + v4) / 2},
			{1, 0.5, (v2 + v4) / 2},
		}
		for _, tt := range tests {
			if got := Bilerp(v1, v2, v3, v4, tt.x, tt.y); !scalar.EqualWithinAbs(got, tt.want, 1e-10) {
				t.Errorf("Bilerp(%f, %f) = %f; want %f", tt.x, tt.y, got, tt.want)
			}
		}
	}
}
