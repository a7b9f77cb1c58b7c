package angle

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func nextAngle(r *rand.Rand) float64 {
	return ToRadians(r.Float64()*360 - 180)
}

func TestHaversin(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		a := nextAngle(r)
		want := (1 - math.Cos(a)) / 2
		if got := Haversin(a); !scalar.EqualWithinAbs(got, want, 1e-10) {
			t.Errorf("Haversin(%f) = %f; want %f", a, got, want)
		}
	}
}

func TestAngularDistanceKnownAngles(t *testing.T) {
	tests := []struct {
		a1, a2, want float64
	}{
		{0, 45, 45},
		{45, 0, -45},
		{0, 179, 179},
		{0, 181, -179},
		{181, 359, 178},
		{181, 2, -179},
		{0, 0, 0},
		{-720, 90, 90},
		{350, 10, 20},
	}
	for _, tt := range tests {
		got := AngularDistance(ToRadians(tt.a1), ToRadians(tt.a2))
		if !scalar.EqualWithinAbs(got, ToRadians(tt.want), 1e-10) {
			t.Errorf("AngularDistance(%.0f°, %.0f°) = %f°; want %.0f°", tt.a1, tt.a2, ToDegrees(got), tt.want)
		}
	}
}

func TestAngularDistanceRange(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		a1 := nextAngle(r) * 20
		a2 := nextAngle(r) * 20
		d := AngularDistance(a1, a2)
		if d < -math.Pi || d >= math.Pi {
			t.Errorf("AngularDistance(%f, %f) = %f; want in [-π, π)", a1, a2, d)
		}
	}
}

func TestAngularDistanceIsAntisymmetric(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		a1 := nextAngle(r)
		a2 := nextAngle(r)
		s := AngularDistance(a1, a2) + AngularDistance(a2, a1)
		if !scalar.EqualWithinAbs(s, 0, 1e-10) {
			t.Errorf("AngularDistance(%f, %f) + AngularDistance(%f, %f) = %g; want 0", a1, a2, a2, a1, s)
		}
	}
}

func TestAngularDistanceNaN(t *testing.T) {
	if d := AngularDistance(math.NaN(), 1); !math.IsNaN(d) {
		t.Errorf("AngularDistance(NaN, 1) = %f; want NaN", d)
	}
}
