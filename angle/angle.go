package angle

import "math"

const π = math.Pi

// AngularDistance returns the signed shortest rotation from a1 to a2, in
// radians, in [-π, π). NaN is propagated.
func AngularDistance(a1, a2 float64) float64 {
	d := math.Mod(a2-a1+π, 2*π) - π
	if d < -π {
		d += 2 * π
	}
	if d >= π {
		d -= 2 * π
	}
	return d
}

// Haversin returns sin²(x/2).
func Haversin(x float64) float64 {
	s := math.Sin(x / 2)
	return s * s
}

func ToRadians(a float64) float64 {
	return a * π / 180.0
}

func ToDegrees(a float64) float64 {
	return a * 180.0 / π
}
