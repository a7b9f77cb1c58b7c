package interp

// Lerp interpolates linearly between a (t = 0) and b (t = 1).
func Lerp(t, a, b float64) float64 {
	return a*(1-t) + b*t
}

// Bilerp interpolates on the unit square with corner values z00 at (0,0),
// z10 at (1,0), z01 at (0,1) and z11 at (1,1).
func Bilerp(z00, z10, z01, z11, x, y float64) float64 {
	return Lerp(y, Lerp(x, z00, z10), Lerp(x, z01, z11))
}
