package distance

// EarthRadius is the mean radius of the sphere, in meters.
const EarthRadius = 6371e3

// ToRad converts an arc length on the earth surface to its angle in radians.
func ToRad(meters float64) float64 {
	return meters / EarthRadius
}

// ToMeter converts an angle in radians to the arc length on the earth surface.
func ToMeter(rad float64) float64 {
	return EarthRadius * rad
}
