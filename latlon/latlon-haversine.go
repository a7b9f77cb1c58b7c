package latlon

import (
	"math"

	"github.com/a-bouts/nav-math/angle"
	"github.com/a-bouts/nav-math/azimuth"
	"github.com/a-bouts/nav-math/distance"
)

// centralAngle is the great circle angle between two points, in radians.
func centralAngle(φ1, φ2, Δλ float64) float64 {
	a := angle.Haversin(φ2-φ1) + math.Cos(φ1)*math.Cos(φ2)*angle.Haversin(Δλ)
	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// initialBearing is the compass azimuth leaving from, in radians.
func initialBearing(φ1, φ2, Δλ float64) float64 {
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	y := math.Sin(Δλ) * math.Cos(φ2)
	return azimuth.Canonicalize(math.Atan2(y, x))
}

// DistanceTo returns the great circle distance in meters.
func DistanceTo(from, to LatLon) float64 {
	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)
	Δλ := toRadians(to.Lon - from.Lon)

	return distance.ToMeter(centralAngle(φ1, φ2, Δλ))
}

// BearingTo returns the initial bearing in degrees, in [0, 360).
func BearingTo(from, to LatLon) float64 {
	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)
	Δλ := toRadians(to.Lon - from.Lon)

	return wrap360(toDegrees(initialBearing(φ1, φ2, Δλ)))
}

func DistanceAndBearingTo(from, to LatLon) (float64, float64) {
	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)
	Δλ := toRadians(to.Lon - from.Lon)

	d := distance.ToMeter(centralAngle(φ1, φ2, Δλ))
	b := toDegrees(initialBearing(φ1, φ2, Δλ))

	return d, wrap360(b)
}

// Destination returns the point reached after the given distance in meters
// along the great circle leaving from on bearing (degrees).
func Destination(from LatLon, bearing float64, dist float64) LatLon {
	φ1 := toRadians(from.Lat)
	λ1 := toRadians(from.Lon)
	θ := toRadians(bearing)

	δ := distance.ToRad(dist)

	φ2 := math.Asin(math.Sin(φ1)*math.Cos(δ) + math.Cos(φ1)*math.Sin(δ)*math.Cos(θ))
	λ2 := λ1 + math.Atan2(math.Sin(θ)*math.Sin(δ)*math.Cos(φ1), math.Cos(δ)-math.Sin(φ1)*math.Sin(φ2))

	return LatLon{Lat: toDegrees(φ2), Lon: wrap180(toDegrees(λ2))}
}
