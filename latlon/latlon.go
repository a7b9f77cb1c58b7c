package latlon

import (
	"github.com/a-bouts/nav-math/angle"
	"github.com/a-bouts/nav-math/azimuth"
)

// LatLon is a point on the sphere, in degrees.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func toRadians(a float64) float64 {
	return angle.ToRadians(a)
}

func toDegrees(a float64) float64 {
	return angle.ToDegrees(a)
}

// wrap360 maps a bearing in degrees into [0, 360).
func wrap360(d float64) float64 {
	if 0.0 <= d && d < 360.0 {
		return d
	}
	w := toDegrees(azimuth.Canonicalize(toRadians(d)))
	if w >= 360.0 {
		w = 0
	}
	return w
}

// wrap180 maps a longitude in degrees into [-180, 180).
func wrap180(d float64) float64 {
	if -180.0 <= d && d < 180.0 {
		return d
	}
	return toDegrees(angle.AngularDistance(0, toRadians(d)))
}
