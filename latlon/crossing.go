package latlon

import (
	"math"

	"github.com/a-bouts/nav-math/distance"
	"github.com/a-bouts/nav-math/root"
	"github.com/pkg/errors"
)

const (
	crossingStep      = math.Pi / 180
	crossingTolerance = 1e-12
)

// LatitudeCrossing returns the distance in meters after which the great
// circle leaving from on bearing (degrees) first reaches latitude lat.
//
// Only the first half of the great circle is searched. A latitude touched
// without being crossed, like the vertex of the circle, is not found.
func LatitudeCrossing(from LatLon, bearing float64, lat float64) (float64, error) {
	φ1 := toRadians(from.Lat)
	θ := toRadians(bearing)
	sinφ := math.Sin(toRadians(lat))

	f := func(δ float64) float64 {
		return math.Sin(φ1)*math.Cos(δ) + math.Cos(φ1)*math.Sin(δ)*math.Cos(θ) - sinφ
	}

	i := root.FirstIntervalContainingRoot(f, 0, math.Pi, crossingStep)
	if math.IsInf(i, 1) {
		return 0, errors.Wrapf(root.ErrNoBracket, "latitude %.4f not reached from (%.4f, %.4f) on %.1f°", lat, from.Lat, from.Lon, bearing)
	}

	δ, err := root.ImproveRoot(f, i, i+crossingStep, crossingTolerance)
	if err != nil {
		return 0, err
	}

	return distance.ToMeter(δ), nil
}
