// Package azimuth converts azimuths between the compass convention (0 is
// north, clockwise) and the math convention (0 is east, counter clockwise).
// Azimuths are radians and canonical azimuths lie in [0, 2π).
package azimuth

import (
	"math"

	"github.com/pkg/errors"
)

const τ = 2 * math.Pi

var ErrNotCanonical = errors.New("azimuth is not in [0, 2π)")

func IsCanonical(az float64) bool {
	return 0 <= az && az < τ
}

// Canonicalize reduces az into [0, 2π), negative values included.
func Canonicalize(az float64) float64 {
	r := math.Mod(az, τ)
	if r < 0 {
		r += τ
	}
	// r+τ can round up to τ for tiny negative r
	if r >= τ {
		r = 0
	}
	return r
}

func check(az float64) error {
	if !IsCanonical(az) {
		return errors.Wrapf(ErrNotCanonical, "azimuth %g", az)
	}
	return nil
}

// ToMath reflects a compass azimuth into the math convention.
func ToMath(az float64) (float64, error) {
	if err := check(az); err != nil {
		return 0, err
	}
	return Canonicalize(τ - az), nil
}

// FromMath is the inverse of ToMath. The reflection is its own inverse.
func FromMath(az float64) (float64, error) {
	return ToMath(az)
}
