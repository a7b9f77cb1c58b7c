package azimuth

import "math"

// Octant is one of the 8 compass sectors of 45°, centered on its compass point.
type Octant uint8

const (
	N Octant = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

var octantNames = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (o Octant) String() string {
	return octantNames[o%8]
}

// ToOctant returns the sector of a canonical compass azimuth. Sector
// boundaries are at odd multiples of π/8.
func ToOctant(az float64) (Octant, error) {
	if err := check(az); err != nil {
		return N, err
	}
	i := int(math.Floor(az/(math.Pi/4) + 0.5))
	return Octant(i % 8), nil
}

// Label builds the name of o from the four base tokens. Combined labels put
// the north/south token first.
func (o Octant) Label(n, e, s, w string) string {
	switch o % 8 {
	case NE:
		return n + e
	case E:
		return e
	case SE:
		return s + e
	case S:
		return s
	case SW:
		return s + w
	case W:
		return w
	case NW:
		return n + w
	default:
		return n
	}
}

// ToOctantStr names the sector of az with the caller's tokens, e.g.
// ToOctantStr(az, "N", "E", "S", "W") or ToOctantStr(az, "nord", "est", "sud", "ouest").
func ToOctantStr(az float64, n, e, s, w string) (string, error) {
	o, err := ToOctant(az)
	if err != nil {
		return "", err
	}
	return o.Label(n, e, s, w), nil
}
