package model

import (
	"github.com/a-bouts/nav-math/latlon"
)

type Error struct {
	Error string `json:"error"`
}

type Value struct {
	Value float64 `json:"value"`
}

type AngularDistance struct {
	Distance float64 `json:"distance"`
}

type Azimuth struct {
	Azimuth       float64 `json:"azimuth"`
	Canonical     bool    `json:"canonical"`
	Canonicalized float64 `json:"canonicalized"`
}

type Octant struct {
	Octant string `json:"octant"`
}

type Distance struct {
	Meters  float64 `json:"meters"`
	Radians float64 `json:"radians"`
}

// Bilerp holds the corner values of the unit square and the point to
// interpolate.
type Bilerp struct {
	Z00 float64 `json:"z00"`
	Z10 float64 `json:"z10"`
	Z01 float64 `json:"z01"`
	Z11 float64 `json:"z11"`
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
}

type Bearing struct {
	From latlon.LatLon `json:"from"`
	To   latlon.LatLon `json:"to"`
}

type BearingResult struct {
	Distance float64 `json:"distance"`
	Bearing  float64 `json:"bearing"`
	Octant   string  `json:"octant"`
}

type Crossing struct {
	From    latlon.LatLon `json:"from"`
	Bearing float64       `json:"bearing"`
	Lat     float64       `json:"lat"`
}

type CrossingResult struct {
	Distance float64       `json:"distance"`
	Position latlon.LatLon `json:"position"`
}
