package models

import (
	"fmt"
	"math"
)

const earthRadiusMeters = 6371000.0

// Coordinate is a captured position in floating point degrees. Values are
// replaced wholesale on re-acquisition, never mutated in place.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c Coordinate) ToString() string {
	return fmt.Sprintf("Coordinate(lat=%f, lon=%f)", c.Latitude, c.Longitude)
}

// LocationParam renders the coordinate in the provider's "lat,lng" form.
func (c Coordinate) LocationParam() string {
	return fmt.Sprintf("%.6f,%.6f", c.Latitude, c.Longitude)
}

// DistanceMeters returns the haversine great-circle distance to other.
func (c Coordinate) DistanceMeters(other Coordinate) float64 {
	lat1 := c.Latitude * math.Pi / 180
	lat2 := other.Latitude * math.Pi / 180
	dLat := (other.Latitude - c.Latitude) * math.Pi / 180
	dLon := (other.Longitude - c.Longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Region is a map viewport: a center plus latitude/longitude deltas that
// encode the zoom level.
type Region struct {
	Center         Coordinate `json:"center"`
	LatitudeDelta  float64    `json:"latitudeDelta"`
	LongitudeDelta float64    `json:"longitudeDelta"`
}

// NewRegion builds a viewport around center with the given deltas.
func NewRegion(center Coordinate, latDelta, lonDelta float64) Region {
	return Region{
		Center:         center,
		LatitudeDelta:  latDelta,
		LongitudeDelta: lonDelta,
	}
}
