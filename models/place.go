package models

import "fmt"

// Place is a read-only point-of-interest record as returned by the places
// provider. The UI holds a borrowed, never-mutated copy for the lifetime of
// one query's result set.
type Place struct {
	PlaceID      string        `json:"place_id"`
	Name         string        `json:"name"`
	Vicinity     string        `json:"vicinity"`
	Geometry     Geometry      `json:"geometry"`
	Types        []string      `json:"types"`
	Rating       *float64      `json:"rating,omitempty"`
	OpeningHours *OpeningHours `json:"opening_hours,omitempty"`
}

type Geometry struct {
	Location Location `json:"location"`
}

// Location is the provider's lat/lng pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type OpeningHours struct {
	OpenNow bool `json:"open_now"`
}

// Coordinate converts the provider geometry into the client coordinate type.
func (p Place) Coordinate() Coordinate {
	return Coordinate{
		Latitude:  p.Geometry.Location.Lat,
		Longitude: p.Geometry.Location.Lng,
	}
}

// OpenNow reports whether the provider marked the place as currently open.
// Absent opening hours read as closed/unknown.
func (p Place) OpenNow() bool {
	return p.OpeningHours != nil && p.OpeningHours.OpenNow
}

func (p Place) ToString() string {
	return fmt.Sprintf("Place(id=%s, name=%s, vicinity=%s)", p.PlaceID, p.Name, p.Vicinity)
}

// NearbySearchResponse mirrors the provider's nearby-search JSON envelope.
type NearbySearchResponse struct {
	Status  string  `json:"status"`
	Results []Place `json:"results"`
}

// StatusOK is the only provider status treated as success; everything else
// (ZERO_RESULTS included) surfaces as a failed query.
const StatusOK = "OK"
