package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinate_LocationParam(t *testing.T) {
	c := Coordinate{Latitude: 45.5204001, Longitude: -73.5540803}
	assert.Equal(t, "45.520400,-73.554080", c.LocationParam())
}

func TestCoordinate_DistanceMeters(t *testing.T) {
	montreal := Coordinate{Latitude: 45.5204, Longitude: -73.5540}

	// zero distance to itself
	assert.InDelta(t, 0, montreal.DistanceMeters(montreal), 0.001)

	// ~1 degree of latitude is ~111 km
	north := Coordinate{Latitude: 46.5204, Longitude: -73.5540}
	assert.InDelta(t, 111195, montreal.DistanceMeters(north), 500)

	// symmetric
	assert.InDelta(t, montreal.DistanceMeters(north), north.DistanceMeters(montreal), 0.001)
}

func TestQueryParams_Validate(t *testing.T) {
	valid := QueryParams{
		Center:       Coordinate{Latitude: 45.52, Longitude: -73.55},
		RadiusMeters: 5000,
		Category:     CategoryAll,
		Limit:        20,
	}
	assert.NoError(t, valid.Validate())

	zeroRadius := valid
	zeroRadius.RadiusMeters = 0
	assert.Error(t, zeroRadius.Validate())

	zeroLimit := valid
	zeroLimit.Limit = 0
	assert.Error(t, zeroLimit.Validate())

	badLatitude := valid
	badLatitude.Center.Latitude = 91
	assert.Error(t, badLatitude.Validate())

	badLongitude := valid
	badLongitude.Center.Longitude = -181
	assert.Error(t, badLongitude.Validate())
}

func TestPlace_OpenNow(t *testing.T) {
	assert.False(t, Place{}.OpenNow())
	assert.False(t, Place{OpeningHours: &OpeningHours{}}.OpenNow())
	assert.True(t, Place{OpeningHours: &OpeningHours{OpenNow: true}}.OpenNow())
}
