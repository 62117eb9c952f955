package server

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localoop/api"
	"localoop/api/places"
	"localoop/models"
	"localoop/server/handlers"
)

// The real places client talking to the local emulator end to end.
func TestPlacesClientAgainstEmulator(t *testing.T) {
	catalog := []models.Place{
		{
			PlaceID:  "r1",
			Name:     "Joe's Diner",
			Vicinity: "1 Main St",
			Geometry: models.Geometry{Location: models.Location{Lat: 45.5210, Lng: -73.5550}},
			Types:    []string{"restaurant"},
		},
		{
			PlaceID:  "c1",
			Name:     "Sunrise Cafe",
			Vicinity: "2 High St",
			Geometry: models.Geometry{Location: models.Location{Lat: 45.5220, Lng: -73.5560}},
			Types:    []string{"cafe"},
		},
	}

	muxRouter := mux.NewRouter()
	NewRouter(handlers.NewNearbyHandler(catalog, "test-key"), muxRouter).RegisterRoutes()
	srv := httptest.NewServer(muxRouter)
	defer srv.Close()

	client := places.NewPlacesApiClient(api.NewHTTPClient(srv.URL + "/maps/api"))
	client.SetCredentials("test-key")

	params := models.QueryParams{
		Center:       models.Coordinate{Latitude: 45.5204, Longitude: -73.5540},
		RadiusMeters: 5000,
		Category:     models.CategoryRestaurant,
		Limit:        15,
	}

	results, err := client.NearbySearch(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "r1", results[0].PlaceID)

	// nothing within range for laundry -> QueryFailed with ZERO_RESULTS
	params.Category = models.CategoryLaundry
	_, err = client.NearbySearch(context.Background(), params)
	var statusErr *places.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "ZERO_RESULTS", statusErr.Status)

	// bad credential -> REQUEST_DENIED
	client.SetCredentials("wrong")
	params.Category = models.CategoryRestaurant
	_, err = client.NearbySearch(context.Background(), params)
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "REQUEST_DENIED", statusErr.Status)
}
