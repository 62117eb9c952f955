package location

import (
	"context"
	"fmt"

	"localoop/api"
	"localoop/models"
)

// geoIPResponse mirrors the ip-api.com JSON payload.
type geoIPResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// GeoIPProvider positions the client by IP geolocation. It is the concrete
// backend for headless environments where no platform location service
// exists; accuracy is city-level.
type GeoIPProvider struct {
	*api.HTTPClient
}

// NewGeoIPProvider creates a provider against the given geolocation base URL.
func NewGeoIPProvider(httpClient *api.HTTPClient) *GeoIPProvider {
	return &GeoIPProvider{HTTPClient: httpClient}
}

// RequestPermission always grants: IP lookup needs no platform permission.
func (p *GeoIPProvider) RequestPermission(ctx context.Context) (Permission, error) {
	return PermissionGranted, nil
}

// CurrentCoordinate performs a fresh lookup on every call.
func (p *GeoIPProvider) CurrentCoordinate(ctx context.Context) (models.Coordinate, error) {
	var response geoIPResponse
	if err := p.Get(ctx, "/json", nil, &response); err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if response.Status != "success" {
		return models.Coordinate{}, fmt.Errorf("%w: geolocation status %q (%s)",
			ErrUnavailable, response.Status, response.Message)
	}
	return models.Coordinate{Latitude: response.Lat, Longitude: response.Lon}, nil
}
