package places

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"localoop/api"
	"localoop/models"
)

const NEARBY_SEARCH_ENDPOINT = "/place/nearbysearch/json"

// PlacesApiClient embeds the common HTTPClient
type PlacesApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	apiKey          string
}

// NewPlacesApiClient creates a new instance of PlacesApiClient
func NewPlacesApiClient(httpClient *api.HTTPClient) *PlacesApiClient {
	return &PlacesApiClient{
		HTTPClient: httpClient,
	}
}

func (c *PlacesApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

// NearbySearch retrieves places around params.Center and decodes the
// response into the provider envelope. One request per call, no retry, no
// pagination follow-up.
func (c *PlacesApiClient) NearbySearch(ctx context.Context, params models.QueryParams) ([]models.Place, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("location", params.Center.LocationParam())
	query.Set("radius", strconv.Itoa(params.RadiusMeters))
	query.Set("type", params.Category.TokenParam())
	query.Set("key", c.apiKey)

	var response models.NearbySearchResponse
	if err := c.Get(ctx, NEARBY_SEARCH_ENDPOINT, query, &response); err != nil {
		return nil, fmt.Errorf("nearby search request failed: %w", err)
	}

	if response.Status != models.StatusOK {
		return nil, &StatusError{Status: response.Status}
	}

	// Truncate to the screen's limit preserving the provider's ordering.
	results := response.Results
	if len(results) > params.Limit {
		results = results[:params.Limit]
	}
	return results, nil
}
