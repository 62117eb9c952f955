package places

import (
	"context"
	"log"

	"localoop/models"
	"localoop/util"
)

// PlacesApiClientMock serves canned places from a JSON fixture instead of
// calling the provider.
type PlacesApiClientMock struct {
	fixturePath string
}

// NewPlacesApiClientMock creates a mock backed by the fixture at path.
func NewPlacesApiClientMock(fixturePath string) *PlacesApiClientMock {
	return &PlacesApiClientMock{fixturePath: fixturePath}
}

func (c *PlacesApiClientMock) SetCredentials(apiKey string) {}

// NearbySearch loads the fixture envelope, keeps places whose types
// intersect the requested category tokens, and truncates to params.Limit.
func (c *PlacesApiClientMock) NearbySearch(ctx context.Context, params models.QueryParams) ([]models.Place, error) {
	response, err := util.ReadNearbySearchResponseFromJSON(c.fixturePath)
	if err != nil {
		log.Printf("[PlacesApiClientMock] could not read fixture %s: %v", c.fixturePath, err)
		return nil, err
	}

	if response.Status != models.StatusOK {
		return nil, &StatusError{Status: response.Status}
	}

	wanted := map[string]bool{}
	for _, tok := range params.Category.Tokens() {
		wanted[tok] = true
	}

	var results []models.Place
	for _, p := range response.Results {
		for _, t := range p.Types {
			if wanted[t] {
				results = append(results, p)
				break
			}
		}
	}

	if len(results) > params.Limit {
		results = results[:params.Limit]
	}
	return results, nil
}
