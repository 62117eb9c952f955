package places

import (
	"context"
	"fmt"

	"localoop/models"
)

// PlacesAPI defines the interface for interacting with the places provider.
type PlacesAPI interface {
	// NearbySearch issues exactly one request for the given params and
	// returns at most params.Limit places in the provider's ordering.
	NearbySearch(ctx context.Context, params models.QueryParams) ([]models.Place, error)
	SetCredentials(apiKey string)
}

// StatusError reports a non-OK status from the provider ("ZERO_RESULTS",
// "REQUEST_DENIED", ...). It is surfaced to the user, never retried.
type StatusError struct {
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("places query failed with provider status %q", e.Status)
}
