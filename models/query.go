package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// QueryParams carries one nearby-search invocation. It is recomputed fresh
// for every user-triggered search, never partially updated.
type QueryParams struct {
	Center       Coordinate
	RadiusMeters int        `validate:"required,gt=0"`
	Category     Category   `validate:"gte=0"`
	Limit        int        `validate:"required,gt=0"`
	// SearchText narrows results client-side only; it never reaches the
	// provider query.
	SearchText string
}

// Validate checks the params before a request is issued.
func (q QueryParams) Validate() error {
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("invalid query params: %w", err)
	}
	if q.Center.Latitude < -90 || q.Center.Latitude > 90 {
		return fmt.Errorf("invalid query params: latitude %f out of range", q.Center.Latitude)
	}
	if q.Center.Longitude < -180 || q.Center.Longitude > 180 {
		return fmt.Errorf("invalid query params: longitude %f out of range", q.Center.Longitude)
	}
	return nil
}
