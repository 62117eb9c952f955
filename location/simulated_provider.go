package location

import (
	"context"
	"log"

	"localoop/models"
)

// SimulatedProvider serves a fixed coordinate. Used by the dev container
// and by tests that need to drive the permission and failure states.
type SimulatedProvider struct {
	Coordinate  models.Coordinate
	Deny        bool
	Unavailable bool
}

// NewSimulatedProvider creates a provider pinned to the given coordinate.
func NewSimulatedProvider(coordinate models.Coordinate) *SimulatedProvider {
	return &SimulatedProvider{Coordinate: coordinate}
}

func (p *SimulatedProvider) RequestPermission(ctx context.Context) (Permission, error) {
	if p.Deny {
		log.Println("[SimulatedProvider] permission denied")
		return PermissionDenied, nil
	}
	return PermissionGranted, nil
}

func (p *SimulatedProvider) CurrentCoordinate(ctx context.Context) (models.Coordinate, error) {
	if p.Unavailable {
		return models.Coordinate{}, ErrUnavailable
	}
	return p.Coordinate, nil
}
