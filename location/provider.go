package location

import (
	"context"
	"errors"

	"localoop/models"
)

// Permission is the outcome of a foreground permission request.
type Permission int

const (
	PermissionDenied Permission = iota
	PermissionGranted
)

func (p Permission) String() string {
	if p == PermissionGranted {
		return "granted"
	}
	return "denied"
}

// ErrPermissionDenied is returned when the user (or platform) refused
// foreground location access. Callers render a permission-required state
// rather than retrying silently.
var ErrPermissionDenied = errors.New("location permission denied")

// ErrUnavailable is a transient acquisition failure (hardware, driver,
// timeout). Non-fatal: only location-dependent features are blocked.
var ErrUnavailable = errors.New("location unavailable")

// Provider obtains the device's current coordinates. RequestPermission must
// be called before the first CurrentCoordinate. Every CurrentCoordinate call
// returns a fresh reading; nothing is cached here.
type Provider interface {
	RequestPermission(ctx context.Context) (Permission, error)
	CurrentCoordinate(ctx context.Context) (models.Coordinate, error)
}

// Acquire runs the permission-gated acquisition sequence and maps denial to
// ErrPermissionDenied.
func Acquire(ctx context.Context, provider Provider) (models.Coordinate, error) {
	permission, err := provider.RequestPermission(ctx)
	if err != nil {
		return models.Coordinate{}, err
	}
	if permission != PermissionGranted {
		return models.Coordinate{}, ErrPermissionDenied
	}
	return provider.CurrentCoordinate(ctx)
}
