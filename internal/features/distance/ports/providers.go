package ports

import (
	"context"

	"freight-emissions/internal/features/distance/domain"
)

// DrivingDistanceProvider looks up point-to-point driving distances.
type DrivingDistanceProvider interface {
	// DrivingDistanceMeters returns the driving distance for a departure now with typical traffic.
	DrivingDistanceMeters(ctx context.Context, origin, destination domain.Coordinate) (float64, error)
}

// SeaRouteProvider computes shortest navigable sea routes.
type SeaRouteProvider interface {
	// SeaRouteKm returns the sea-route length in kilometers. Points are in longitude/latitude order.
	SeaRouteKm(ctx context.Context, origin, destination domain.LonLat) (float64, error)
}
