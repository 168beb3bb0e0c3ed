package ports

import (
	"context"

	distance "freight-emissions/internal/features/distance/domain"
	"freight-emissions/internal/features/emissions/domain"
)

// TokenSource supplies a valid bearer token right before each request.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// DistanceResolver returns the distance in km of one movement.
type DistanceResolver interface {
	Resolve(ctx context.Context, mode domain.Mode, origin, destination distance.Coordinate, overrideKm float64) (float64, error)
}

// EstimateRequest is one emissions estimation.
type EstimateRequest struct {
	Mode       domain.Mode
	WeightKg   float64
	VolumeM3   float64
	DistanceKm float64
	Parameters domain.ModeParameters
}

// EmissionsEstimator returns the raw CO2 figure in kg computed by the emissions service.
type EmissionsEstimator interface {
	Estimate(ctx context.Context, req EstimateRequest) (float64, error)
}

// LegComputer computes the emissions of a single leg.
type LegComputer interface {
	ComputeLeg(ctx context.Context, leg domain.Leg, params domain.ModeParameters) domain.LegResult
}
