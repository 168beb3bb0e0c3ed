package service

import (
	"context"
	"errors"
	"fmt"

	"freight-emissions/internal/core/logger"
	"freight-emissions/internal/core/units"
	"freight-emissions/internal/features/distance/domain"
	"freight-emissions/internal/features/distance/ports"
	emissions "freight-emissions/internal/features/emissions/domain"

	"github.com/golang/geo/s2"
	"go.uber.org/zap"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0088

// MinRoadKm replaces a zero driving distance.
const MinRoadKm = 0.01

// Resolver picks the distance method per transport mode.
type Resolver struct {
	driving  ports.DrivingDistanceProvider
	sea      ports.SeaRouteProvider
	detourKm float64
	logger   *zap.Logger
}

// NewResolver creates a Resolver. detourKm is added to every air distance.
func NewResolver(driving ports.DrivingDistanceProvider, sea ports.SeaRouteProvider, detourKm float64) *Resolver {
	return &Resolver{
		driving:  driving,
		sea:      sea,
		detourKm: detourKm,
		logger:   logger.Named("distance"),
	}
}

// Resolve returns the distance in km. A positive override is returned unchanged without any lookup.
func (r *Resolver) Resolve(ctx context.Context, mode emissions.Mode, origin, destination domain.Coordinate, overrideKm float64) (float64, error) {
	if overrideKm > 0 {
		return overrideKm, nil
	}

	switch mode {
	case emissions.ModeRoad:
		return r.road(ctx, origin, destination)
	case emissions.ModeAir:
		return units.Round2(GreatCircleKm(origin, destination) + r.detourKm), nil
	case emissions.ModeMaritime:
		return r.maritime(ctx, origin, destination)
	default:
		return 0, fmt.Errorf("%w: %w", domain.ErrDistanceUnavailable, emissions.ErrUnsupportedMode)
	}
}

func (r *Resolver) road(ctx context.Context, origin, destination domain.Coordinate) (float64, error) {
	meters, err := r.driving.DrivingDistanceMeters(ctx, origin, destination)
	if err != nil {
		r.logger.Warn("Driving distance lookup failed",
			zap.Stringer("origin", origin), zap.Stringer("destination", destination), zap.Error(err))
		return 0, wrapUnavailable(err)
	}

	km := units.Round2(units.MetersToKm(meters))
	if km == 0 {
		return MinRoadKm, nil
	}
	return km, nil
}

func (r *Resolver) maritime(ctx context.Context, origin, destination domain.Coordinate) (float64, error) {
	km, err := r.sea.SeaRouteKm(ctx, origin.ToLonLat(), destination.ToLonLat())
	if err != nil {
		r.logger.Warn("Sea route lookup failed",
			zap.Stringer("origin", origin), zap.Stringer("destination", destination), zap.Error(err))
		return 0, wrapUnavailable(err)
	}
	return km, nil
}

// GreatCircleKm returns the great-circle distance between two points.
func GreatCircleKm(origin, destination domain.Coordinate) float64 {
	a := s2.LatLngFromDegrees(origin.Lat, origin.Lon)
	b := s2.LatLngFromDegrees(destination.Lat, destination.Lon)
	return a.Distance(b).Radians() * EarthRadiusKm
}

func wrapUnavailable(err error) error {
	if errors.Is(err, domain.ErrDistanceUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrDistanceUnavailable, err)
}
