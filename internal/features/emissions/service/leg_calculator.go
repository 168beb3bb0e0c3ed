package service

import (
	"context"

	"freight-emissions/internal/core/logger"
	"freight-emissions/internal/core/metrics"
	"freight-emissions/internal/features/emissions/domain"
	"freight-emissions/internal/features/emissions/ports"

	"go.uber.org/zap"
)

// LegCalculator composes distance resolution and emissions estimation for one leg.
type LegCalculator struct {
	resolver  ports.DistanceResolver
	estimator ports.EmissionsEstimator
	rfi       float64
	logger    *zap.Logger
}

// NewLegCalculator creates a LegCalculator. rfi multiplies air results only.
func NewLegCalculator(resolver ports.DistanceResolver, estimator ports.EmissionsEstimator, rfi float64) *LegCalculator {
	return &LegCalculator{
		resolver:  resolver,
		estimator: estimator,
		rfi:       rfi,
		logger:    logger.Named("emissions"),
	}
}

// ComputeLeg never returns an error; failures are carried in the result.
func (c *LegCalculator) ComputeLeg(ctx context.Context, leg domain.Leg, params domain.ModeParameters) domain.LegResult {
	result := domain.LegResult{Leg: leg}

	distanceKm, err := c.resolver.Resolve(ctx, leg.Mode, leg.Origin, leg.Destination, leg.OverrideKm)
	if err != nil {
		return c.fail(result, domain.StageDistance, err)
	}
	result.DistanceKm = distanceKm

	co2, err := c.estimator.Estimate(ctx, ports.EstimateRequest{
		Mode:       leg.Mode,
		WeightKg:   leg.WeightKg,
		VolumeM3:   leg.VolumeM3,
		DistanceKm: distanceKm,
		Parameters: params,
	})
	if err != nil {
		return c.fail(result, domain.StageEstimation, err)
	}

	if leg.Mode == domain.ModeAir {
		co2 *= c.rfi
	}
	result.CO2Kg = co2

	metrics.LegResults.WithLabelValues(string(leg.Mode), metrics.OutcomeSuccess).Inc()
	c.logger.Debug("Leg computed",
		zap.Stringer("mode", leg.Mode),
		zap.Float64("distance_km", distanceKm),
		zap.Float64("co2_kg", co2),
	)
	return result
}

func (c *LegCalculator) fail(result domain.LegResult, stage domain.FailureStage, err error) domain.LegResult {
	result.Stage = stage
	result.Err = err

	metrics.LegResults.WithLabelValues(string(result.Leg.Mode), metrics.OutcomeFailure).Inc()
	c.logger.Warn("Leg computation failed",
		zap.Stringer("mode", result.Leg.Mode),
		zap.String("stage", string(stage)),
		zap.Error(err),
	)
	return result
}
