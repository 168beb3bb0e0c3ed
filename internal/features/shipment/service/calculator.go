package service

import (
	"context"
	"fmt"
	"time"

	"freight-emissions/internal/core/logger"
	emissions "freight-emissions/internal/features/emissions/domain"
	emissionsPorts "freight-emissions/internal/features/emissions/ports"
	emissionsService "freight-emissions/internal/features/emissions/service"
	report "freight-emissions/internal/features/report/domain"
	"freight-emissions/internal/features/shipment/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Calculator runs the whole calculation for one new shipment.
type Calculator struct {
	legs         emissionsPorts.LegComputer
	defaults     emissions.ModeParameters
	bellyDefault string
	now          func() time.Time
	newID        func() string
	logger       *zap.Logger
}

// NewCalculator creates a Calculator. defaults seeds both parameter sets of a run and
// bellyDefault replaces an undeclared belly aircraft.
func NewCalculator(legs emissionsPorts.LegComputer, defaults emissions.ModeParameters, bellyDefault string) *Calculator {
	return &Calculator{
		legs:         legs,
		defaults:     defaults,
		bellyDefault: bellyDefault,
		now:          time.Now,
		newID:        uuid.NewString,
		logger:       logger.Named("calculator"),
	}
}

// Calculate validates the input, computes the shipment legs and the repositioning share and
// returns the report. Only invalid input aborts the run; failed legs are listed in the report.
func (c *Calculator) Calculate(ctx context.Context, input *domain.Input) (*report.Report, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	shipmentParams, err := input.Shipment.ForNewShipment(c.defaults, c.bellyDefault)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", emissions.ErrInvalidShipmentInput, err)
	}
	repositioningParams := c.defaults

	totals := emissionsService.NewAggregator(c.legs).Aggregate(ctx, input.Shipment.Legs, shipmentParams)

	attribution, err := emissionsService.NewAttributor(c.legs, repositioningParams).
		Attribute(ctx, input.Repositioning, input.Shipment)
	if err != nil {
		return nil, err
	}

	r := report.New(c.newID(), c.now(), input.Shipment, totals, attribution)

	fields := []zap.Field{
		zap.String("report_id", r.ID),
		zap.Float64("road_total_kg", r.RoadTotalKg),
		zap.Float64("air_total_kg", r.AirTotalKg),
		zap.Float64("repositioning_total_kg", r.RepositioningTotalKg),
		zap.Int("failed_legs", len(r.FailedLegs)),
	}
	if r.Complete {
		c.logger.Info("Calculation finished", fields...)
	} else {
		c.logger.Warn("Calculation finished with failed legs", fields...)
	}

	return r, nil
}
