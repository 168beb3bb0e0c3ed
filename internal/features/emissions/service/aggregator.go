package service

import (
	"context"
	"fmt"

	"freight-emissions/internal/features/emissions/domain"
	"freight-emissions/internal/features/emissions/ports"
)

// Aggregator sums the new shipment's legs by mode.
type Aggregator struct {
	legs ports.LegComputer
}

// NewAggregator creates an Aggregator.
func NewAggregator(legs ports.LegComputer) *Aggregator {
	return &Aggregator{legs: legs}
}

// Aggregate computes every leg in input order. Only road and air legs are
// computed for a new shipment; any other leg is reported as failed.
func (a *Aggregator) Aggregate(ctx context.Context, legs []domain.Leg, params domain.ModeParameters) domain.ShipmentTotals {
	var totals domain.ShipmentTotals

	for _, leg := range legs {
		var result domain.LegResult

		switch leg.Mode {
		case domain.ModeRoad, domain.ModeAir:
			result = a.legs.ComputeLeg(ctx, leg, params)
			result.Leg = leg
		default:
			result = domain.LegResult{
				Leg:   leg,
				Stage: domain.StageUnsupported,
				Err:   fmt.Errorf("%w: %s leg in a new shipment", domain.ErrUnsupportedMode, leg.Mode),
			}
		}

		totals.Legs = append(totals.Legs, result)
		if result.Failed() {
			totals.Failed = append(totals.Failed, result)
			continue
		}

		if leg.Mode == domain.ModeRoad {
			totals.RoadKg += result.CO2Kg
		} else {
			totals.AirKg += result.CO2Kg
		}
	}

	return totals
}
