package service

import (
	"context"
	"fmt"

	"freight-emissions/internal/core/logger"
	"freight-emissions/internal/features/emissions/domain"
	"freight-emissions/internal/features/emissions/ports"

	"go.uber.org/zap"
)

// Attributor apportions provisioning emissions onto the new shipment.
type Attributor struct {
	legs   ports.LegComputer
	params domain.ModeParameters
	logger *zap.Logger
}

// NewAttributor creates an Attributor computing pool legs with the repositioning parameter set.
func NewAttributor(legs ports.LegComputer, repositioning domain.ModeParameters) *Attributor {
	return &Attributor{
		legs:   legs,
		params: repositioning,
		logger: logger.Named("attribution"),
	}
}

// Attribute returns the new shipment's share of the emissions of the provisioning
// movements into its origin. The share is pool / (outbound containers + own containers) × own containers.
// A failed pool leg adds nothing to the pool but its containers still count in the denominator.
func (a *Attributor) Attribute(ctx context.Context, rows []domain.RepositioningRow, shipment domain.NewShipment) (domain.Attribution, error) {
	if shipment.ContainerCount < 0 {
		return domain.Attribution{}, fmt.Errorf("%w: negative container count", domain.ErrInvalidShipmentInput)
	}

	var outbound int
	var pool []domain.RepositioningRow
	for _, row := range rows {
		if row.ContainerType != shipment.ContainerType {
			continue
		}
		if row.OriginServiceCenter == shipment.OriginServiceCenter {
			outbound += row.Containers
		}
		if row.DestinationServiceCenter == shipment.OriginServiceCenter && row.IsProvisioning() {
			pool = append(pool, row)
		}
	}

	attribution := domain.Attribution{Denominator: outbound + shipment.ContainerCount}
	if attribution.Denominator <= 0 {
		return domain.Attribution{}, fmt.Errorf("%w: no outbound containers at %s and none in the shipment",
			domain.ErrInvalidShipmentInput, shipment.OriginServiceCenter)
	}
	if len(pool) == 0 {
		return attribution, nil
	}
	if shipment.ContainerCount == 0 {
		return domain.Attribution{}, fmt.Errorf("%w: container count is required to size provisioning legs",
			domain.ErrInvalidShipmentInput)
	}

	count := float64(shipment.ContainerCount)
	weightPerContainer := shipment.EmptyContainerWeightKg / count
	volumePerContainer := shipment.VolumeM3 / count

	for _, row := range pool {
		leg := row.Leg(weightPerContainer, volumePerContainer)
		result := a.legs.ComputeLeg(ctx, leg, a.params)
		result.Leg = leg
		attribution.PoolLegs = append(attribution.PoolLegs, result)
		if result.Failed() {
			attribution.Failed = append(attribution.Failed, result)
			continue
		}
		attribution.PoolTotalKg += result.CO2Kg
	}

	attribution.SharedKg = attribution.PoolTotalKg / float64(attribution.Denominator) * count

	a.logger.Info("Repositioning emissions attributed",
		zap.String("origin", shipment.OriginServiceCenter),
		zap.Int("pool_legs", len(pool)),
		zap.Int("failed_legs", len(attribution.Failed)),
		zap.Int("denominator", attribution.Denominator),
		zap.Float64("pool_total_kg", attribution.PoolTotalKg),
		zap.Float64("shared_kg", attribution.SharedKg),
	)
	return attribution, nil
}
