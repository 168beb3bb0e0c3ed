package service

import (
	"fmt"

	"freight-emissions/internal/core/config"
	"freight-emissions/internal/features/emissions/domain"
)

// DefaultParameters builds the validated default parameter set from configuration.
// Every call returns an independent copy.
func DefaultParameters(cfg config.DefaultsConfig) (domain.ModeParameters, error) {
	air, err := domain.DefaultAir(
		cfg.AircraftModel,
		cfg.VolumetricCargoLoadFactor,
		cfg.AirCargoLoadFactorWeight,
		cfg.CommercialVolumetricFactor,
		cfg.PassengerLoadFactor,
	)
	if err != nil {
		return domain.ModeParameters{}, fmt.Errorf("default aircraft: %w", err)
	}

	return domain.NewModeParameters(
		domain.RoadParameters{
			VehicleType:                cfg.VehicleType,
			Fuel:                       cfg.Fuel,
			RoadType:                   cfg.RoadType,
			EuroClass:                  cfg.EuroClass,
			CargoCarrierCapacityTonnes: cfg.CargoCarrierCapacityWeight,
		},
		air,
		domain.MaritimeParameters{
			TypeOfWaters:          cfg.TypeOfWaters,
			ShipSizeDWT:           cfg.ShipSize,
			CargoLoadFactorWeight: cfg.MaritimeCargoLoadFactorWeight,
		},
	)
}
