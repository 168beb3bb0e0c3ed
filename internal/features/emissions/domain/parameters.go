package domain

import (
	"errors"
	"fmt"
)

// RoadParameters configures the tonne-kilometre road model.
type RoadParameters struct {
	VehicleType string
	Fuel        string
	RoadType    string
	EuroClass   string
	// CargoCarrierCapacityTonnes is the carrier payload capacity.
	CargoCarrierCapacityTonnes float64
}

// Validate checks the road parameters.
func (p RoadParameters) Validate() error {
	if p.VehicleType == "" || p.Fuel == "" || p.RoadType == "" || p.EuroClass == "" {
		return fmt.Errorf("%w: road vehicle, fuel, road type and euro class are required", ErrInvalidParameters)
	}
	if p.CargoCarrierCapacityTonnes <= 0 {
		return fmt.Errorf("%w: road carrier capacity must be positive", ErrInvalidParameters)
	}
	return nil
}

// AirParameters configures the volumetric-weight air model.
type AirParameters struct {
	AircraftModel string
	// AircraftID is the normalized identifier sent to the emissions service.
	AircraftID                 string
	Category                   AircraftCategory
	VolumetricCargoLoadFactor  float64
	CargoLoadFactorWeight      float64
	CommercialVolumetricFactor float64
	// PassengerLoadFactor is only sent for belly cargo.
	PassengerLoadFactor float64
}

// IsBelly reports whether cargo travels in a passenger aircraft.
func (p AirParameters) IsBelly() bool {
	return p.Category == CategoryBelly
}

// Validate checks the air parameters.
func (p AirParameters) Validate() error {
	if p.AircraftID == "" {
		return fmt.Errorf("%w: aircraft identifier is required", ErrInvalidParameters)
	}
	if _, err := ParseAircraftCategory(string(p.Category)); err != nil {
		return err
	}
	if err := percentage("volumetric cargo load factor", p.VolumetricCargoLoadFactor); err != nil {
		return err
	}
	if err := percentage("air cargo load factor", p.CargoLoadFactorWeight); err != nil {
		return err
	}
	if p.CommercialVolumetricFactor <= 0 {
		return fmt.Errorf("%w: commercial volumetric factor must be positive", ErrInvalidParameters)
	}
	if p.IsBelly() && p.PassengerLoadFactor != 65 && p.PassengerLoadFactor != 90 {
		return fmt.Errorf("%w: passenger load factor must be 65 or 90, got %v", ErrInvalidParameters, p.PassengerLoadFactor)
	}
	return nil
}

// MaritimeParameters configures the container ship weight model.
type MaritimeParameters struct {
	TypeOfWaters string
	// ShipSizeDWT is the ship size class in deadweight tonnes.
	ShipSizeDWT           float64
	CargoLoadFactorWeight float64
}

// Validate checks the maritime parameters.
func (p MaritimeParameters) Validate() error {
	if p.TypeOfWaters == "" {
		return fmt.Errorf("%w: type of waters is required", ErrInvalidParameters)
	}
	if p.ShipSizeDWT <= 0 {
		return fmt.Errorf("%w: ship size must be positive", ErrInvalidParameters)
	}
	return percentage("maritime cargo load factor", p.CargoLoadFactorWeight)
}

// ModeParameters is a validated parameter set for all modes. A run holds two
// independent instances, one for the new shipment and one for repositioning.
type ModeParameters struct {
	Road     RoadParameters
	Air      AirParameters
	Maritime MaritimeParameters
}

// NewModeParameters validates every mode and returns the bundle.
func NewModeParameters(road RoadParameters, air AirParameters, maritime MaritimeParameters) (ModeParameters, error) {
	if err := errors.Join(road.Validate(), air.Validate(), maritime.Validate()); err != nil {
		return ModeParameters{}, err
	}
	return ModeParameters{Road: road, Air: air, Maritime: maritime}, nil
}

// DefaultAir builds air parameters from a catalog model.
func DefaultAir(model string, volumetricLoad, weightLoad, commercialFactor, passengerLoad float64) (AirParameters, error) {
	category, err := CategoryOf(model)
	if err != nil {
		return AirParameters{}, err
	}
	return AirParameters{
		AircraftModel:              model,
		AircraftID:                 NormalizeAircraftID(model),
		Category:                   category,
		VolumetricCargoLoadFactor:  volumetricLoad,
		CargoLoadFactorWeight:      weightLoad,
		CommercialVolumetricFactor: commercialFactor,
		PassengerLoadFactor:        passengerLoad,
	}, nil
}

func percentage(name string, v float64) error {
	if v <= 0 || v > 100 {
		return fmt.Errorf("%w: %s must be within (0, 100], got %v", ErrInvalidParameters, name, v)
	}
	return nil
}
