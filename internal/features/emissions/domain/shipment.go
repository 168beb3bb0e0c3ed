package domain

import (
	"fmt"
	"strings"

	distance "freight-emissions/internal/features/distance/domain"
)

// ShipmentTypeProvisioning marks repositioning rows that supply an origin with containers.
const ShipmentTypeProvisioning = "Provisioning"

// NewShipment holds the declared parameters and legs of the shipment being computed.
type NewShipment struct {
	OriginServiceCenter    string  `json:"origin_service_center" yaml:"origin_service_center"`
	ContainerType          string  `json:"container_type" yaml:"container_type"`
	ContainerCount         int     `json:"container_count" yaml:"container_count"`
	EmptyContainerWeightKg float64 `json:"empty_container_weight_kg" yaml:"empty_container_weight_kg"`
	VolumeM3               float64 `json:"volume_m3" yaml:"volume_m3"`
	AircraftModel          string  `json:"aircraft_model" yaml:"aircraft_model"`
	AircraftType           string  `json:"aircraft_type" yaml:"aircraft_type"`
	// Declared load factors override the defaults when set.
	VolumetricLoadFactor *float64 `json:"volumetric_load_factor,omitempty" yaml:"volumetric_load_factor,omitempty"`
	WeightLoadFactor     *float64 `json:"weight_load_factor,omitempty" yaml:"weight_load_factor,omitempty"`
	Legs                 []Leg    `json:"legs" yaml:"legs"`
}

// Validate checks the declared parameters and every leg.
func (s NewShipment) Validate() error {
	if strings.TrimSpace(s.OriginServiceCenter) == "" {
		return fmt.Errorf("%w: origin service center is required", ErrInvalidShipmentInput)
	}
	if s.ContainerCount < 0 {
		return fmt.Errorf("%w: negative container count", ErrInvalidShipmentInput)
	}
	if s.EmptyContainerWeightKg < 0 || s.VolumeM3 < 0 {
		return fmt.Errorf("%w: negative container weight or volume", ErrInvalidShipmentInput)
	}
	for i, leg := range s.Legs {
		if err := leg.Validate(); err != nil {
			return fmt.Errorf("leg %d: %w", i+1, err)
		}
	}
	return nil
}

// ForNewShipment derives the new shipment's parameter set from the defaults.
// An undeclared belly aircraft falls back to bellyDefault, a declared model is used as is.
func (s NewShipment) ForNewShipment(defaults ModeParameters, bellyDefault string) (ModeParameters, error) {
	params := defaults
	air := defaults.Air

	model := strings.TrimSpace(s.AircraftModel)
	if model == "" {
		model = NotAvailable
	}

	if s.AircraftType != "" {
		category, err := ParseAircraftCategory(s.AircraftType)
		if err != nil {
			return ModeParameters{}, err
		}
		air.Category = category
	}

	switch {
	case model == NotAvailable && air.Category == CategoryBelly:
		air.AircraftModel = bellyDefault
		air.AircraftID = NormalizeAircraftID(bellyDefault)
	case model != NotAvailable:
		air.AircraftModel = model
		air.AircraftID = NormalizeAircraftID(model)
	}

	if s.VolumetricLoadFactor != nil {
		air.VolumetricCargoLoadFactor = *s.VolumetricLoadFactor
	}
	if s.WeightLoadFactor != nil {
		air.CargoLoadFactorWeight = *s.WeightLoadFactor
	}

	params.Air = air
	return NewModeParameters(params.Road, params.Air, params.Maritime)
}

// RepositioningRow is one historical repositioning or provisioning movement.
type RepositioningRow struct {
	ContainerType            string              `json:"container_type" yaml:"container_type"`
	OriginServiceCenter      string              `json:"origin_service_center" yaml:"origin_service_center"`
	DestinationServiceCenter string              `json:"destination_service_center" yaml:"destination_service_center"`
	ShipmentType             string              `json:"shipment_type" yaml:"shipment_type"`
	Containers               int                 `json:"containers" yaml:"containers"`
	Mode                     Mode                `json:"mode" yaml:"mode"`
	Origin                   distance.Coordinate `json:"origin" yaml:"origin"`
	Destination              distance.Coordinate `json:"destination" yaml:"destination"`
	// DistanceKm is used as an override when positive.
	DistanceKm float64 `json:"distance_km,omitempty" yaml:"distance_km,omitempty"`
}

// Validate checks the row's mode, coordinates, container count and distance.
func (r RepositioningRow) Validate() error {
	if _, err := ParseMode(string(r.Mode)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidShipmentInput, err)
	}
	if err := r.Origin.Validate(); err != nil {
		return fmt.Errorf("%w: origin: %v", ErrInvalidShipmentInput, err)
	}
	if err := r.Destination.Validate(); err != nil {
		return fmt.Errorf("%w: destination: %v", ErrInvalidShipmentInput, err)
	}
	if r.Containers < 0 {
		return fmt.Errorf("%w: negative container count", ErrInvalidShipmentInput)
	}
	if r.DistanceKm < 0 {
		return fmt.Errorf("%w: negative distance", ErrInvalidShipmentInput)
	}
	return nil
}

// IsProvisioning reports whether the row supplied its destination with containers.
func (r RepositioningRow) IsProvisioning() bool {
	return r.ShipmentType == ShipmentTypeProvisioning
}

// Leg builds the leg of a pool row given the per-container nominal weight and volume.
func (r RepositioningRow) Leg(weightPerContainerKg, volumePerContainerM3 float64) Leg {
	override := 0.0
	if r.DistanceKm > 0 {
		override = r.DistanceKm
	}
	return Leg{
		Mode:        r.Mode,
		Origin:      r.Origin,
		Destination: r.Destination,
		WeightKg:    float64(r.Containers) * weightPerContainerKg,
		VolumeM3:    float64(r.Containers) * volumePerContainerM3,
		OverrideKm:  override,
	}
}
