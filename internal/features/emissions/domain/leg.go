package domain

import (
	"fmt"

	distance "freight-emissions/internal/features/distance/domain"
)

// Leg is one point-to-point transport movement.
type Leg struct {
	Mode        Mode                `json:"mode" yaml:"mode"`
	Origin      distance.Coordinate `json:"origin" yaml:"origin"`
	Destination distance.Coordinate `json:"destination" yaml:"destination"`
	WeightKg    float64             `json:"weight_kg" yaml:"weight_kg"`
	VolumeM3    float64             `json:"volume_m3" yaml:"volume_m3"`
	// OverrideKm is a known distance. Zero means it has to be looked up.
	OverrideKm float64 `json:"override_distance_km,omitempty" yaml:"override_distance_km,omitempty"`
}

// Validate checks the leg fields.
func (l Leg) Validate() error {
	if _, err := ParseMode(string(l.Mode)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidShipmentInput, err)
	}
	if err := l.Origin.Validate(); err != nil {
		return fmt.Errorf("%w: origin: %v", ErrInvalidShipmentInput, err)
	}
	if err := l.Destination.Validate(); err != nil {
		return fmt.Errorf("%w: destination: %v", ErrInvalidShipmentInput, err)
	}
	if l.WeightKg < 0 || l.VolumeM3 < 0 {
		return fmt.Errorf("%w: negative weight or volume", ErrInvalidShipmentInput)
	}
	if l.OverrideKm < 0 {
		return fmt.Errorf("%w: negative distance override", ErrInvalidShipmentInput)
	}
	return nil
}

// FailureStage tells where a leg computation stopped. StageUnsupported marks a leg
// whose mode is not computed in its context.
type FailureStage string

const (
	StageNone        FailureStage = ""
	StageDistance    FailureStage = "distance"
	StageEstimation  FailureStage = "estimation"
	StageUnsupported FailureStage = "unsupported"
)

// LegResult is the outcome of one leg. A failed result has a non-empty Stage and
// an Err; its CO2Kg is zero and must not be read as a genuine zero.
type LegResult struct {
	Leg        Leg
	DistanceKm float64
	CO2Kg      float64
	Stage      FailureStage
	Err        error
}

// Failed reports whether the computation failed.
func (r LegResult) Failed() bool {
	return r.Stage != StageNone
}

// ShipmentTotals holds the new shipment's emissions by mode.
type ShipmentTotals struct {
	RoadKg float64
	AirKg  float64
	Legs   []LegResult
	Failed []LegResult
}

// Attribution is the share of repositioning emissions carried by the new shipment.
type Attribution struct {
	PoolTotalKg float64
	Denominator int
	SharedKg    float64
	PoolLegs    []LegResult
	Failed      []LegResult
}
