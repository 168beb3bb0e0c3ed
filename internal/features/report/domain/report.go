package domain

import (
	"errors"
	"time"

	"freight-emissions/internal/core/units"
	emissions "freight-emissions/internal/features/emissions/domain"
)

var (
	// ErrReportNotFound is returned when no stored report has the requested ID.
	ErrReportNotFound = errors.New("report not found")
	// ErrStorageDisabled is returned when reports are requested but no storage is configured.
	ErrStorageDisabled = errors.New("report storage disabled")
)

// Failed leg scopes.
const (
	ScopeShipment      = "shipment"
	ScopeRepositioning = "repositioning"
)

// FailedLeg describes a leg that contributed nothing to its total because it could not be computed.
type FailedLeg struct {
	Scope string `json:"scope" yaml:"scope"`
	// Index is the 1-based position of the leg in its input list or pool.
	Index      int     `json:"index" yaml:"index"`
	Mode       string  `json:"mode" yaml:"mode"`
	Stage      string  `json:"stage" yaml:"stage"`
	DistanceKm float64 `json:"distance_km,omitempty" yaml:"distance_km,omitempty"`
	Error      string  `json:"error" yaml:"error"`
}

// Repositioning details how the repositioning share was derived.
type Repositioning struct {
	PoolTotalKg float64 `json:"pool_total_kg" yaml:"pool_total_kg"`
	Denominator int     `json:"denominator" yaml:"denominator"`
	PoolLegs    int     `json:"pool_legs" yaml:"pool_legs"`
}

// Report is the result of one calculation run.
type Report struct {
	ID                   string        `json:"id" yaml:"id"`
	GeneratedAt          time.Time     `json:"generated_at" yaml:"generated_at"`
	OriginServiceCenter  string        `json:"origin_service_center" yaml:"origin_service_center"`
	ContainerType        string        `json:"container_type" yaml:"container_type"`
	ContainerCount       int           `json:"container_count" yaml:"container_count"`
	RoadTotalKg          float64       `json:"road_total_kg" yaml:"road_total_kg"`
	AirTotalKg           float64       `json:"air_total_kg" yaml:"air_total_kg"`
	RepositioningTotalKg float64       `json:"repositioning_total_kg" yaml:"repositioning_total_kg"`
	Repositioning        Repositioning `json:"repositioning" yaml:"repositioning"`
	FailedLegs           []FailedLeg   `json:"failed_legs" yaml:"failed_legs"`
	// Complete is false when any leg failed, so a total may be under-reported.
	Complete bool `json:"complete" yaml:"complete"`
}

// New builds a report with totals rounded to two decimals.
func New(id string, generatedAt time.Time, shipment emissions.NewShipment, totals emissions.ShipmentTotals, attribution emissions.Attribution) *Report {
	r := &Report{
		ID:                   id,
		GeneratedAt:          generatedAt.UTC(),
		OriginServiceCenter:  shipment.OriginServiceCenter,
		ContainerType:        shipment.ContainerType,
		ContainerCount:       shipment.ContainerCount,
		RoadTotalKg:          units.Round2(totals.RoadKg),
		AirTotalKg:           units.Round2(totals.AirKg),
		RepositioningTotalKg: units.Round2(attribution.SharedKg),
		Repositioning: Repositioning{
			PoolTotalKg: units.Round2(attribution.PoolTotalKg),
			Denominator: attribution.Denominator,
			PoolLegs:    len(attribution.PoolLegs),
		},
		FailedLegs: []FailedLeg{},
	}

	r.FailedLegs = append(r.FailedLegs, failedLegs(ScopeShipment, totals.Legs)...)
	r.FailedLegs = append(r.FailedLegs, failedLegs(ScopeRepositioning, attribution.PoolLegs)...)
	r.Complete = len(r.FailedLegs) == 0

	return r
}

func failedLegs(scope string, results []emissions.LegResult) []FailedLeg {
	var failed []FailedLeg
	for i, result := range results {
		if !result.Failed() {
			continue
		}
		leg := FailedLeg{
			Scope:      scope,
			Index:      i + 1,
			Mode:       string(result.Leg.Mode),
			Stage:      string(result.Stage),
			DistanceKm: result.DistanceKm,
		}
		if result.Err != nil {
			leg.Error = result.Err.Error()
		}
		failed = append(failed, leg)
	}
	return failed
}
