package domain

import (
	"errors"
	"testing"
	"time"

	emissions "freight-emissions/internal/features/emissions/domain"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	shipment := emissions.NewShipment{OriginServiceCenter: "GOT", ContainerType: "AKE", ContainerCount: 5}

	t.Run("Complete", func(t *testing.T) {
		totals := emissions.ShipmentTotals{
			RoadKg: 26.004,
			AirKg:  200.126,
			Legs:   []emissions.LegResult{{CO2Kg: 26.004}, {CO2Kg: 200.126}},
		}
		attribution := emissions.Attribution{PoolTotalKg: 350, Denominator: 35, SharedKg: 50.0000001, PoolLegs: make([]emissions.LegResult, 2)}

		r := New("id-1", now, shipment, totals, attribution)

		assert.Equal(t, "id-1", r.ID)
		assert.Equal(t, time.UTC, r.GeneratedAt.Location())
		assert.Equal(t, 26.0, r.RoadTotalKg)
		assert.Equal(t, 200.13, r.AirTotalKg)
		assert.Equal(t, 50.0, r.RepositioningTotalKg)
		assert.Equal(t, Repositioning{PoolTotalKg: 350, Denominator: 35, PoolLegs: 2}, r.Repositioning)
		assert.Empty(t, r.FailedLegs)
		assert.NotNil(t, r.FailedLegs)
		assert.True(t, r.Complete)
	})

	t.Run("FailedLegsFlagged", func(t *testing.T) {
		totals := emissions.ShipmentTotals{
			Legs: []emissions.LegResult{
				{Leg: emissions.Leg{Mode: emissions.ModeRoad}, CO2Kg: 10},
				{Leg: emissions.Leg{Mode: emissions.ModeAir}, DistanceKm: 900, Stage: emissions.StageEstimation, Err: errors.New("status 500")},
			},
		}
		attribution := emissions.Attribution{
			PoolLegs: []emissions.LegResult{{Leg: emissions.Leg{Mode: emissions.ModeMaritime}, Stage: emissions.StageDistance, Err: errors.New("no route")}},
		}

		r := New("id-2", now, shipment, totals, attribution)

		assert.False(t, r.Complete)
		assert.Equal(t, []FailedLeg{
			{Scope: ScopeShipment, Index: 2, Mode: "Air", Stage: "estimation", DistanceKm: 900, Error: "status 500"},
			{Scope: ScopeRepositioning, Index: 1, Mode: "Maritime", Stage: "distance", Error: "no route"},
		}, r.FailedLegs)
	})
}
