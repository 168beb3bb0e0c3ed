package service

import (
	"context"
	"testing"

	distance "freight-emissions/internal/features/distance/domain"
	"freight-emissions/internal/features/emissions/domain"
	"freight-emissions/internal/features/emissions/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockResolver is a mock implementation of ports.DistanceResolver.
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, mode domain.Mode, origin, destination distance.Coordinate, overrideKm float64) (float64, error) {
	args := m.Called(ctx, mode, origin, destination, overrideKm)
	return args.Get(0).(float64), args.Error(1)
}

// MockEstimator is a mock implementation of ports.EmissionsEstimator.
type MockEstimator struct {
	mock.Mock
}

func (m *MockEstimator) Estimate(ctx context.Context, req ports.EstimateRequest) (float64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(float64), args.Error(1)
}

// MockLegComputer is a mock implementation of ports.LegComputer.
type MockLegComputer struct {
	mock.Mock
}

func (m *MockLegComputer) ComputeLeg(ctx context.Context, leg domain.Leg, params domain.ModeParameters) domain.LegResult {
	args := m.Called(ctx, leg, params)
	return args.Get(0).(domain.LegResult)
}

func testParameters(t *testing.T) domain.ModeParameters {
	t.Helper()
	air, err := domain.DefaultAir("B747-400F", 75, 65, 167, 90)
	require.NoError(t, err)
	params, err := domain.NewModeParameters(
		domain.RoadParameters{VehicleType: "rigid_truck_7_5_t", Fuel: "diesel_b7_eu", RoadType: "average_road", EuroClass: "euro_6", CargoCarrierCapacityTonnes: 6},
		air,
		domain.MaritimeParameters{TypeOfWaters: "ocean", ShipSizeDWT: 40000, CargoLoadFactorWeight: 70},
	)
	require.NoError(t, err)
	return params
}
