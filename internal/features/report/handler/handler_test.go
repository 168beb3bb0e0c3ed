package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	emissions "freight-emissions/internal/features/emissions/domain"
	"freight-emissions/internal/features/report/domain"
	shipment "freight-emissions/internal/features/shipment/domain"
	shipmentService "freight-emissions/internal/features/shipment/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCalculator is a mock implementation of ports.Calculator.
type MockCalculator struct {
	mock.Mock
}

func (m *MockCalculator) Calculate(ctx context.Context, input *shipment.Input) (*domain.Report, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

// MockReportService is a mock implementation of ports.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Store(ctx context.Context, report *domain.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportService) Get(ctx context.Context, id string) (*domain.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func setupApp(calculator *MockCalculator, reports *MockReportService) *fiber.App {
	app := fiber.New()
	handler := NewReportHandler(calculator, reports)
	app.Post("/emissions", handler.Calculate)
	app.Get("/reports/:id", handler.GetReport)
	return app
}

const inputJSON = `{"shipment":{"origin_service_center":"GOT","container_count":1,"legs":[{"mode":"Road","weight_kg":1000,"override_distance_km":100}]}}`

func TestReportHandler_Calculate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		calculator := new(MockCalculator)
		reports := new(MockReportService)
		app := setupApp(calculator, reports)

		report := &domain.Report{ID: "r-1", RoadTotalKg: 26, Complete: true, FailedLegs: []domain.FailedLeg{}}
		calculator.On("Calculate", mock.Anything, mock.MatchedBy(func(in *shipment.Input) bool {
			return in.Shipment.OriginServiceCenter == "GOT" && in.Shipment.Legs[0].OverrideKm == 100
		})).Return(report, nil).Once()
		reports.On("Store", mock.Anything, report).Return(nil).Once()

		req := httptest.NewRequest("POST", "/emissions", strings.NewReader(inputJSON))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got domain.Report
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "r-1", got.ID)
		assert.Equal(t, 26.0, got.RoadTotalKg)
		calculator.AssertExpectations(t)
		reports.AssertExpectations(t)
	})

	t.Run("YAMLBody", func(t *testing.T) {
		calculator := new(MockCalculator)
		reports := new(MockReportService)
		app := setupApp(calculator, reports)

		calculator.On("Calculate", mock.Anything, mock.Anything).Return(&domain.Report{ID: "r-2"}, nil).Once()
		reports.On("Store", mock.Anything, mock.Anything).Return(domain.ErrStorageDisabled).Once()

		req := httptest.NewRequest("POST", "/emissions", strings.NewReader("shipment:\n  origin_service_center: GOT\n"))
		req.Header.Set("Content-Type", "application/yaml")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		calculator := new(MockCalculator)
		app := setupApp(calculator, new(MockReportService))

		req := httptest.NewRequest("POST", "/emissions", strings.NewReader(`{"shipment":{"legs":[{"mode":"rail"}]}}`))
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		calculator.AssertNotCalled(t, "Calculate", mock.Anything, mock.Anything)
	})

	t.Run("InvalidShipment", func(t *testing.T) {
		calculator := new(MockCalculator)
		app := setupApp(calculator, new(MockReportService))

		calculator.On("Calculate", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: zero denominator", emissions.ErrInvalidShipmentInput)).Once()

		resp, err := app.Test(httptest.NewRequest("POST", "/emissions", strings.NewReader(inputJSON)))

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("InternalError", func(t *testing.T) {
		calculator := new(MockCalculator)
		app := setupApp(calculator, new(MockReportService))

		calculator.On("Calculate", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

		resp, err := app.Test(httptest.NewRequest("POST", "/emissions", strings.NewReader(inputJSON)))

		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("StoreFailureStillReturnsReport", func(t *testing.T) {
		calculator := new(MockCalculator)
		reports := new(MockReportService)
		app := setupApp(calculator, reports)

		calculator.On("Calculate", mock.Anything, mock.Anything).Return(&domain.Report{ID: "r-3"}, nil).Once()
		reports.On("Store", mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

		resp, err := app.Test(httptest.NewRequest("POST", "/emissions", strings.NewReader(inputJSON)))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

// MockLegComputer is a mock implementation of emissions ports.LegComputer.
type MockLegComputer struct {
	mock.Mock
}

func (m *MockLegComputer) ComputeLeg(ctx context.Context, leg emissions.Leg, params emissions.ModeParameters) emissions.LegResult {
	args := m.Called(ctx, leg, params)
	return args.Get(0).(emissions.LegResult)
}

func TestReportHandler_Calculate_InvalidDocument(t *testing.T) {
	air, err := emissions.DefaultAir("B747-400F", 75, 65, 167, 90)
	require.NoError(t, err)
	defaults, err := emissions.NewModeParameters(
		emissions.RoadParameters{VehicleType: "rigid_truck_7_5_t", Fuel: "diesel_b7_eu", RoadType: "average_road", EuroClass: "euro_6", CargoCarrierCapacityTonnes: 6},
		air,
		emissions.MaritimeParameters{TypeOfWaters: "ocean", ShipSizeDWT: 40000, CargoLoadFactorWeight: 70},
	)
	require.NoError(t, err)

	tests := []struct {
		name string
		body string
	}{
		{
			"LegWithoutMode",
			`{"shipment":{"origin_service_center":"GOT","container_type":"AKE","container_count":1,
				"legs":[{"weight_kg":1000,"override_distance_km":100}]}}`,
		},
		{
			"RowOutsideCoordinateRange",
			`{"shipment":{"origin_service_center":"GOT","container_type":"AKE","container_count":1},
				"repositioning":[{"container_type":"AKE","origin_service_center":"FRA","destination_service_center":"GOT",
					"shipment_type":"Provisioning","containers":2,"mode":"Air",
					"origin":{"lat":200,"lon":8.57},"destination":{"lat":57.66,"lon":12.28}}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			legs := new(MockLegComputer)
			reports := new(MockReportService)
			calculator := shipmentService.NewCalculator(legs, defaults, "B777-300ER-Belly")

			app := fiber.New()
			app.Post("/emissions", NewReportHandler(calculator, reports).Calculate)

			req := httptest.NewRequest("POST", "/emissions", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)

			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			legs.AssertNotCalled(t, "ComputeLeg", mock.Anything, mock.Anything, mock.Anything)
			reports.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
		})
	}
}

func TestReportHandler_GetReport(t *testing.T) {
	tests := []struct {
		name   string
		report *domain.Report
		err    error
		status int
	}{
		{"Found", &domain.Report{ID: "r-1"}, nil, http.StatusOK},
		{"NotFound", nil, fmt.Errorf("service: %w", domain.ErrReportNotFound), http.StatusNotFound},
		{"StorageDisabled", nil, domain.ErrStorageDisabled, http.StatusServiceUnavailable},
		{"Error", nil, errors.New("redis down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reports := new(MockReportService)
			app := setupApp(new(MockCalculator), reports)

			if tt.report != nil {
				reports.On("Get", mock.Anything, "r-1").Return(tt.report, nil).Once()
			} else {
				reports.On("Get", mock.Anything, "r-1").Return(nil, tt.err).Once()
			}

			resp, err := app.Test(httptest.NewRequest("GET", "/reports/r-1", nil))

			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			reports.AssertExpectations(t)
		})
	}
}
