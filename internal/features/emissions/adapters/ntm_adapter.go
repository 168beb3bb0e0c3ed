package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"freight-emissions/internal/core/config"
	"freight-emissions/internal/core/units"
	"freight-emissions/internal/features/emissions/domain"
	"freight-emissions/internal/features/emissions/ports"
)

const (
	transportActivitiesPath = "/v1/transportactivities"
	co2TotalIndex           = "co2_total"
	calculationVersion      = "1"

	objectFreightAircraft = "freight_aircraft"
	objectBellyCargo      = "belly_freighter_cargo"
	objectContainerShip   = "container_ship"
)

// NTMAdapter implements the EmissionsEstimator interface against the NTMCalc transport activities API.
type NTMAdapter struct {
	client  *http.Client
	baseURL string
	tokens  ports.TokenSource
}

// NewNTMAdapter creates a new instance of NTMAdapter.
func NewNTMAdapter(client *http.Client, cfg config.NTMConfig, tokens ports.TokenSource) *NTMAdapter {
	return &NTMAdapter{
		client:  client,
		baseURL: strings.TrimSuffix(cfg.APIURL, "/"),
		tokens:  tokens,
	}
}

// calculationObject identifies the emission model of a request.
type calculationObject struct {
	ID      string `json:"id"`
	Version string `json:"version"`
}

// parameter is one named request parameter. Values are sent as strings.
type parameter struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

// activityRequest is the body of a transport activity calculation.
type activityRequest struct {
	CalculationObject calculationObject `json:"calculationObject"`
	Parameters        []parameter       `json:"parameters"`
}

// activityResponse holds the part of the result table that carries the totals.
type activityResponse struct {
	ResultTable struct {
		Index  map[string]int `json:"index"`
		Totals []struct {
			Value *float64 `json:"value"`
		} `json:"totals"`
	} `json:"resultTable"`
}

// Estimate sends one calculation and returns the total CO2 in kg rounded to two decimals.
func (a *NTMAdapter) Estimate(ctx context.Context, req ports.EstimateRequest) (float64, error) {
	body, err := buildRequest(req)
	if err != nil {
		return 0, err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to encode request: %v", domain.ErrEstimationFailure, err)
	}

	token, err := a.tokens.Token(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrEstimationFailure, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+transportActivitiesPath, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create request: %v", domain.ErrEstimationFailure, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to execute request: %v", domain.ErrEstimationFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("%w: emissions service returned status %d", domain.ErrEstimationFailure, resp.StatusCode)
	}

	var result activityResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("%w: failed to decode response: %v", domain.ErrEstimationFailure, err)
	}

	return co2Total(result)
}

// co2Total follows the embedded index to the total CO2 row.
func co2Total(result activityResponse) (float64, error) {
	idx, ok := result.ResultTable.Index[co2TotalIndex]
	if !ok {
		return 0, fmt.Errorf("%w: response without %s index", domain.ErrEstimationFailure, co2TotalIndex)
	}
	totals := result.ResultTable.Totals
	if idx < 0 || idx >= len(totals) || totals[idx].Value == nil {
		return 0, fmt.Errorf("%w: %s index %d outside result table", domain.ErrEstimationFailure, co2TotalIndex, idx)
	}
	return units.Round2(*totals[idx].Value), nil
}

// buildRequest picks the request shape of the leg's mode.
func buildRequest(req ports.EstimateRequest) (activityRequest, error) {
	switch req.Mode {
	case domain.ModeRoad:
		return roadRequest(req), nil
	case domain.ModeAir:
		return airRequest(req), nil
	case domain.ModeMaritime:
		return maritimeRequest(req), nil
	}
	return activityRequest{}, fmt.Errorf("%w: %w %q", domain.ErrEstimationFailure, domain.ErrUnsupportedMode, req.Mode)
}

// roadRequest uses transport effort in tonne-kilometres.
func roadRequest(req ports.EstimateRequest) activityRequest {
	p := req.Parameters.Road
	tkm := units.Round2(req.DistanceKm * units.KgToTonnes(req.WeightKg))

	return activityRequest{
		CalculationObject: calculationObject{ID: p.VehicleType, Version: calculationVersion},
		Parameters: []parameter{
			{ID: "calculation_model", Value: "shipment_transport_tonne_kilometres"},
			{ID: "fuel", Value: p.Fuel},
			{ID: "road_type", Value: p.RoadType},
			{ID: "euro_class", Value: p.EuroClass},
			{ID: "transport_effort", Value: formatFloat(tkm), Unit: "tkm"},
			{ID: "cargo_carrier_capacity_weight", Value: formatFloat(p.CargoCarrierCapacityTonnes), Unit: "tonne"},
		},
	}
}

// airRequest uses volumetric weight; belly cargo additionally needs the passenger load factor.
func airRequest(req ports.EstimateRequest) activityRequest {
	p := req.Parameters.Air

	object := objectFreightAircraft
	params := []parameter{
		{ID: "calculation_model", Value: "shipment_transport_volumetric_weight"},
		{ID: "aircraft_type", Value: p.AircraftID},
		{ID: "shipment_volume", Value: formatFloat(units.Round2(req.VolumeM3)), Unit: "m3"},
		{ID: "shipment_weight", Value: formatFloat(units.Round2(req.WeightKg)), Unit: "kg"},
		{ID: "distance", Value: formatFloat(units.Round2(req.DistanceKm)), Unit: "km"},
		{ID: "volumetric_cargo_load_factor", Value: formatFloat(p.VolumetricCargoLoadFactor), Unit: "%weight"},
		{ID: "cargo_load_factor_weight", Value: formatFloat(p.CargoLoadFactorWeight), Unit: "%weight"},
		{ID: "commercial_volumetric_factor", Value: formatFloat(p.CommercialVolumetricFactor), Unit: "kg/m3"},
	}

	if p.IsBelly() {
		object = objectBellyCargo
		params = append(params, parameter{ID: "passenger_load_factor", Value: formatFloat(p.PassengerLoadFactor)})
	}

	return activityRequest{
		CalculationObject: calculationObject{ID: object, Version: calculationVersion},
		Parameters:        params,
	}
}

// maritimeRequest uses shipment weight in tonnes.
func maritimeRequest(req ports.EstimateRequest) activityRequest {
	p := req.Parameters.Maritime

	return activityRequest{
		CalculationObject: calculationObject{ID: objectContainerShip, Version: calculationVersion},
		Parameters: []parameter{
			{ID: "calculation_model", Value: "shipment_transport_weight"},
			{ID: "type_of_waters", Value: p.TypeOfWaters},
			{ID: "ship_size", Value: formatFloat(p.ShipSizeDWT), Unit: "dwt"},
			{ID: "shipment_weight", Value: formatFloat(units.KgToTonnes(req.WeightKg)), Unit: "tonne"},
			{ID: "distance", Value: formatFloat(req.DistanceKm), Unit: "km"},
			{ID: "cargo_load_factor_weight", Value: formatFloat(p.CargoLoadFactorWeight), Unit: "%weight"},
		},
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
