package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"

	"freight-emissions/internal/core/config"
	"freight-emissions/internal/features/distance/domain"
)

// SeaRouteAdapter implements the SeaRouteProvider interface against a sea-route service
// that answers with a GeoJSON LineString feature.
type SeaRouteAdapter struct {
	client  *http.Client
	baseURL string
}

// NewSeaRouteAdapter creates a new instance of SeaRouteAdapter.
func NewSeaRouteAdapter(client *http.Client, cfg config.SeaRouteConfig) *SeaRouteAdapter {
	return &SeaRouteAdapter{
		client:  client,
		baseURL: strings.TrimSuffix(cfg.URL, "/"),
	}
}

// seaRouteFeature is the GeoJSON feature returned by the service.
type seaRouteFeature struct {
	Type       string `json:"type"`
	Properties struct {
		Length *float64 `json:"length"`
		Units  string   `json:"units"`
	} `json:"properties"`
}

// SeaRouteKm returns the length of the shortest navigable route in kilometers.
func (a *SeaRouteAdapter) SeaRouteKm(ctx context.Context, origin, destination domain.LonLat) (float64, error) {
	query := url.Values{}
	query.Set("origin", origin.String())
	query.Set("destination", destination.String())
	query.Set("units", "km")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/route?"+query.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create request: %v", domain.ErrDistanceUnavailable, err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to execute request: %v", domain.ErrDistanceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: sea-route service returned status %d", domain.ErrDistanceUnavailable, resp.StatusCode)
	}

	var feature seaRouteFeature
	if err := json.NewDecoder(resp.Body).Decode(&feature); err != nil {
		return 0, fmt.Errorf("%w: failed to decode response: %v", domain.ErrDistanceUnavailable, err)
	}

	length := feature.Properties.Length
	if feature.Type != "Feature" || length == nil || *length < 0 || math.IsNaN(*length) {
		return 0, fmt.Errorf("%w: malformed sea-route feature", domain.ErrDistanceUnavailable)
	}
	if units := feature.Properties.Units; units != "" && units != "km" {
		return 0, fmt.Errorf("%w: unexpected sea-route units %q", domain.ErrDistanceUnavailable, units)
	}

	return *length, nil
}
