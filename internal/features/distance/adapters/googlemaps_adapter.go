package adapters

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"freight-emissions/internal/core/config"
	"freight-emissions/internal/features/distance/domain"

	"googlemaps.github.io/maps"
)

// GoogleMapsAdapter implements the DrivingDistanceProvider interface using the Distance Matrix API.
type GoogleMapsAdapter struct {
	client *maps.Client
}

// NewGoogleMapsAdapter creates a new instance of GoogleMapsAdapter.
// Requests go through httpClient so they share its logging and proxy settings.
func NewGoogleMapsAdapter(httpClient *http.Client, cfg config.MapsConfig) (*GoogleMapsAdapter, error) {
	opts := []maps.ClientOption{
		maps.WithAPIKey(cfg.APIKey),
		maps.WithHTTPClient(httpClient),
	}
	if cfg.URL != "" {
		opts = append(opts, maps.WithBaseURL(strings.TrimSuffix(cfg.URL, "/")))
	}

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleMapsAdapter{client: client}, nil
}

// DrivingDistanceMeters queries the driving distance departing now with the best-guess traffic model.
func (a *GoogleMapsAdapter) DrivingDistanceMeters(ctx context.Context, origin, destination domain.Coordinate) (float64, error) {
	matrix, err := a.client.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
		Origins:       []string{origin.String()},
		Destinations:  []string{destination.String()},
		Mode:          maps.TravelModeDriving,
		DepartureTime: "now",
		TrafficModel:  maps.TrafficModelBestGuess,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: distance matrix request failed: %v", domain.ErrDistanceUnavailable, err)
	}

	return extractDistance(matrix)
}

// extractDistance reads the single origin/destination element of the matrix.
func extractDistance(matrix *maps.DistanceMatrixResponse) (float64, error) {
	if matrix == nil || len(matrix.Rows) == 0 || len(matrix.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("%w: distance matrix without elements", domain.ErrDistanceUnavailable)
	}

	element := matrix.Rows[0].Elements[0]
	if element == nil {
		return 0, fmt.Errorf("%w: distance matrix without elements", domain.ErrDistanceUnavailable)
	}
	if element.Status != "OK" {
		return 0, fmt.Errorf("%w: no driving route (%s)", domain.ErrDistanceUnavailable, element.Status)
	}
	if element.Distance.Meters < 0 {
		return 0, fmt.Errorf("%w: negative distance %d", domain.ErrDistanceUnavailable, element.Distance.Meters)
	}

	return float64(element.Distance.Meters), nil
}
