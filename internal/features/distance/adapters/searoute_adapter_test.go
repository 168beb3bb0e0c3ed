package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"freight-emissions/internal/core/config"
	"freight-emissions/internal/features/distance/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeaRouteAdapter(t *testing.T, handler http.HandlerFunc) *SeaRouteAdapter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewSeaRouteAdapter(server.Client(), config.SeaRouteConfig{URL: server.URL + "/"})
}

// TestSeaRouteAdapter_Success verifies longitude-first query parameters and the length extraction.
func TestSeaRouteAdapter_Success(t *testing.T) {
	adapter := newSeaRouteAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/route", r.URL.Path)
		assert.Equal(t, "11.97,57.7", r.URL.Query().Get("origin"))
		assert.Equal(t, "4.4,51.22", r.URL.Query().Get("destination"))
		assert.Equal(t, "km", r.URL.Query().Get("units"))

		w.Write([]byte(`{
			"type": "Feature",
			"geometry": {"type": "LineString", "coordinates": [[11.97, 57.7], [4.4, 51.22]]},
			"properties": {"length": 1012.4, "units": "km"}
		}`))
	})

	km, err := adapter.SeaRouteKm(context.Background(),
		domain.LonLat{Lon: 11.97, Lat: 57.7}, domain.LonLat{Lon: 4.4, Lat: 51.22})

	require.NoError(t, err)
	assert.Equal(t, 1012.4, km)
}

// TestSeaRouteAdapter_Failures verifies that malformed routes wrap ErrDistanceUnavailable.
func TestSeaRouteAdapter_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"HTTPError", http.StatusBadGateway, ``},
		{"MissingLength", http.StatusOK, `{"type":"Feature","properties":{}}`},
		{"NegativeLength", http.StatusOK, `{"type":"Feature","properties":{"length":-1}}`},
		{"WrongUnits", http.StatusOK, `{"type":"Feature","properties":{"length":12,"units":"naut"}}`},
		{"NotAFeature", http.StatusOK, `{"type":"FeatureCollection","properties":{"length":12}}`},
		{"Malformed", http.StatusOK, `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := newSeaRouteAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := adapter.SeaRouteKm(context.Background(), domain.LonLat{}, domain.LonLat{})
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrDistanceUnavailable)
		})
	}
}
