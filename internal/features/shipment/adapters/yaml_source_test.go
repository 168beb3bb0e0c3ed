package adapters

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	emissions "freight-emissions/internal/features/emissions/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLFileSource_Load(t *testing.T) {
	input, err := NewYAMLFileSource(filepath.Join("testdata", "shipment.yaml")).Load(context.Background())
	require.NoError(t, err)

	s := input.Shipment
	assert.Equal(t, "GOT", s.OriginServiceCenter)
	assert.Equal(t, 5, s.ContainerCount)
	assert.Equal(t, emissions.NotAvailable, s.AircraftModel)
	assert.Equal(t, string(emissions.CategoryBelly), s.AircraftType)
	assert.Nil(t, s.VolumetricLoadFactor)
	require.NotNil(t, s.WeightLoadFactor)
	assert.Equal(t, 70.0, *s.WeightLoadFactor)

	require.Len(t, s.Legs, 2)
	assert.Equal(t, emissions.ModeRoad, s.Legs[0].Mode)
	assert.Equal(t, emissions.ModeAir, s.Legs[1].Mode)
	assert.Equal(t, -73.7781, s.Legs[1].Destination.Lon)

	require.Len(t, input.Repositioning, 2)
	assert.True(t, input.Repositioning[1].IsProvisioning())
	assert.Equal(t, emissions.ModeMaritime, input.Repositioning[1].Mode)
	assert.Equal(t, 1012.4, input.Repositioning[1].DistanceKm)

	assert.NoError(t, input.Validate())
}

func TestYAMLFileSource_MissingFile(t *testing.T) {
	_, err := NewYAMLFileSource(filepath.Join(t.TempDir(), "nope.yaml")).Load(context.Background())
	assert.Error(t, err)
}

func TestDecodeInput(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		input, err := DecodeInput(strings.NewReader(`{"shipment":{"origin_service_center":"GOT","container_count":1,
			"legs":[{"mode":"Road","weight_kg":1000,"override_distance_km":100}]}}`))
		require.NoError(t, err)
		assert.Equal(t, 100.0, input.Shipment.Legs[0].OverrideKm)
	})

	t.Run("UnknownField", func(t *testing.T) {
		_, err := DecodeInput(strings.NewReader("shipment:\n  origin: GOT\n"))
		assert.Error(t, err)
	})

	t.Run("UnknownMode", func(t *testing.T) {
		_, err := DecodeInput(strings.NewReader("shipment:\n  legs:\n    - mode: rail\n"))
		assert.Error(t, err)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := DecodeInput(strings.NewReader(""))
		assert.ErrorContains(t, err, "empty input document")
	})

	t.Run("FromFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "in.yaml")
		require.NoError(t, os.WriteFile(path, []byte("shipment:\n  origin_service_center: ARN\n"), 0o644))

		input, err := NewYAMLFileSource(path).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ARN", input.Shipment.OriginServiceCenter)
	})
}
