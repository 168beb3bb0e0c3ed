package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinate_ToLonLat(t *testing.T) {
	rotterdam := Coordinate{Lat: 51.9225, Lon: 4.47917}

	p := rotterdam.ToLonLat()

	assert.Equal(t, 4.47917, p.Lon)
	assert.Equal(t, 51.9225, p.Lat)
	assert.Equal(t, "51.9225,4.47917", rotterdam.String())
	assert.Equal(t, "4.47917,51.9225", p.String())
}

func TestCoordinate_Validate(t *testing.T) {
	assert.NoError(t, Coordinate{Lat: 0, Lon: 0}.Validate())
	assert.NoError(t, Coordinate{Lat: -90, Lon: 180}.Validate())
	assert.ErrorIs(t, Coordinate{Lat: 91, Lon: 0}.Validate(), ErrInvalidCoordinate)
	assert.ErrorIs(t, Coordinate{Lat: 0, Lon: -180.5}.Validate(), ErrInvalidCoordinate)
}
