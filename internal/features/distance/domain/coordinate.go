package domain

import (
	"errors"
	"fmt"
)

// ErrDistanceUnavailable is returned when a distance lookup fails or returns malformed data.
var ErrDistanceUnavailable = errors.New("distance unavailable")

// ErrInvalidCoordinate is returned for coordinates outside the valid range.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate is a point in latitude/longitude order, the convention used everywhere
// except at the sea-route boundary.
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// LonLat is a point in longitude/latitude order, as the sea-route provider expects.
type LonLat struct {
	Lon float64
	Lat float64
}

// ToLonLat flips the coordinate into longitude/latitude order.
func (c Coordinate) ToLonLat() LonLat {
	return LonLat{Lon: c.Lon, Lat: c.Lat}
}

// Validate checks the coordinate ranges.
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidCoordinate, c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidCoordinate, c.Lon)
	}
	return nil
}

// String returns "lat,lon".
func (c Coordinate) String() string {
	return fmt.Sprintf("%g,%g", c.Lat, c.Lon)
}

// String returns "lon,lat".
func (p LonLat) String() string {
	return fmt.Sprintf("%g,%g", p.Lon, p.Lat)
}
