package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEstimationFailure is returned when the emissions service fails or answers with unusable data.
	ErrEstimationFailure = errors.New("estimation failure")
	// ErrInvalidShipmentInput is returned when shipment data violates a precondition of the calculation.
	ErrInvalidShipmentInput = errors.New("invalid shipment input")
	// ErrInvalidParameters is returned when a mode parameter set fails validation.
	ErrInvalidParameters = errors.New("invalid mode parameters")
	// ErrUnsupportedMode is returned for a transport mode that cannot be computed in its context.
	ErrUnsupportedMode = errors.New("unsupported transport mode")
)

// Mode is the transport mode of a leg.
type Mode string

const (
	ModeRoad     Mode = "Road"
	ModeAir      Mode = "Air"
	ModeMaritime Mode = "Maritime"
)

// ParseMode parses a transport mode case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "road":
		return ModeRoad, nil
	case "air":
		return ModeAir, nil
	case "maritime", "sea":
		return ModeMaritime, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
}

// UnmarshalText implements encoding.TextUnmarshaler so modes decode from JSON and YAML.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Mode) String() string {
	return string(m)
}
