package domain

import (
	"fmt"
	"strings"
)

// AircraftCategory separates dedicated freighters from belly cargo on passenger aircraft.
type AircraftCategory string

const (
	CategoryFreighter AircraftCategory = "Freight aircraft"
	CategoryBelly     AircraftCategory = "Belly freight - cargo"
)

// NotAvailable marks an undeclared aircraft model.
const NotAvailable = "Not available"

var freighterModels = []string{
	"Saab 340B", "ATR 42-300 Freighter", "AN-26 Freighter", "F-27-500", "BAe-146-200F",
	"L-188 Electra Freighter", "B737-300SF", "A320 Freighter", "AN-12", "TU-204-100C",
	"B727-200F", "B757-200SF", "A310-300 Freighter", "B757-200F", "B757-200PF", "A300-B4 Freighter",
	"B767-200ERF", "IL-76MD", "A300-600F", "DC-8-63F", "DC-8-73F", "B767-300 Freighter", "B767-300F",
	"DC-10-30F", "MD-11 Freighter", "MD-11F", "B777-200F", "B747-200F", "B747-400F", "B747-800F",
}

var bellyModels = []string{
	"B737-700-Belly", "A320 Belly", "B737-800-Belly", "B787-8-Belly", "A330-300x-Belly",
	"B767-200-Belly", "B767-300-Belly", "A330-300-Belly", "A340-300-Belly", "A330-200-Belly",
	"B777-200-Belly", "A340-600-Belly", "B777-300-Belly", "B747-400 Combi", "B747-400-Belly",
	"B777-300ER-Belly", "A380-800-Belly",
}

// ParseAircraftCategory parses a declared aircraft type.
func ParseAircraftCategory(s string) (AircraftCategory, error) {
	switch AircraftCategory(strings.TrimSpace(s)) {
	case CategoryFreighter:
		return CategoryFreighter, nil
	case CategoryBelly:
		return CategoryBelly, nil
	}
	return "", fmt.Errorf("%w: unknown aircraft type %q", ErrInvalidParameters, s)
}

// CategoryOf looks a model up in the catalog.
func CategoryOf(model string) (AircraftCategory, error) {
	for _, m := range freighterModels {
		if m == model {
			return CategoryFreighter, nil
		}
	}
	for _, m := range bellyModels {
		if m == model {
			return CategoryBelly, nil
		}
	}
	return "", fmt.Errorf("%w: unknown aircraft model %q", ErrInvalidParameters, model)
}

// NormalizeAircraftID converts a model name into the emissions service identifier,
// e.g. "B777-300ER-Belly" becomes "b777_300er_belly".
func NormalizeAircraftID(model string) string {
	return strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(strings.TrimSpace(model)))
}
