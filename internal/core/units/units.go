// Package units holds the rounding and unit conversions shared by the calculators.
package units

import "math"

const (
	// MetersPerKm converts meters to kilometers.
	MetersPerKm = 1000.0
	// KgPerTonne converts kilograms to metric tonnes.
	KgPerTonne = 1000.0
)

// Round2 rounds to two decimals, halves to the nearest even digit.
func Round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}

// MetersToKm converts meters to kilometers.
func MetersToKm(m float64) float64 {
	return m / MetersPerKm
}

// KgToTonnes converts kilograms to tonnes.
func KgToTonnes(kg float64) float64 {
	return kg / KgPerTonne
}
