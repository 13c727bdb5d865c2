package datastructure

import (
	"fmt"
	"math"
)

const (
	earthRadiusMiles = 3959.0
	feetPerMile      = 5280.0
)

func degreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

// Distance returns the great-circle distance between two coordinates in miles,
// using the haversine formula. Callers guarantee valid coordinates; the function does
// no range checking, so NaN input yields NaN output.
func Distance(latOne, lngOne, latTwo, lngTwo float64) float64 {
	dLat := degreeToRadians(latTwo - latOne)
	dLng := degreeToRadians(lngTwo - lngOne)

	a := math.Sin(dLat/2.0)*math.Sin(dLat/2.0) +
		math.Cos(degreeToRadians(latOne))*math.Cos(degreeToRadians(latTwo))*
			math.Sin(dLng/2.0)*math.Sin(dLng/2.0)

	return earthRadiusMiles * 2.0 * math.Atan2(math.Sqrt(a), math.Sqrt(1.0-a))
}

// FormatDistance renders a distance in miles the way the dropdown shows it:
// feet below one mile, otherwise miles with one decimal.
func FormatDistance(miles float64) string {
	if miles < 1.0 {
		return fmt.Sprintf("%.0fft", miles*feetPerMile)
	}
	return fmt.Sprintf("%.1fmi", miles)
}
