package services

import (
	"fmt"

	"freight-carbon-service/internal/domain"
	"freight-carbon-service/internal/refdata"
)

// CO2 converts a distance, cargo weight and transport mode into a CO₂
// mass in kg, rounded to two decimals:
//
//	co2Kg = distanceKm × weightTons × factor(mode)
//
// Unknown modes are rejected rather than coerced to a default factor.
func CO2(distanceKm, weightTons float64, mode domain.TransportMode, factors refdata.EmissionFactors) (float64, error) {
	if distanceKm < 0 {
		return 0, fmt.Errorf("%w: distance must be >= 0 km, got %v", ErrInvalidInput, distanceKm)
	}
	if weightTons <= 0 {
		return 0, fmt.Errorf("%w: weight must be > 0 tons, got %v", ErrInvalidInput, weightTons)
	}

	factor, ok := factors.Factor(mode)
	if !ok {
		return 0, fmt.Errorf("%w: unknown transport mode %q", ErrInvalidInput, mode)
	}

	return Round2(distanceKm * weightTons * factor), nil
}
