package services

import (
	"math"

	"freight-carbon-service/internal/domain"
)

const (
	earthRadiusKm = 6371

	// FallbackDistanceKm is substituted when either endpoint is the
	// unresolved sentinel (0, 0). Computing a great-circle distance
	// through the origin would be geographically meaningless, so the
	// calculator returns this fixed default instead. This is a
	// documented fallback, not an error.
	FallbackDistanceKm = 500.0
)

// DistanceResult carries a computed distance and whether the fallback
// default was used, so callers can distinguish "real distance" from
// "fallback distance".
type DistanceResult struct {
	Km       float64
	Fallback bool
}

// Distance computes the great-circle distance between two coordinates
// using the haversine formula, rounded to two decimals. Either endpoint
// being the unresolved sentinel yields the fallback distance.
func Distance(a, b domain.Coordinate) DistanceResult {
	if a.IsZero() || b.IsZero() {
		return DistanceResult{Km: FallbackDistanceKm, Fallback: true}
	}

	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return DistanceResult{Km: Round2(earthRadiusKm * c)}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// Round2 rounds to two decimals, the precision every engine output is
// reported at.
func Round2(v float64) float64 { return math.Round(v*100) / 100 }
