package services

import (
	"fmt"

	"freight-carbon-service/internal/domain"
	"freight-carbon-service/internal/refdata"
)

// OptimizeRequest describes the shipment to find a lower-CO₂ routing for.
// Origin and Dest are only used to classify the route scope; the distance
// is supplied by the caller (real or fallback).
type OptimizeRequest struct {
	Origin     domain.Location
	Dest       domain.Location
	DistanceKm float64
	WeightTons float64
}

// Optimize enumerates the candidate mode splits for the shipment's scope
// and distance band and returns the strategy with the strictly lowest
// total CO₂. On an exact tie the first-enumerated candidate wins, keeping
// results deterministic. The baseline is the caller's concern; Optimize
// only returns the best alternative.
func Optimize(req OptimizeRequest, table refdata.CandidateTable, factors refdata.EmissionFactors) (domain.RouteStrategy, error) {
	if req.DistanceKm < 0 {
		return domain.RouteStrategy{}, fmt.Errorf("%w: distance must be >= 0 km, got %v", ErrInvalidInput, req.DistanceKm)
	}
	if req.WeightTons <= 0 {
		return domain.RouteStrategy{}, fmt.Errorf("%w: weight must be > 0 tons, got %v", ErrInvalidInput, req.WeightTons)
	}

	scope := classifyScope(req.Origin, req.Dest)
	band := classifyBand(scope, req.DistanceKm)

	candidates := table.Candidates(scope, band)
	if len(candidates) == 0 {
		return domain.RouteStrategy{}, fmt.Errorf("optimize route: no candidates for scope=%s band=%s", scope, band)
	}

	var best domain.RouteStrategy
	bestTotal := 0.0
	found := false

	for _, cand := range candidates {
		segments := make([]domain.RouteSegment, 0, len(cand.Segments))
		total := 0.0
		for _, cs := range cand.Segments {
			factor, ok := factors.Factor(cs.Mode)
			if !ok {
				return domain.RouteStrategy{}, fmt.Errorf("optimize route: no emission factor for mode %q", cs.Mode)
			}
			dist := req.DistanceKm * cs.Share
			co2 := dist * req.WeightTons * factor
			segments = append(segments, domain.RouteSegment{
				Mode:       cs.Mode,
				DistanceKm: dist,
				Co2Kg:      co2,
			})
			total += co2
		}

		// Strict comparison: equal totals keep the earlier candidate.
		if !found || total < bestTotal {
			found = true
			bestTotal = total
			best = domain.RouteStrategy{Segments: segments, TotalCo2Kg: Round2(total)}
		}
	}

	return best, nil
}

func classifyScope(origin, dest domain.Location) refdata.RouteScope {
	if origin.Country != dest.Country {
		return refdata.ScopeIntercontinental
	}
	return refdata.ScopeDomestic
}

// Domestic routes only distinguish short (<1000 km) from everything else.
func classifyBand(scope refdata.RouteScope, distanceKm float64) refdata.DistanceBand {
	if scope == refdata.ScopeDomestic {
		if distanceKm < 1000 {
			return refdata.BandShort
		}
		return refdata.BandLong
	}
	switch {
	case distanceKm < 1000:
		return refdata.BandShort
	case distanceKm < 5000:
		return refdata.BandMedium
	default:
		return refdata.BandLong
	}
}
