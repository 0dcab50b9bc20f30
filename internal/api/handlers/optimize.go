package handlers

import (
	"errors"
	"net/http"

	"freight-carbon-service/internal/api/dto"
	"freight-carbon-service/internal/domain"
	"freight-carbon-service/internal/ports"
	"freight-carbon-service/internal/refdata"
	"freight-carbon-service/internal/services"
)

// OptimizeHandler exposes the multi-modal route optimization endpoint.
type OptimizeHandler struct {
	Resolver   ports.GeoResolver
	Factors    refdata.EmissionFactors
	Candidates refdata.CandidateTable
	Pricing    refdata.CarbonPricing
}

// Optimize computes the baseline CO₂ for the declared mode, searches the
// candidate mode splits for a lower-CO₂ alternative, and optionally
// monetizes the saving under the requested currency.
func (h *OptimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OptimizeRouteRequest

	defer r.Body.Close()
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	source, dest, ok := parseEndpoints(req.Source, req.Destination)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "source and destination country/city are required")
		return
	}

	mode, ok := domain.ParseTransportMode(req.TransportMode)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "unknown transport_mode")
		return
	}

	if req.WeightTons <= 0 {
		writeError(w, r, http.StatusBadRequest, "weight_tons must be > 0")
		return
	}

	srcCoord, _ := h.Resolver.Resolve(source)
	dstCoord, _ := h.Resolver.Resolve(dest)
	dist := services.Distance(srcCoord, dstCoord)

	baseline, err := services.CO2(dist.Km, req.WeightTons, mode, h.Factors)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid input")
		return
	}

	best, err := services.Optimize(services.OptimizeRequest{
		Origin:     source,
		Dest:       dest,
		DistanceKm: dist.Km,
		WeightTons: req.WeightTons,
	}, h.Candidates, h.Factors)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			writeError(w, r, http.StatusBadRequest, "invalid input")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	result := domain.OptimizationResult{
		BestStrategy:  best,
		BaselineCo2Kg: baseline,
		SavingsKg:     services.Round2(baseline - best.TotalCo2Kg),
	}

	res := dto.OptimizeRouteResponse{
		DistanceKm:       dist.Km,
		DistanceFallback: dist.Fallback,
		BaselineCo2Kg:    result.BaselineCo2Kg,
		BestStrategy:     strategyResponse(result.BestStrategy),
		SavingsKg:        result.SavingsKg,
	}

	if req.Currency != "" {
		amount, err := services.MonetizeSavings(result.SavingsKg, req.Currency, h.Pricing)
		if err != nil {
			if errors.Is(err, services.ErrUnsupportedCurrency) {
				writeError(w, r, http.StatusBadRequest, "unsupported currency")
				return
			}
			writeError(w, r, http.StatusBadRequest, "invalid input")
			return
		}
		res.CostSavings = &dto.CostSavingsResponse{Currency: req.Currency, Amount: amount}
	}

	writeJSON(w, r, http.StatusOK, res)
}

func strategyResponse(s domain.RouteStrategy) dto.RouteStrategyResponse {
	segments := make([]dto.RouteSegmentResponse, 0, len(s.Segments))
	for _, seg := range s.Segments {
		segments = append(segments, dto.RouteSegmentResponse{
			Mode:       string(seg.Mode),
			DistanceKm: services.Round2(seg.DistanceKm),
			Co2Kg:      services.Round2(seg.Co2Kg),
		})
	}
	return dto.RouteStrategyResponse{Segments: segments, TotalCo2Kg: s.TotalCo2Kg}
}
