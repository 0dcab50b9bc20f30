package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"freight-carbon-service/internal/api/dto"
	"freight-carbon-service/internal/domain"
	"freight-carbon-service/internal/ports"
	"freight-carbon-service/internal/refdata"
	"freight-carbon-service/internal/services"
)

// EmissionHandler exposes the emission calculation and record listing
// endpoints.
type EmissionHandler struct {
	Repo     ports.EmissionRepository
	Resolver ports.GeoResolver
	Factors  refdata.EmissionFactors
}

func (h *EmissionHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.calculate(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// calculate resolves the endpoints, derives distance and CO₂, persists
// the record and returns it. Unresolved locations use the documented
// fallback distance; the response flags that so clients can tell real
// distances from fallbacks.
func (h *EmissionHandler) calculate(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculateEmissionRequest

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

	co2, err := services.CO2(dist.Km, req.WeightTons, mode, h.Factors)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid input")
		return
	}

	rec := &domain.Emission{
		ID:            uuid.NewString(),
		Source:        source.Label(),
		Destination:   dest.Label(),
		TransportMode: mode,
		DistanceKm:    dist.Km,
		Co2Kg:         co2,
		WeightTons:    req.WeightTons,
		CreatedAt:     time.Now().UTC(),
	}

	if err := h.Repo.Save(r.Context(), rec); err != nil {
		log.Printf("save emission failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.CalculateEmissionResponse{
		ID:               rec.ID,
		Source:           rec.Source,
		Destination:      rec.Destination,
		TransportMode:    string(rec.TransportMode),
		DistanceKm:       rec.DistanceKm,
		DistanceFallback: dist.Fallback,
		Co2Kg:            rec.Co2Kg,
		WeightTons:       rec.WeightTons,
		CreatedAt:        rec.CreatedAt,
	}

	writeJSON(w, r, http.StatusCreated, res)
}

func (h *EmissionHandler) list(w http.ResponseWriter, r *http.Request) {
	records, err := h.Repo.List(r.Context())
	if err != nil {
		log.Printf("list emissions failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListEmissionsResponse{
		Emissions: make([]dto.EmissionRecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		res.Emissions = append(res.Emissions, dto.EmissionRecordResponse{
			ID:            rec.ID,
			Source:        rec.Source,
			Destination:   rec.Destination,
			TransportMode: string(rec.TransportMode),
			DistanceKm:    rec.DistanceKm,
			Co2Kg:         rec.Co2Kg,
			WeightTons:    rec.WeightTons,
			CreatedAt:     rec.CreatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func parseEndpoints(src, dst dto.LocationRequest) (domain.Location, domain.Location, bool) {
	source := domain.Location{
		Country: strings.TrimSpace(src.Country),
		City:    strings.TrimSpace(src.City),
	}
	dest := domain.Location{
		Country: strings.TrimSpace(dst.Country),
		City:    strings.TrimSpace(dst.City),
	}
	if source.Country == "" || source.City == "" || dest.Country == "" || dest.City == "" {
		return domain.Location{}, domain.Location{}, false
	}
	return source, dest, true
}
