package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"freight-carbon-service/internal/api/dto"
	"freight-carbon-service/internal/domain"
	"freight-carbon-service/internal/ports"
	"freight-carbon-service/internal/refdata"
	"freight-carbon-service/internal/services"
)

// SupplierHandler exposes the supplier directory lookup.
type SupplierHandler struct {
	Repo      ports.SupplierRepository
	Locations refdata.Locations
	Factors   refdata.EmissionFactors
}

// List returns suppliers matching the query filters plus summary KPIs.
// When the caller supplies its current shipping lane (source_country,
// dest_country, weight_tons) the response includes a local-sourcing
// suggestion: sourcing from the destination country would avoid the
// Truck-baseline shipping emissions for that lane entirely.
func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	filter := ports.SupplierFilter{
		Country:  strings.TrimSpace(q.Get("country")),
		City:     strings.TrimSpace(q.Get("city")),
		Material: strings.TrimSpace(q.Get("material")),
	}

	suppliers, err := h.Repo.List(r.Context(), filter)
	if err != nil {
		log.Printf("list suppliers failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListSuppliersResponse{
		Suppliers: make([]dto.SupplierResponse, 0, len(suppliers)),
	}

	greenTotal := 0
	capacityTotal := 0
	for _, sup := range suppliers {
		greenTotal += sup.GreenScore
		capacityTotal += sup.AnnualCapacityTons
		res.Suppliers = append(res.Suppliers, dto.SupplierResponse{
			ID:                 sup.ID,
			SupplierName:       sup.SupplierName,
			Country:            sup.Country,
			City:               sup.City,
			Material:           sup.Material,
			GreenScore:         sup.GreenScore,
			AnnualCapacityTons: sup.AnnualCapacityTons,
		})
	}

	res.Summary = dto.SupplierSummaryResponse{
		TotalSuppliers:    len(suppliers),
		TotalCapacityTons: capacityTotal,
	}
	if len(suppliers) > 0 {
		res.Summary.AverageGreenScore = services.Round2(float64(greenTotal) / float64(len(suppliers)))
	}

	sourceCountry := strings.TrimSpace(q.Get("source_country"))
	destCountry := strings.TrimSpace(q.Get("dest_country"))
	if sourceCountry != "" && destCountry != "" {
		weight := 1.0
		if raw := q.Get("weight_tons"); raw != "" {
			weight, err = strconv.ParseFloat(raw, 64)
			if err != nil || weight <= 0 {
				writeError(w, r, http.StatusBadRequest, "weight_tons must be a number > 0")
				return
			}
		}

		sourcing, err := h.sourcingSuggestion(sourceCountry, destCountry, weight, suppliers)
		if err != nil {
			log.Printf("sourcing suggestion failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		res.Sourcing = sourcing
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *SupplierHandler) sourcingSuggestion(sourceCountry, destCountry string, weightTons float64, suppliers []*domain.Supplier) (*dto.SourcingSuggestionResponse, error) {
	// Representative lane: first city of each country. Unknown countries
	// fall through to the unresolved sentinel and the fallback distance.
	srcCity, _ := h.Locations.FirstCity(sourceCountry)
	dstCity, _ := h.Locations.FirstCity(destCountry)

	srcCoord, _ := h.Locations.Coordinate(domain.Location{Country: sourceCountry, City: srcCity})
	dstCoord, _ := h.Locations.Coordinate(domain.Location{Country: destCountry, City: dstCity})
	dist := services.Distance(srcCoord, dstCoord)

	baseline, err := services.CO2(dist.Km, weightTons, domain.ModeTruck, h.Factors)
	if err != nil {
		return nil, err
	}

	local := 0
	for _, sup := range suppliers {
		if sup.Country == destCountry {
			local++
		}
	}

	sourcing := &dto.SourcingSuggestionResponse{
		DestCountry:    destCountry,
		LocalSuppliers: local,
	}
	// Local sourcing eliminates the shipping leg, so the whole baseline
	// is avoidable when local suppliers exist.
	if local > 0 {
		sourcing.PotentialSavingsKg = baseline
	}
	return sourcing, nil
}
