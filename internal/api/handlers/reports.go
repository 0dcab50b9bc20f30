package handlers

import (
	"encoding/csv"
	"errors"
	"log"
	"net/http"
	"strconv"

	"freight-carbon-service/internal/api/dto"
	"freight-carbon-service/internal/domain"
	"freight-carbon-service/internal/ports"
	"freight-carbon-service/internal/refdata"
	"freight-carbon-service/internal/services"
)

// ReportHandler aggregates stored emission records into summary reports
// and a CSV export.
type ReportHandler struct {
	Repo       ports.EmissionRepository
	Factors    refdata.EmissionFactors
	Candidates refdata.CandidateTable
	Pricing    refdata.CarbonPricing
}

// Summary reports totals, a per-mode breakdown, and the optimization
// potential of every stored route, monetized under the requested
// currency (default EUR).
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	currency := r.URL.Query().Get("currency")
	if currency == "" {
		currency = "EUR"
	}
	if _, ok := h.Pricing.Rate(currency); !ok {
		writeError(w, r, http.StatusBadRequest, "unsupported currency")
		return
	}

	records, err := h.Repo.List(r.Context())
	if err != nil {
		log.Printf("list emissions failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ReportResponse{
		TotalShipments: len(records),
		ModeBreakdown:  []dto.ModeBreakdownResponse{},
		Routes:         make([]dto.RouteReportResponse, 0, len(records)),
		Currency:       currency,
	}

	totalCo2 := 0.0
	totalSavings := 0.0
	byMode := map[domain.TransportMode]float64{}

	for _, rec := range records {
		totalCo2 += rec.Co2Kg
		byMode[rec.TransportMode] += rec.Co2Kg

		source, okSrc := domain.ParseLocationLabel(rec.Source)
		dest, okDst := domain.ParseLocationLabel(rec.Destination)
		if !okSrc || !okDst {
			// Rows written by this service always carry parseable labels;
			// anything else cannot be classified and is skipped here.
			continue
		}

		best, err := services.Optimize(services.OptimizeRequest{
			Origin:     source,
			Dest:       dest,
			DistanceKm: rec.DistanceKm,
			WeightTons: rec.WeightTons,
		}, h.Candidates, h.Factors)
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) {
				continue
			}
			log.Printf("optimize stored route %s failed: %v", rec.ID, err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}

		savings := services.Round2(rec.Co2Kg - best.TotalCo2Kg)
		totalSavings += savings

		res.Routes = append(res.Routes, dto.RouteReportResponse{
			Route:        rec.Source + " to " + rec.Destination,
			OldMode:      string(rec.TransportMode),
			OldCo2Kg:     rec.Co2Kg,
			BestStrategy: strategyResponse(best),
			SavingsKg:    savings,
		})
	}

	res.TotalCo2Kg = services.Round2(totalCo2)
	if len(records) > 0 {
		res.AverageCo2Kg = services.Round2(totalCo2 / float64(len(records)))
	}
	res.TotalSavingsKg = services.Round2(totalSavings)

	// Fixed mode order keeps the breakdown stable across requests.
	for _, mode := range domain.TransportModes() {
		if co2, ok := byMode[mode]; ok {
			res.ModeBreakdown = append(res.ModeBreakdown, dto.ModeBreakdownResponse{
				Mode:  string(mode),
				Co2Kg: services.Round2(co2),
			})
		}
	}

	amount, err := services.MonetizeSavings(res.TotalSavingsKg, currency, h.Pricing)
	if err != nil {
		log.Printf("monetize savings failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	res.CostSavings = amount

	writeJSON(w, r, http.StatusOK, res)
}

// Export streams the stored records as a CSV attachment.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	records, err := h.Repo.List(r.Context())
	if err != nil {
		log.Printf("list emissions failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="emissions_report.csv"`)

	cw := csv.NewWriter(w)
	header := []string{"id", "source", "destination", "transport_mode", "distance_km", "co2_kg", "weight_tons", "created_at"}
	if err := cw.Write(header); err != nil {
		log.Printf("csv write failed: %v", err)
		return
	}

	for _, rec := range records {
		row := []string{
			rec.ID,
			rec.Source,
			rec.Destination,
			string(rec.TransportMode),
			strconv.FormatFloat(rec.DistanceKm, 'f', 2, 64),
			strconv.FormatFloat(rec.Co2Kg, 'f', 2, 64),
			strconv.FormatFloat(rec.WeightTons, 'f', -1, 64),
			rec.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		}
		if err := cw.Write(row); err != nil {
			log.Printf("csv write failed: %v", err)
			return
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		log.Printf("csv flush failed: %v", err)
	}
}
