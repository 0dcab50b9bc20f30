package api

import (
	"net/http"

	"freight-carbon-service/internal/api/handlers"
	"freight-carbon-service/internal/ports"
	"freight-carbon-service/internal/refdata"
)

// Deps carries everything the HTTP layer needs. Handlers stay unaware of
// concrete adapters behind the port interfaces.
type Deps struct {
	Emissions  ports.EmissionRepository
	Suppliers  ports.SupplierRepository
	Resolver   ports.GeoResolver
	Locations  refdata.Locations
	Factors    refdata.EmissionFactors
	Candidates refdata.CandidateTable
	Pricing    refdata.CarbonPricing
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root.
func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()

	emissionHandler := &handlers.EmissionHandler{
		Repo:     deps.Emissions,
		Resolver: deps.Resolver,
		Factors:  deps.Factors,
	}
	optimizeHandler := &handlers.OptimizeHandler{
		Resolver:   deps.Resolver,
		Factors:    deps.Factors,
		Candidates: deps.Candidates,
		Pricing:    deps.Pricing,
	}
	supplierHandler := &handlers.SupplierHandler{
		Repo:      deps.Suppliers,
		Locations: deps.Locations,
		Factors:   deps.Factors,
	}
	reportHandler := &handlers.ReportHandler{
		Repo:       deps.Emissions,
		Factors:    deps.Factors,
		Candidates: deps.Candidates,
		Pricing:    deps.Pricing,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/emissions", emissionHandler.Handle)
	mux.HandleFunc("/optimize", optimizeHandler.Optimize)
	mux.HandleFunc("/suppliers", supplierHandler.List)
	mux.HandleFunc("/reports", reportHandler.Summary)
	mux.HandleFunc("/reports/export", reportHandler.Export)

	return loggingMiddleware(mux)
}
