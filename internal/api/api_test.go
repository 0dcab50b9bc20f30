package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"freight-carbon-service/internal/adapters/geo"
	"freight-carbon-service/internal/adapters/repositories"
	"freight-carbon-service/internal/api/dto"
	"freight-carbon-service/internal/domain"
	"freight-carbon-service/internal/refdata"
)

func newTestRouter(suppliers []*domain.Supplier) http.Handler {
	locations := refdata.DefaultLocations()

	router := NewRouter(Deps{
		Emissions:  repositories.NewMemoryEmissionRepository(),
		Suppliers:  repositories.NewMemorySupplierRepository(suppliers),
		Resolver:   geo.NewStaticResolver(locations),
		Locations:  locations,
		Factors:    refdata.DefaultEmissionFactors(),
		Candidates: refdata.DefaultCandidateTable(),
		Pricing:    refdata.DefaultCarbonPricing(),
	})
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCalculateEmissionKnownRoute(t *testing.T) {
	router := newTestRouter(nil)

	body := `{
		"source": {"country": "United Kingdom", "city": "London"},
		"destination": {"country": "France", "city": "Paris"},
		"transport_mode": "Truck",
		"weight_tons": 1.0
	}`

	rec := doJSON(t, router, http.MethodPost, "/emissions", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var res dto.CalculateEmissionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.ID == "" {
		t.Error("response id is empty")
	}
	if res.Source != "London, United Kingdom" || res.Destination != "Paris, France" {
		t.Errorf("endpoints = %q -> %q, want London, United Kingdom -> Paris, France", res.Source, res.Destination)
	}
	if res.DistanceKm != 343.56 {
		t.Errorf("distance = %v, want 343.56", res.DistanceKm)
	}
	if res.DistanceFallback {
		t.Error("distance_fallback = true for a resolvable route")
	}
	if res.Co2Kg != 32.98 {
		t.Errorf("co2 = %v, want 32.98", res.Co2Kg)
	}
}

func TestCalculateEmissionUnknownCityUsesFallback(t *testing.T) {
	router := newTestRouter(nil)

	body := `{
		"source": {"country": "United Kingdom", "city": "London"},
		"destination": {"country": "Brazil", "city": "Sao Paulo"},
		"transport_mode": "Ship",
		"weight_tons": 2.0
	}`

	rec := doJSON(t, router, http.MethodPost, "/emissions", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var res dto.CalculateEmissionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.DistanceKm != 500.0 {
		t.Errorf("distance = %v, want fallback 500.0", res.DistanceKm)
	}
	if !res.DistanceFallback {
		t.Error("distance_fallback = false for an unresolvable route")
	}
	// 500.0 * 2.0 * 0.016
	if res.Co2Kg != 16.0 {
		t.Errorf("co2 = %v, want 16.0", res.Co2Kg)
	}
}

func TestCalculateEmissionRejectsUnknownMode(t *testing.T) {
	router := newTestRouter(nil)

	body := `{
		"source": {"country": "United Kingdom", "city": "London"},
		"destination": {"country": "France", "city": "Paris"},
		"transport_mode": "Zeppelin",
		"weight_tons": 1.0
	}`

	rec := doJSON(t, router, http.MethodPost, "/emissions", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCalculateEmissionRejectsUnknownFields(t *testing.T) {
	router := newTestRouter(nil)

	body := `{
		"source": {"country": "United Kingdom", "city": "London"},
		"destination": {"country": "France", "city": "Paris"},
		"transport_mode": "Truck",
		"weight_tons": 1.0,
		"surprise": true
	}`

	rec := doJSON(t, router, http.MethodPost, "/emissions", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestListEmissionsReturnsSavedRecords(t *testing.T) {
	router := newTestRouter(nil)

	body := `{
		"source": {"country": "USA", "city": "New York"},
		"destination": {"country": "China", "city": "Shanghai"},
		"transport_mode": "Plane",
		"weight_tons": 3.0
	}`
	if rec := doJSON(t, router, http.MethodPost, "/emissions", body); rec.Code != http.StatusCreated {
		t.Fatalf("seed request status = %d", rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/emissions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var res dto.ListEmissionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Emissions) != 1 {
		t.Fatalf("len(emissions) = %d, want 1", len(res.Emissions))
	}
	if res.Emissions[0].TransportMode != "Plane" {
		t.Errorf("mode = %q, want Plane", res.Emissions[0].TransportMode)
	}
}

func TestOptimizeIntercontinentalRoute(t *testing.T) {
	router := newTestRouter(nil)

	body := `{
		"source": {"country": "USA", "city": "New York"},
		"destination": {"country": "China", "city": "Shanghai"},
		"transport_mode": "Plane",
		"weight_tons": 10.0,
		"currency": "USD"
	}`

	rec := doJSON(t, router, http.MethodPost, "/optimize", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var res dto.OptimizeRouteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(res.BestStrategy.Segments) != 2 {
		t.Fatalf("segments = %d, want 2", len(res.BestStrategy.Segments))
	}
	// Long-haul winner: Ship 90% / Train 10%.
	if res.BestStrategy.Segments[0].Mode != "Ship" || res.BestStrategy.Segments[1].Mode != "Train" {
		t.Errorf("strategy modes = %s/%s, want Ship/Train",
			res.BestStrategy.Segments[0].Mode, res.BestStrategy.Segments[1].Mode)
	}
	if res.BestStrategy.TotalCo2Kg >= res.BaselineCo2Kg {
		t.Errorf("best total %v not below Plane baseline %v", res.BestStrategy.TotalCo2Kg, res.BaselineCo2Kg)
	}
	if res.SavingsKg <= 0 {
		t.Errorf("savings = %v, want > 0 for a Plane baseline", res.SavingsKg)
	}
	if res.CostSavings == nil {
		t.Fatal("cost_savings missing despite currency in request")
	}
	if res.CostSavings.Currency != "USD" {
		t.Errorf("currency = %q, want USD", res.CostSavings.Currency)
	}
	if res.CostSavings.Amount <= 0 {
		t.Errorf("amount = %v, want > 0", res.CostSavings.Amount)
	}
}

func TestOptimizeRejectsUnsupportedCurrency(t *testing.T) {
	router := newTestRouter(nil)

	body := `{
		"source": {"country": "United Kingdom", "city": "London"},
		"destination": {"country": "France", "city": "Paris"},
		"transport_mode": "Truck",
		"weight_tons": 1.0,
		"currency": "GBP"
	}`

	rec := doJSON(t, router, http.MethodPost, "/optimize", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rec.Body.String(), "unsupported currency") {
		t.Errorf("body %q does not mention unsupported currency", rec.Body.String())
	}
}

func TestOptimizeWithoutCurrencyOmitsCostSavings(t *testing.T) {
	router := newTestRouter(nil)

	body := `{
		"source": {"country": "United Kingdom", "city": "London"},
		"destination": {"country": "France", "city": "Paris"},
		"transport_mode": "Plane",
		"weight_tons": 2.0
	}`

	rec := doJSON(t, router, http.MethodPost, "/optimize", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var res dto.OptimizeRouteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.CostSavings != nil {
		t.Errorf("cost_savings = %+v, want omitted", res.CostSavings)
	}
}

func testSuppliers() []*domain.Supplier {
	return []*domain.Supplier{
		{ID: "s1", SupplierName: "UK Steel Co", Country: "United Kingdom", City: "London", Material: "Steel", GreenScore: 78, AnnualCapacityTons: 5000},
		{ID: "s2", SupplierName: "French Steelworks", Country: "France", City: "Paris", Material: "Steel", GreenScore: 85, AnnualCapacityTons: 7000},
		{ID: "s3", SupplierName: "Paris Electronics Hub", Country: "France", City: "Paris", Material: "Electronics", GreenScore: 90, AnnualCapacityTons: 1200},
	}
}

func TestListSuppliersWithFilterAndSummary(t *testing.T) {
	router := newTestRouter(testSuppliers())

	rec := doJSON(t, router, http.MethodGet, "/suppliers?country=France", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var res dto.ListSuppliersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(res.Suppliers) != 2 {
		t.Fatalf("len(suppliers) = %d, want 2", len(res.Suppliers))
	}
	if res.Summary.TotalSuppliers != 2 {
		t.Errorf("total_suppliers = %d, want 2", res.Summary.TotalSuppliers)
	}
	// (85 + 90) / 2
	if res.Summary.AverageGreenScore != 87.5 {
		t.Errorf("average_green_score = %v, want 87.5", res.Summary.AverageGreenScore)
	}
	if res.Summary.TotalCapacityTons != 8200 {
		t.Errorf("total_capacity_tons = %d, want 8200", res.Summary.TotalCapacityTons)
	}
	if res.Sourcing != nil {
		t.Error("sourcing present without lane parameters")
	}
}

func TestListSuppliersSourcingSuggestion(t *testing.T) {
	router := newTestRouter(testSuppliers())

	rec := doJSON(t, router, http.MethodGet, "/suppliers?source_country=United+Kingdom&dest_country=France&weight_tons=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var res dto.ListSuppliersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.Sourcing == nil {
		t.Fatal("sourcing suggestion missing")
	}
	if res.Sourcing.DestCountry != "France" {
		t.Errorf("dest_country = %q, want France", res.Sourcing.DestCountry)
	}
	if res.Sourcing.LocalSuppliers != 2 {
		t.Errorf("local_suppliers = %d, want 2", res.Sourcing.LocalSuppliers)
	}
	// Truck baseline London -> Paris at 2 t: 343.56 * 2 * 0.096.
	if res.Sourcing.PotentialSavingsKg != 65.96 {
		t.Errorf("potential_savings_kg = %v, want 65.96", res.Sourcing.PotentialSavingsKg)
	}
}

func TestReportSummary(t *testing.T) {
	router := newTestRouter(nil)

	seed := `{
		"source": {"country": "United Kingdom", "city": "London"},
		"destination": {"country": "France", "city": "Paris"},
		"transport_mode": "Truck",
		"weight_tons": 1.0
	}`
	if rec := doJSON(t, router, http.MethodPost, "/emissions", seed); rec.Code != http.StatusCreated {
		t.Fatalf("seed request status = %d", rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/reports?currency=EUR", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var res dto.ReportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.TotalShipments != 1 {
		t.Fatalf("total_shipments = %d, want 1", res.TotalShipments)
	}
	if res.TotalCo2Kg != 32.98 {
		t.Errorf("total_co2_kg = %v, want 32.98", res.TotalCo2Kg)
	}
	if res.AverageCo2Kg != 32.98 {
		t.Errorf("average_co2_kg = %v, want 32.98", res.AverageCo2Kg)
	}
	if len(res.ModeBreakdown) != 1 || res.ModeBreakdown[0].Mode != "Truck" {
		t.Fatalf("mode_breakdown = %+v, want a single Truck entry", res.ModeBreakdown)
	}
	if len(res.Routes) != 1 {
		t.Fatalf("len(routes) = %d, want 1", len(res.Routes))
	}
	if res.Routes[0].Route != "London, United Kingdom to Paris, France" {
		t.Errorf("route = %q", res.Routes[0].Route)
	}
	if res.Routes[0].SavingsKg <= 0 {
		t.Errorf("savings = %v, want > 0 for a Truck baseline", res.Routes[0].SavingsKg)
	}
	if res.Currency != "EUR" {
		t.Errorf("currency = %q, want EUR", res.Currency)
	}
}

func TestReportSummaryRejectsUnsupportedCurrency(t *testing.T) {
	router := newTestRouter(nil)

	rec := doJSON(t, router, http.MethodGet, "/reports?currency=GBP", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestReportExportCSV(t *testing.T) {
	router := newTestRouter(nil)

	seed := `{
		"source": {"country": "United Kingdom", "city": "London"},
		"destination": {"country": "France", "city": "Paris"},
		"transport_mode": "Train",
		"weight_tons": 1.5
	}`
	if rec := doJSON(t, router, http.MethodPost, "/emissions", seed); rec.Code != http.StatusCreated {
		t.Fatalf("seed request status = %d", rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/reports/export", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("content-type = %q, want text/csv", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "emissions_report.csv") {
		t.Errorf("content-disposition = %q", cd)
	}

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("csv lines = %d, want header + 1 row", len(lines))
	}
	if lines[0] != "id,source,destination,transport_mode,distance_km,co2_kg,weight_tons,created_at" {
		t.Errorf("header = %q", lines[0])
	}
	// Location labels contain commas, so the writer quotes them.
	if !strings.Contains(lines[1], `"London, United Kingdom"`) || !strings.Contains(lines[1], "Train") {
		t.Errorf("row %q missing expected fields", lines[1])
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(nil)

	rec := doJSON(t, router, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestMethodNotAllowed(t *testing.T) {
	router := newTestRouter(nil)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodDelete, "/emissions"},
		{http.MethodGet, "/optimize"},
		{http.MethodPost, "/suppliers"},
		{http.MethodPost, "/reports"},
		{http.MethodPost, "/reports/export"},
		{http.MethodPost, "/health"},
	}
	for _, tc := range cases {
		rec := doJSON(t, router, tc.method, tc.path, "")
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s %s: status = %d, want %d", tc.method, tc.path, rec.Code, http.StatusMethodNotAllowed)
		}
	}
}
