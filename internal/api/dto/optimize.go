package dto

type OptimizeRouteRequest struct {
	Source        LocationRequest `json:"source"`
	Destination   LocationRequest `json:"destination"`
	TransportMode string          `json:"transport_mode"`
	WeightTons    float64         `json:"weight_tons"`
	Currency      string          `json:"currency"`
}

type RouteSegmentResponse struct {
	Mode       string  `json:"mode"`
	DistanceKm float64 `json:"distance_km"`
	Co2Kg      float64 `json:"co2_kg"`
}

type RouteStrategyResponse struct {
	Segments   []RouteSegmentResponse `json:"segments"`
	TotalCo2Kg float64                `json:"total_co2_kg"`
}

type CostSavingsResponse struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
}

type OptimizeRouteResponse struct {
	DistanceKm       float64               `json:"distance_km"`
	DistanceFallback bool                  `json:"distance_fallback"`
	BaselineCo2Kg    float64               `json:"baseline_co2_kg"`
	BestStrategy     RouteStrategyResponse `json:"best_strategy"`
	SavingsKg        float64               `json:"savings_kg"`
	CostSavings      *CostSavingsResponse  `json:"cost_savings,omitempty"`
}
