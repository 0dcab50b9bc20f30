package dto

type ModeBreakdownResponse struct {
	Mode  string  `json:"mode"`
	Co2Kg float64 `json:"co2_kg"`
}

type RouteReportResponse struct {
	Route        string                `json:"route"`
	OldMode      string                `json:"old_mode"`
	OldCo2Kg     float64               `json:"old_co2_kg"`
	BestStrategy RouteStrategyResponse `json:"best_strategy"`
	SavingsKg    float64               `json:"savings_kg"`
}

type ReportResponse struct {
	TotalShipments int                     `json:"total_shipments"`
	TotalCo2Kg     float64                 `json:"total_co2_kg"`
	AverageCo2Kg   float64                 `json:"average_co2_kg"`
	ModeBreakdown  []ModeBreakdownResponse `json:"mode_breakdown"`
	Routes         []RouteReportResponse   `json:"routes"`
	TotalSavingsKg float64                 `json:"total_savings_kg"`
	Currency       string                  `json:"currency"`
	CostSavings    float64                 `json:"cost_savings"`
}
