package dto

type SupplierResponse struct {
	ID                 string `json:"id"`
	SupplierName       string `json:"supplier_name"`
	Country            string `json:"country"`
	City               string `json:"city"`
	Material           string `json:"material"`
	GreenScore         int    `json:"green_score"`
	AnnualCapacityTons int    `json:"annual_capacity_tons"`
}

type SupplierSummaryResponse struct {
	TotalSuppliers    int     `json:"total_suppliers"`
	AverageGreenScore float64 `json:"average_green_score"`
	TotalCapacityTons int     `json:"total_capacity_tons"`
}

// The local-sourcing suggestion: shipping emissions avoidable by
// sourcing from the destination country instead of shipping into it.
type SourcingSuggestionResponse struct {
	DestCountry        string  `json:"dest_country"`
	LocalSuppliers     int     `json:"local_suppliers"`
	PotentialSavingsKg float64 `json:"potential_savings_kg"`
}

type ListSuppliersResponse struct {
	Suppliers []SupplierResponse          `json:"suppliers"`
	Summary   SupplierSummaryResponse     `json:"summary"`
	Sourcing  *SourcingSuggestionResponse `json:"sourcing,omitempty"`
}
