package domain

// A supplier directory entry used for sourcing lookups.
// Static reference data seeded at startup; read-only afterward.
type Supplier struct {
	ID                 string
	SupplierName       string
	Country            string
	City               string
	Material           string
	GreenScore         int
	AnnualCapacityTons int
}
