package ports

import (
	"context"

	"freight-carbon-service/internal/domain"
)

// SupplierFilter narrows a supplier lookup. Empty fields match
// everything; Material is a case-insensitive substring match.
type SupplierFilter struct {
	Country  string
	City     string
	Material string
}

// Port: a boundary for querying the supplier directory.
type SupplierRepository interface {
	// List returns suppliers matching the filter, ordered by name.
	List(ctx context.Context, filter SupplierFilter) ([]*domain.Supplier, error)
}
