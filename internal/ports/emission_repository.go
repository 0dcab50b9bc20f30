package ports

import (
	"context"

	"freight-carbon-service/internal/domain"
)

// Port: durable storage for computed emission records. The engine never
// writes; handlers persist results after computation, one write per
// record.
type EmissionRepository interface {
	// Save stores a single emission record.
	Save(ctx context.Context, rec *domain.Emission) error
	// List returns all stored records, oldest first.
	List(ctx context.Context) ([]*domain.Emission, error)
}
