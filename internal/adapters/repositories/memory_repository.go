package repositories

import (
	"context"
	"strings"
	"sync"

	"freight-carbon-service/internal/domain"
	"freight-carbon-service/internal/ports"
)

// In-memory EmissionRepository for tests and local experiments.
// Safe for concurrent use.
type MemoryEmissionRepository struct {
	mu      sync.Mutex
	records []*domain.Emission
}

func NewMemoryEmissionRepository() *MemoryEmissionRepository {
	return &MemoryEmissionRepository{}
}

func (m *MemoryEmissionRepository) Save(_ context.Context, rec *domain.Emission) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *rec
	m.records = append(m.records, &cp)
	return nil
}

func (m *MemoryEmissionRepository) List(_ context.Context) ([]*domain.Emission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.Emission, 0, len(m.records))
	for _, rec := range m.records {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

// In-memory SupplierRepository for tests.
type MemorySupplierRepository struct {
	Suppliers []*domain.Supplier
}

func NewMemorySupplierRepository(suppliers []*domain.Supplier) *MemorySupplierRepository {
	return &MemorySupplierRepository{Suppliers: suppliers}
}

func (m *MemorySupplierRepository) List(_ context.Context, filter ports.SupplierFilter) ([]*domain.Supplier, error) {
	out := make([]*domain.Supplier, 0, len(m.Suppliers))
	for _, sup := range m.Suppliers {
		if filter.Country != "" && sup.Country != filter.Country {
			continue
		}
		if filter.City != "" && sup.City != filter.City {
			continue
		}
		if filter.Material != "" && !strings.Contains(strings.ToLower(sup.Material), strings.ToLower(filter.Material)) {
			continue
		}
		cp := *sup
		out = append(out, &cp)
	}
	return out, nil
}
