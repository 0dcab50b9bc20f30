package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"freight-carbon-service/internal/domain"
	"freight-carbon-service/internal/platform/obs"
	"freight-carbon-service/internal/ports"
)

// SQLSupplierRepository is the Postgres-backed implementation of the
// SupplierRepository port.
type SQLSupplierRepository struct{ DB *sql.DB }

func NewSQLSupplierRepository(db *sql.DB) *SQLSupplierRepository {
	return &SQLSupplierRepository{DB: db}
}

// List returns suppliers matching the filter, ordered by name.
func (s *SQLSupplierRepository) List(ctx context.Context, filter ports.SupplierFilter) (_ []*domain.Supplier, err error) {
	defer obs.Time(ctx, "suppliers.repo.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql supplier repository: DB is nil")
	}

	query := `
	SELECT
		id,
		supplier_name,
		country,
		city,
		material,
		green_score,
		annual_capacity_tons
	FROM suppliers
	`
	conditions := []string{}
	args := []any{}

	if filter.Country != "" {
		args = append(args, filter.Country)
		conditions = append(conditions, fmt.Sprintf("country = $%d", len(args)))
	}
	if filter.City != "" {
		args = append(args, filter.City)
		conditions = append(conditions, fmt.Sprintf("city = $%d", len(args)))
	}
	if filter.Material != "" {
		args = append(args, "%"+strings.ToLower(filter.Material)+"%")
		conditions = append(conditions, fmt.Sprintf("LOWER(material) LIKE $%d", len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY supplier_name;"

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: query suppliers table: %w", err)
	}
	defer rows.Close()

	suppliers := make([]*domain.Supplier, 0, 32)
	for rows.Next() {
		var sup domain.Supplier
		if err := rows.Scan(&sup.ID, &sup.SupplierName, &sup.Country, &sup.City, &sup.Material, &sup.GreenScore, &sup.AnnualCapacityTons); err != nil {
			return nil, fmt.Errorf("list suppliers: scan row: %w", err)
		}
		suppliers = append(suppliers, &sup)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list suppliers: row iteration: %w", err)
	}

	return suppliers, nil
}
