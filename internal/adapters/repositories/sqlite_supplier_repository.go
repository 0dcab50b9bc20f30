package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"freight-carbon-service/internal/domain"
	"freight-carbon-service/internal/ports"
)

// SQLite-backed implementation of the SupplierRepository port.
type SqliteSupplierRepository struct{ DB *sql.DB }

func NewSqliteSupplierRepository(db *sql.DB) *SqliteSupplierRepository {
	return &SqliteSupplierRepository{DB: db}
}

// List returns suppliers matching the filter, ordered by name.
func (s *SqliteSupplierRepository) List(ctx context.Context, filter ports.SupplierFilter) ([]*domain.Supplier, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite supplier repository: DB is nil")
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
		conditions = append(conditions, "country = ?")
		args = append(args, filter.Country)
	}
	if filter.City != "" {
		conditions = append(conditions, "city = ?")
		args = append(args, filter.City)
	}
	if filter.Material != "" {
		conditions = append(conditions, "LOWER(material) LIKE ?")
		args = append(args, "%"+strings.ToLower(filter.Material)+"%")
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
